package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (id, full_name, email, phone, role, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.FullName, profile.Email, profile.Phone, profile.Role,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

// CreateWithCandidate inserts the profile and its candidate counterpart in one
// transaction so a crash cannot leave an orphaned profile behind.
func (r *profileRepo) CreateWithCandidate(ctx context.Context, profile *domain.Profile, candidate *domain.CandidateProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (id, full_name, email, phone, role, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.FullName, profile.Email, profile.Phone, profile.Role,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this email already exists")
		}
		return apperror.Internal(err)
	}

	candidate.UserID = profile.ID
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	err = tx.QueryRow(ctx,
		`INSERT INTO candidate_profiles (user_id, work_authorization, skills, bio, experience_years, location, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		candidate.UserID, candidate.WorkAuthorization, pq.Array(candidate.Skills),
		candidate.Bio, candidate.ExperienceYears, candidate.Location,
		candidate.CreatedAt, candidate.UpdatedAt,
	).Scan(&candidate.ID)
	if err != nil {
		return apperror.Internal(err)
	}

	return tx.Commit(ctx)
}

// CreateWithEmployer inserts the profile and its employer counterpart in one
// transaction.
func (r *profileRepo) CreateWithEmployer(ctx context.Context, profile *domain.Profile, employer *domain.EmployerProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (id, full_name, email, phone, role, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.FullName, profile.Email, profile.Phone, profile.Role,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this email already exists")
		}
		return apperror.Internal(err)
	}

	employer.UserID = profile.ID
	employer.CreatedAt = now
	employer.UpdatedAt = now

	err = tx.QueryRow(ctx,
		`INSERT INTO employer_profiles (user_id, company_name, location, company_website, company_size, description, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		employer.UserID, employer.CompanyName, employer.Location, employer.CompanyWebsite,
		employer.CompanySize, employer.Description,
		employer.CreatedAt, employer.UpdatedAt,
	).Scan(&employer.ID)
	if err != nil {
		return apperror.Internal(err)
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, full_name, email, phone, role, created_at, updated_at FROM profiles WHERE id = $1`
	var profile domain.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.FullName, &profile.Email, &profile.Phone, &profile.Role,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
