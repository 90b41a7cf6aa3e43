package postgres

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `INSERT INTO employer_profiles (user_id, company_name, location, company_website, company_size, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.Location, profile.CompanyWebsite,
		profile.CompanySize, profile.Description,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	query := `SELECT id, user_id, company_name, location, company_website, company_size, description, created_at, updated_at
              FROM employer_profiles WHERE user_id = $1`
	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Location, &p.CompanyWebsite,
		&p.CompanySize, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *employerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `UPDATE employer_profiles SET
		company_name = $2,
		location = $3,
		company_website = $4,
		company_size = $5,
		description = $6,
		updated_at = $7
	WHERE user_id = $1`
	profile.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.CompanyName, profile.Location, profile.CompanyWebsite,
		profile.CompanySize, profile.Description, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
