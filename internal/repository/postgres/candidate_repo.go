package postgres

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles (user_id, work_authorization, resume_url, skills, bio, experience_years, location, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.WorkAuthorization, profile.ResumeURL, pq.Array(profile.Skills),
		profile.Bio, profile.ExperienceYears, profile.Location,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT id, user_id, work_authorization, resume_url, skills, bio, experience_years, location, created_at, updated_at
              FROM candidate_profiles WHERE user_id = $1`
	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.WorkAuthorization, &p.ResumeURL, pq.Array(&p.Skills),
		&p.Bio, &p.ExperienceYears, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *candidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `UPDATE candidate_profiles SET
		work_authorization = $2,
		skills = $3,
		bio = $4,
		experience_years = $5,
		location = $6,
		updated_at = $7
	WHERE user_id = $1`
	profile.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.WorkAuthorization, pq.Array(profile.Skills),
		profile.Bio, profile.ExperienceYears, profile.Location, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) SetResumeURL(ctx context.Context, userID string, resumeURL string) error {
	query := `UPDATE candidate_profiles SET resume_url = $2, updated_at = $3 WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query, userID, resumeURL, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
