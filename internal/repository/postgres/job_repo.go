package postgres

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, description, location, job_type, salary_min, salary_max, skills_required, work_authorization, experience_required, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location, job.JobType,
		job.SalaryMin, job.SalaryMax, pq.Array(job.SkillsRequired), pq.Array(job.WorkAuthorization),
		job.ExperienceRequired, job.IsActive,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description, location, job_type, salary_min, salary_max, skills_required, work_authorization, experience_required, is_active, created_at, updated_at
              FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
		&job.SalaryMin, &job.SalaryMax, pq.Array(&job.SkillsRequired), pq.Array(&job.WorkAuthorization),
		&job.ExperienceRequired, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByIDWithEmployer retrieves a job with the owning employer's public fields
// for the job detail page.
func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.location, j.job_type,
			j.salary_min, j.salary_max, j.skills_required, j.work_authorization,
			j.experience_required, j.is_active, j.created_at, j.updated_at,
			COALESCE(ep.company_name, 'Unknown Company') as company_name,
			ep.location,
			ep.company_website,
			ep.description
		FROM jobs j
		LEFT JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE j.id = $1`

	var job domain.JobWithEmployer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
		&job.SalaryMin, &job.SalaryMax, pq.Array(&job.SkillsRequired), pq.Array(&job.WorkAuthorization),
		&job.ExperienceRequired, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyLocation, &job.CompanyWebsite, &job.CompanyDescription,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FetchActiveWithEmployer retrieves only active jobs with employer data for
// public listings, newest first. The is_active filter is hardcoded so it
// cannot be bypassed from the client.
func (r *jobRepo) FetchActiveWithEmployer(ctx context.Context) ([]domain.JobWithEmployer, error) {
	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.location, j.job_type,
			j.salary_min, j.salary_max, j.skills_required, j.work_authorization,
			j.experience_required, j.is_active, j.created_at, j.updated_at,
			COALESCE(ep.company_name, 'Unknown Company') as company_name,
			ep.location
		FROM jobs j
		LEFT JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE j.is_active = true
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
			&job.SalaryMin, &job.SalaryMax, pq.Array(&job.SkillsRequired), pq.Array(&job.WorkAuthorization),
			&job.ExperienceRequired, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyLocation,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// FetchByEmployerID retrieves an employer's own postings, newest first.
func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Job, error) {
	query := `SELECT id, employer_id, title, description, location, job_type, salary_min, salary_max, skills_required, work_authorization, experience_required, is_active, created_at, updated_at
              FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
			&job.SalaryMin, &job.SalaryMax, pq.Array(&job.SkillsRequired), pq.Array(&job.WorkAuthorization),
			&job.ExperienceRequired, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
