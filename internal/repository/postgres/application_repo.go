package postgres

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, candidate_id, cover_letter, status, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	app.AppliedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	return r.db.QueryRow(ctx, query,
		app.JobID,
		app.CandidateID,
		app.CoverLetter,
		app.Status,
		app.AppliedAt,
	).Scan(&app.ID)
}

// GetByID retrieves one application with the job, company and applicant
// joined in so status updates can notify the candidate.
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.applied_at,
		       j.title as job_title,
		       COALESCE(ep.company_name, 'Unknown Company') as company_name,
		       COALESCE(p.full_name, 'Unknown') as candidate_name,
		       p.email as candidate_email
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN employer_profiles ep ON j.employer_id = ep.id
		LEFT JOIN candidate_profiles cp ON a.candidate_id = cp.id
		LEFT JOIN profiles p ON cp.user_id = p.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Status, &app.AppliedAt,
		&app.JobTitle, &app.CompanyName, &app.CandidateName, &app.CandidateEmail,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job with the applicant's name,
// email and resume joined in for the employer's review list.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.applied_at,
		       COALESCE(p.full_name, 'Unknown') as candidate_name,
		       p.email as candidate_email,
		       cp.resume_url
		FROM applications a
		LEFT JOIN candidate_profiles cp ON a.candidate_id = cp.id
		LEFT JOIN profiles p ON cp.user_id = p.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Status, &app.AppliedAt,
			&app.CandidateName, &app.CandidateEmail, &app.ResumeURL,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByCandidateID retrieves a candidate's applications with the job and its
// employer's company name, newest-applied first.
func (r *applicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.applied_at,
		       j.title as job_title,
		       j.location as job_location,
		       COALESCE(ep.company_name, 'Unknown Company') as company_name
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Status, &app.AppliedAt,
			&app.JobTitle, &app.JobLocation, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// Exists checks whether the candidate already applied to the job
func (r *applicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
