package domain

import (
	"context"
	"time"
)

// Application status values. Transitions are employer-initiated only:
// pending → accepted or pending → rejected.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application links exactly one Job and one CandidateProfile.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`

	// Joined data for list responses
	JobTitle       *string `json:"job_title,omitempty"`
	JobLocation    *string `json:"job_location,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
	CandidateName  *string `json:"candidate_name,omitempty"`
	CandidateEmail *string `json:"candidate_email,omitempty"`
	ResumeURL      *string `json:"resume_url,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByCandidateID(ctx context.Context, candidateID int64) ([]Application, error)
	Exists(ctx context.Context, jobID, candidateID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Candidate operations
	Submit(ctx context.Context, userID string, jobID int64, coverLetter string) (*Application, error)
	ListForCandidate(ctx context.Context, userID string) ([]Application, error)

	// Employer operations
	ListForJob(ctx context.Context, userID string, jobID int64) ([]Application, error)
	SetStatus(ctx context.Context, userID string, applicationID int64, status string) error
}
