package usecase

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
)

// StatusNotifier is the slice of pkg/email the application usecase needs.
type StatusNotifier interface {
	SendStatusEmail(data email.StatusEmailData) error
	IsConfigured() bool
}

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	employerRepo    domain.EmployerRepository
	notifier        StatusNotifier
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	notifier StatusNotifier,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		employerRepo:    employerRepo,
		notifier:        notifier,
	}
}

// Submit creates a pending application for the job. The actor must resolve to
// a candidate profile; employers and unauthenticated visitors get an
// authorization error, not a data error.
func (uc *applicationUsecase) Submit(ctx context.Context, userID string, jobID int64, coverLetter string) (*domain.Application, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("Sign in to apply to jobs")
	}

	candidate, err := uc.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Forbidden("Only candidates can apply to jobs")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Cannot apply to an inactive job")
	}

	exists, err := uc.applicationRepo.Exists(ctx, jobID, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	// Empty cover letter is stored as NULL
	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidate.ID,
		CoverLetter: coverLetterPtr,
		Status:      domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// ListForCandidate returns the current candidate's applications enriched with
// the job and its employer's company name, newest-applied first.
func (uc *applicationUsecase) ListForCandidate(ctx context.Context, userID string) ([]domain.Application, error) {
	candidate, err := uc.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Forbidden("Only candidates can view their applications")
	}
	return uc.applicationRepo.GetByCandidateID(ctx, candidate.ID)
}

// ListForJob returns all applications for a job with applicant name and email.
// The requesting employer must own the job.
func (uc *applicationUsecase) ListForJob(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	if err := uc.validateJobOwnership(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// SetStatus drives the employer-initiated review transition. Only
// pending → accepted and pending → rejected are allowed; decided applications
// cannot be reopened or re-decided.
func (uc *applicationUsecase) SetStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Invalid status. Must be: accepted or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.Status != domain.ApplicationStatusPending {
		return apperror.BadRequest("Application has already been " + app.Status)
	}

	if err := uc.validateJobOwnership(ctx, userID, app.JobID); err != nil {
		return err
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}

	uc.notifyStatusChange(app, status)
	return nil
}

// notifyStatusChange emails the candidate about the decision. Best effort: a
// failed or unconfigured notifier never fails the status update itself.
func (uc *applicationUsecase) notifyStatusChange(app *domain.Application, status string) {
	if uc.notifier == nil || !uc.notifier.IsConfigured() {
		return
	}
	if app.CandidateEmail == nil || *app.CandidateEmail == "" {
		return
	}

	data := email.StatusEmailData{
		CandidateEmail: *app.CandidateEmail,
		Status:         status,
	}
	if app.CandidateName != nil {
		data.CandidateName = *app.CandidateName
	}
	if app.JobTitle != nil {
		data.JobTitle = *app.JobTitle
	}
	if app.CompanyName != nil {
		data.CompanyName = *app.CompanyName
	}

	go func() {
		if err := uc.notifier.SendStatusEmail(data); err != nil {
			logger.Log.Warn("Failed to send status notification", "application_id", app.ID, "error", err)
		}
	}()
}

// validateJobOwnership checks that userID resolves to the employer profile
// owning the job.
func (uc *applicationUsecase) validateJobOwnership(ctx context.Context, userID string, jobID int64) error {
	employer, err := uc.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.Forbidden("Only employers can review applications")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if job.EmployerID != employer.ID {
		return apperror.Forbidden("You can only review applications for your own jobs")
	}
	return nil
}
