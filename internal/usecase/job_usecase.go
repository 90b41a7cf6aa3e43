package usecase

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"strconv"
	"strings"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

// ListActiveJobs returns active postings with employer data, newest first,
// narrowed by the optional free-text filter.
func (u *jobUsecase) ListActiveJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	jobs, err := u.jobRepo.FetchActiveWithEmployer(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterJobs(jobs, filter), nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetByIDWithEmployer(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

// PostJob validates and persists a new posting scoped to the authenticated
// employer's own profile.
func (u *jobUsecase) PostJob(ctx context.Context, userID string, input *domain.PostJobInput) (*domain.Job, error) {
	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Forbidden("Only employers can post jobs")
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperror.BadRequest("Description is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, apperror.BadRequest("Location is required")
	}
	for _, wa := range input.WorkAuthorization {
		if !domain.ValidWorkAuthorization(wa) {
			return nil, apperror.BadRequest("Invalid work authorization category: " + wa)
		}
	}

	salaryMin := ParseSalary(input.SalaryMin)
	salaryMax := ParseSalary(input.SalaryMax)
	if salaryMin != nil && salaryMax != nil && *salaryMin > *salaryMax {
		return nil, apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}

	job := &domain.Job{
		EmployerID:        employer.ID,
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		Location:          strings.TrimSpace(input.Location),
		JobType:           optionalString(input.JobType),
		SalaryMin:         salaryMin,
		SalaryMax:         salaryMax,
		SkillsRequired:    ParseSkills(input.Skills),
		WorkAuthorization: input.WorkAuthorization,
		IsActive:          true,
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// ListMyJobs returns the authenticated employer's own postings.
func (u *jobUsecase) ListMyJobs(ctx context.Context, userID string) ([]domain.Job, error) {
	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}
	return u.jobRepo.FetchByEmployerID(ctx, employer.ID)
}

// ParseSkills splits a comma-separated skills string, trimming whitespace and
// discarding empty tokens. Order is preserved and duplicates are kept.
func ParseSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}

// ParseSalary parses a salary form field to an integer. Absent or unparseable
// values become NULL rather than failing the submission.
func ParseSalary(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
