package domain

import (
	"context"
	"strings"
	"time"
)

type Job struct {
	ID                 int64     `json:"id"`
	EmployerID         int64     `json:"employer_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	JobType            *string   `json:"job_type,omitempty"`
	SalaryMin          *int      `json:"salary_min,omitempty"`
	SalaryMax          *int      `json:"salary_max,omitempty"`
	SkillsRequired     []string  `json:"skills_required"`
	WorkAuthorization  []string  `json:"work_authorization"`
	ExperienceRequired *int      `json:"experience_required,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// JobWithEmployer extends Job with the owning employer's public fields,
// joined one level deep for listing and detail pages.
type JobWithEmployer struct {
	Job
	CompanyName        string  `json:"company_name"`
	CompanyLocation    *string `json:"company_location,omitempty"`
	CompanyWebsite     *string `json:"company_website,omitempty"`
	CompanyDescription *string `json:"company_description,omitempty"`
}

// JobFilter is the free-text filter applied over an already-fetched listing.
// Empty fields always match.
type JobFilter struct {
	Query    string
	Location string
}

// Matches reports whether j satisfies the filter: the query must be a
// case-insensitive substring of title or description, and the location a
// case-insensitive substring of the job location. Both conditions are ANDed.
func (f JobFilter) Matches(j *JobWithEmployer) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Description), q) {
			return false
		}
	}
	if loc := strings.ToLower(strings.TrimSpace(f.Location)); loc != "" {
		if !strings.Contains(strings.ToLower(j.Location), loc) {
			return false
		}
	}
	return true
}

// FilterJobs returns the jobs matching f, preserving input order.
func FilterJobs(jobs []JobWithEmployer, f JobFilter) []JobWithEmployer {
	if f.Query == "" && f.Location == "" {
		return jobs
	}
	out := make([]JobWithEmployer, 0, len(jobs))
	for i := range jobs {
		if f.Matches(&jobs[i]) {
			out = append(out, jobs[i])
		}
	}
	return out
}

// PostJobInput is the employer's job posting form. Skills arrive as one
// comma-separated string and salaries as free text, exactly as the posting
// form submits them.
type PostJobInput struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	Location          string   `json:"location" binding:"required"`
	JobType           string   `json:"job_type"`
	SalaryMin         string   `json:"salary_min"`
	SalaryMax         string   `json:"salary_max"`
	Skills            string   `json:"skills"`
	WorkAuthorization []string `json:"work_authorization"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	FetchActiveWithEmployer(ctx context.Context) ([]JobWithEmployer, error)
	FetchByEmployerID(ctx context.Context, employerID int64) ([]Job, error)
}

type JobUsecase interface {
	// ListActiveJobs returns active postings enriched with employer data,
	// newest first, narrowed by the optional filter.
	ListActiveJobs(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	GetJobDetails(ctx context.Context, id int64) (*JobWithEmployer, error)

	// Employer operations
	PostJob(ctx context.Context, userID string, input *PostJobInput) (*Job, error)
	ListMyJobs(ctx context.Context, userID string) ([]Job, error)
}
