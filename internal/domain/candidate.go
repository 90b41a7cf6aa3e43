package domain

import (
	"context"
	"time"
)

// Work authorization categories a candidate can hold and a job can require.
const (
	WorkAuthH1B    = "H1B"
	WorkAuthCPTEAD = "CPT-EAD"
	WorkAuthOPTEAD = "OPT-EAD"
	WorkAuthGC     = "GC"
	WorkAuthGCEAD  = "GC-EAD"
	WorkAuthUSC    = "USC"
	WorkAuthTN     = "TN"
)

var workAuthorizations = map[string]bool{
	WorkAuthH1B:    true,
	WorkAuthCPTEAD: true,
	WorkAuthOPTEAD: true,
	WorkAuthGC:     true,
	WorkAuthGCEAD:  true,
	WorkAuthUSC:    true,
	WorkAuthTN:     true,
}

// ValidWorkAuthorization reports whether s is a known eligibility category.
func ValidWorkAuthorization(s string) bool {
	return workAuthorizations[s]
}

type CandidateProfile struct {
	ID                int64     `json:"id"`
	UserID            string    `json:"user_id" validate:"required"`
	WorkAuthorization string    `json:"work_authorization" validate:"required"`
	ResumeURL         *string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	Skills            []string  `json:"skills"`
	Bio               *string   `json:"bio,omitempty" validate:"omitempty,max=500"`
	ExperienceYears   *int      `json:"experience_years,omitempty"`
	Location          *string   `json:"location,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Joined identity data for applicant views
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
}

type CandidateRepository interface {
	Create(ctx context.Context, profile *CandidateProfile) error
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Update(ctx context.Context, profile *CandidateProfile) error
	SetResumeURL(ctx context.Context, userID string, resumeURL string) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, profile *CandidateProfile) error
	// UploadResume stores the file under {userID}/resume.{ext} and records the
	// resulting public URL on the candidate profile.
	UploadResume(ctx context.Context, userID, filename string, content []byte) (string, error)
}
