package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// Profile is the base identity record shared by all users.
// ID is the Supabase auth UUID; Role is fixed at signup.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name" validate:"required,valid_name,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     *string   `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the resolved actor for a session: the base profile plus the
// role-specific record matching Profile.Role. Exactly one of Candidate or
// Employer is set for non-admin users. A zero Identity (Authenticated=false)
// is a valid state: public pages do not require login.
type Identity struct {
	Authenticated bool              `json:"authenticated"`
	Profile       *Profile          `json:"profile,omitempty"`
	Candidate     *CandidateProfile `json:"candidate_profile,omitempty"`
	Employer      *EmployerProfile  `json:"employer_profile,omitempty"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	CreateWithCandidate(ctx context.Context, profile *Profile, candidate *CandidateProfile) error
	CreateWithEmployer(ctx context.Context, profile *Profile, employer *EmployerProfile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
}

// CandidateSignup carries the signup form for a candidate account.
type CandidateSignup struct {
	FullName          string `json:"full_name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone"`
	WorkAuthorization string `json:"work_authorization" binding:"required"`
}

// EmployerSignup carries the signup form for an employer account.
type EmployerSignup struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name" binding:"required"`
	Location    string `json:"location"`
}

type IdentityUsecase interface {
	// Resolve loads the profile and its role-specific counterpart for userID.
	// An empty userID resolves to an unauthenticated identity, not an error.
	Resolve(ctx context.Context, userID string) (*Identity, error)

	RegisterCandidate(ctx context.Context, userID string, input *CandidateSignup) (*Identity, error)
	RegisterEmployer(ctx context.Context, userID string, input *EmployerSignup) (*Identity, error)
}
