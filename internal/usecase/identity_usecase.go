package usecase

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"strings"

	"github.com/go-playground/validator/v10"
)

type identityUsecase struct {
	profileRepo   domain.ProfileRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	validate      *validator.Validate
}

func NewIdentityUsecase(
	profileRepo domain.ProfileRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	validate *validator.Validate,
) domain.IdentityUsecase {
	return &identityUsecase{
		profileRepo:   profileRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		validate:      validate,
	}
}

// Resolve loads the actor's profile and the role-specific record matching its
// role. An empty userID is a valid unauthenticated state, not an error. A
// profile whose role counterpart is missing (interrupted signup) resolves to
// a NotFound error so callers can degrade instead of faulting.
func (u *identityUsecase) Resolve(ctx context.Context, userID string) (*domain.Identity, error) {
	if userID == "" {
		return &domain.Identity{Authenticated: false}, nil
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("Account not found")
	}

	identity := &domain.Identity{
		Authenticated: true,
		Profile:       profile,
	}

	switch profile.Role {
	case domain.RoleCandidate:
		candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.NotFound("Candidate profile is missing for this account")
		}
		identity.Candidate = candidate
	case domain.RoleEmployer:
		employer, err := u.employerRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.NotFound("Employer profile is missing for this account")
		}
		identity.Employer = employer
	}

	return identity, nil
}

// RegisterCandidate creates the base profile and candidate profile for a
// freshly signed-up auth user. Both inserts share one transaction.
func (u *identityUsecase) RegisterCandidate(ctx context.Context, userID string, input *domain.CandidateSignup) (*domain.Identity, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if !domain.ValidWorkAuthorization(input.WorkAuthorization) {
		return nil, apperror.BadRequest("Invalid work authorization category")
	}

	profile := &domain.Profile{
		ID:       userID,
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.TrimSpace(input.Email),
		Phone:    optionalString(input.Phone),
		Role:     domain.RoleCandidate,
	}
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	candidate := &domain.CandidateProfile{
		UserID:            userID,
		WorkAuthorization: input.WorkAuthorization,
	}

	if err := u.profileRepo.CreateWithCandidate(ctx, profile, candidate); err != nil {
		return nil, err
	}

	return &domain.Identity{
		Authenticated: true,
		Profile:       profile,
		Candidate:     candidate,
	}, nil
}

// RegisterEmployer creates the base profile and employer profile in one
// transaction.
func (u *identityUsecase) RegisterEmployer(ctx context.Context, userID string, input *domain.EmployerSignup) (*domain.Identity, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	profile := &domain.Profile{
		ID:       userID,
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.TrimSpace(input.Email),
		Phone:    optionalString(input.Phone),
		Role:     domain.RoleEmployer,
	}
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	employer := &domain.EmployerProfile{
		UserID:      userID,
		CompanyName: strings.TrimSpace(input.CompanyName),
		Location:    optionalString(input.Location),
	}

	if err := u.profileRepo.CreateWithEmployer(ctx, profile, employer); err != nil {
		return nil, err
	}

	return &domain.Identity{
		Authenticated: true,
		Profile:       profile,
		Employer:      employer,
	}, nil
}

// optionalString maps an empty form value to NULL.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
