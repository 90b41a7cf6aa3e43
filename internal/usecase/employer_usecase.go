package usecase

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type employerUsecase struct {
	employerRepo domain.EmployerRepository
	validate     *validator.Validate
}

func NewEmployerUsecase(employerRepo domain.EmployerRepository, validate *validator.Validate) domain.EmployerUsecase {
	return &employerUsecase{
		employerRepo: employerRepo,
		validate:     validate,
	}
}

func (u *employerUsecase) GetProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}
	return profile, nil
}

func (u *employerUsecase) UpdateProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	// Identity comes from the session, never from the payload
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	return u.employerRepo.Update(ctx, profile)
}
