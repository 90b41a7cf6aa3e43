package usecase

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// ResumeStore is the slice of pkg/storage the candidate usecase needs.
type ResumeStore interface {
	Upload(ctx context.Context, userID, ext string, content []byte) (string, error)
}

// Resume uploads above this size are rejected before touching the bucket.
const maxResumeSize = 10 << 20 // 10 MiB

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	resumes       ResumeStore
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, resumes ResumeStore, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		resumes:       resumes,
		validate:      validate,
	}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		// A missing row is an incomplete signup, not a server fault
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return profile, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	// Identity comes from the session, never from the payload
	profile.UserID = ctxUserID

	if !domain.ValidWorkAuthorization(profile.WorkAuthorization) {
		return apperror.BadRequest("Invalid work authorization category")
	}
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	return u.candidateRepo.Update(ctx, profile)
}

// UploadResume stores the file at {userID}/resume.{ext} and records the public
// URL on the candidate profile. Re-uploading replaces the previous file.
func (u *candidateUsecase) UploadResume(ctx context.Context, userID, filename string, content []byte) (string, error) {
	if _, err := u.candidateRepo.GetByUserID(ctx, userID); err != nil {
		return "", apperror.Forbidden("Only candidates can upload a resume")
	}

	ext, ok := storage.ValidExtension(filename)
	if !ok {
		return "", apperror.BadRequest("Resume must be a .pdf, .doc or .docx file")
	}
	if len(content) == 0 {
		return "", apperror.BadRequest("Resume file is empty")
	}
	if len(content) > maxResumeSize {
		return "", apperror.BadRequest("Resume file is too large (max 10 MB)")
	}
	if !storage.MatchesExtension(ext, content) {
		return "", apperror.BadRequest("Resume content does not match its file type")
	}

	url, err := u.resumes.Upload(ctx, userID, ext, content)
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := u.candidateRepo.SetResumeURL(ctx, userID, url); err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}
