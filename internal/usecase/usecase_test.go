package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) CreateWithCandidate(ctx context.Context, profile *domain.Profile, candidate *domain.CandidateProfile) error {
	return m.Called(ctx, profile, candidate).Error(0)
}

func (m *MockProfileRepo) CreateWithEmployer(ctx context.Context, profile *domain.Profile, employer *domain.EmployerProfile) error {
	return m.Called(ctx, profile, employer).Error(0)
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) SetResumeURL(ctx context.Context, userID string, resumeURL string) error {
	return m.Called(ctx, userID, resumeURL).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}

func (m *MockJobRepo) FetchActiveWithEmployer(ctx context.Context) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithEmployer), args.Error(1)
}

func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestCandidateIDOR(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, nil, newValidator())

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		_, err := uc.GetProfile(ctx, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when Context UserID is nil", func(t *testing.T) {
		ctx := context.Background() // keys missing
		_, err := uc.GetProfile(ctx, "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestCandidateUpdateValidation(t *testing.T) {
	t.Run("Should reject unknown work authorization", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, nil, newValidator())
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.CandidateProfile{WorkAuthorization: "B2"}
		err := uc.UpdateProfile(ctx, profile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "work authorization")
	})

	t.Run("Should force UserID from context", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, nil, newValidator())
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.CandidateProfile{
			UserID:            "hacker_try",
			WorkAuthorization: domain.WorkAuthUSC,
		}

		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.CandidateProfile)
			assert.Equal(t, "user1", p.UserID)
		})

		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCandidateProfileLookup(t *testing.T) {
	t.Run("Should map a missing candidate row to 404, not a server fault", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, nil, newValidator())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, domain.ErrNotFound)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		_, err := uc.GetProfile(ctx, "user1")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestEmployerProfile(t *testing.T) {
	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		uc := usecase.NewEmployerUsecase(new(MockEmployerRepo), newValidator())
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "emp1")
		_, err := uc.GetProfile(ctx, "emp2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should map a missing employer row to 404", func(t *testing.T) {
		mockRepo := new(MockEmployerRepo)
		uc := usecase.NewEmployerUsecase(mockRepo, newValidator())

		mockRepo.On("GetByUserID", mock.Anything, "emp1").Return(nil, domain.ErrNotFound)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "emp1")
		_, err := uc.GetProfile(ctx, "emp1")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should force UserID from context on update", func(t *testing.T) {
		mockRepo := new(MockEmployerRepo)
		uc := usecase.NewEmployerUsecase(mockRepo, newValidator())
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "emp1")
		profile := &domain.EmployerProfile{
			UserID:      "hacker_try",
			CompanyName: "Acme",
		}

		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.EmployerProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.EmployerProfile)
			assert.Equal(t, "emp1", p.UserID)
		})

		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an update without a company name", func(t *testing.T) {
		uc := usecase.NewEmployerUsecase(new(MockEmployerRepo), newValidator())
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "emp1")
		err := uc.UpdateProfile(ctx, &domain.EmployerProfile{})
		assert.Error(t, err)
	})
}

func TestIdentityResolve(t *testing.T) {
	t.Run("Should resolve empty userID as unauthenticated, not an error", func(t *testing.T) {
		uc := usecase.NewIdentityUsecase(new(MockProfileRepo), new(MockCandidateRepo), new(MockEmployerRepo), newValidator())
		identity, err := uc.Resolve(context.Background(), "")
		assert.NoError(t, err)
		assert.False(t, identity.Authenticated)
		assert.Nil(t, identity.Profile)
	})

	t.Run("Should load the candidate profile for a candidate role", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockCandidates := new(MockCandidateRepo)
		uc := usecase.NewIdentityUsecase(mockProfiles, mockCandidates, new(MockEmployerRepo), newValidator())

		mockProfiles.On("GetByID", mock.Anything, "user1").Return(&domain.Profile{ID: "user1", Role: domain.RoleCandidate}, nil)
		mockCandidates.On("GetByUserID", mock.Anything, "user1").Return(&domain.CandidateProfile{ID: 7, UserID: "user1"}, nil)

		identity, err := uc.Resolve(context.Background(), "user1")
		assert.NoError(t, err)
		assert.True(t, identity.Authenticated)
		assert.NotNil(t, identity.Candidate)
		assert.Nil(t, identity.Employer)
	})

	t.Run("Should surface an interrupted signup as a missing role profile", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockCandidates := new(MockCandidateRepo)
		uc := usecase.NewIdentityUsecase(mockProfiles, mockCandidates, new(MockEmployerRepo), newValidator())

		mockProfiles.On("GetByID", mock.Anything, "user1").Return(&domain.Profile{ID: "user1", Role: domain.RoleCandidate}, nil)
		mockCandidates.On("GetByUserID", mock.Anything, "user1").Return(nil, domain.ErrNotFound)

		_, err := uc.Resolve(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "profile is missing")
	})
}

func TestRegisterCandidate(t *testing.T) {
	t.Run("Should reject unknown work authorization", func(t *testing.T) {
		uc := usecase.NewIdentityUsecase(new(MockProfileRepo), new(MockCandidateRepo), new(MockEmployerRepo), newValidator())
		input := &domain.CandidateSignup{
			FullName:          "Jane Doe",
			Email:             "jane@example.com",
			WorkAuthorization: "Tourist",
		}
		_, err := uc.RegisterCandidate(context.Background(), "user1", input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "work authorization")
	})

	t.Run("Should create profile and candidate profile in one call", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewIdentityUsecase(mockProfiles, new(MockCandidateRepo), new(MockEmployerRepo), newValidator())
		input := &domain.CandidateSignup{
			FullName:          "Jane Doe",
			Email:             "jane@example.com",
			WorkAuthorization: domain.WorkAuthOPTEAD,
		}

		mockProfiles.On("CreateWithCandidate", mock.Anything, mock.AnythingOfType("*domain.Profile"), mock.AnythingOfType("*domain.CandidateProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			c := args.Get(2).(*domain.CandidateProfile)
			assert.Equal(t, domain.RoleCandidate, p.Role)
			assert.Equal(t, "user1", c.UserID)
		})

		identity, err := uc.RegisterCandidate(context.Background(), "user1", input)
		assert.NoError(t, err)
		assert.True(t, identity.Authenticated)
		assert.NotNil(t, identity.Candidate)
		mockProfiles.AssertExpectations(t)
	})
}

func TestPostJob(t *testing.T) {
	employer := &domain.EmployerProfile{ID: 42, UserID: "emp1", CompanyName: "Acme"}

	t.Run("Should fail when the actor has no employer profile", func(t *testing.T) {
		mockEmployers := new(MockEmployerRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockEmployers)

		mockEmployers.On("GetByUserID", mock.Anything, "cand1").Return(nil, domain.ErrNotFound)

		_, err := uc.PostJob(context.Background(), "cand1", &domain.PostJobInput{Title: "Engineer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employers can post jobs")
		mockJobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should fail on a blank required field", func(t *testing.T) {
		mockEmployers := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(new(MockJobRepo), mockEmployers)

		mockEmployers.On("GetByUserID", mock.Anything, "emp1").Return(employer, nil)

		_, err := uc.PostJob(context.Background(), "emp1", &domain.PostJobInput{
			Title:       "   ",
			Description: "Build things",
			Location:    "Remote",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
	})

	t.Run("Should fail when minimum salary exceeds maximum", func(t *testing.T) {
		mockEmployers := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(new(MockJobRepo), mockEmployers)

		mockEmployers.On("GetByUserID", mock.Anything, "emp1").Return(employer, nil)

		_, err := uc.PostJob(context.Background(), "emp1", &domain.PostJobInput{
			Title:       "Engineer",
			Description: "Build things",
			Location:    "Remote",
			SalaryMin:   "150000",
			SalaryMax:   "120000",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Minimum salary")
	})

	t.Run("Should parse skills and salaries and scope the job to the employer", func(t *testing.T) {
		mockEmployers := new(MockEmployerRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockEmployers)

		mockEmployers.On("GetByUserID", mock.Anything, "emp1").Return(employer, nil)
		mockJobs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.PostJob(context.Background(), "emp1", &domain.PostJobInput{
			Title:             "Engineer",
			Description:       "Build things",
			Location:          "Remote",
			SalaryMin:         "120000",
			SalaryMax:         "not a number",
			Skills:            "Go, SQL, , Kafka",
			WorkAuthorization: []string{domain.WorkAuthUSC, domain.WorkAuthGC},
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), job.EmployerID)
		assert.Equal(t, []string{"Go", "SQL", "Kafka"}, job.SkillsRequired)
		assert.Equal(t, 120000, *job.SalaryMin)
		assert.Nil(t, job.SalaryMax)
		assert.True(t, job.IsActive)
	})
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Splits and trims", "Go, SQL, Kafka", []string{"Go", "SQL", "Kafka"}},
		{"Keeps order and duplicates", "Go,Go, SQL", []string{"Go", "Go", "SQL"}},
		{"Drops empty tokens", " , Go , ,", []string{"Go"}},
		{"Empty input is nil", "   ", nil},
		{"Only separators is nil", ",,,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, usecase.ParseSkills(tt.input))
		})
	}
}

func TestParseSalary(t *testing.T) {
	assert.Nil(t, usecase.ParseSalary(""))
	assert.Nil(t, usecase.ParseSalary("  "))
	assert.Nil(t, usecase.ParseSalary("competitive"))
	assert.Equal(t, 90000, *usecase.ParseSalary("90000"))
	assert.Equal(t, 90000, *usecase.ParseSalary(" 90000 "))
}

func TestApplicationSubmit(t *testing.T) {
	candidate := &domain.CandidateProfile{ID: 7, UserID: "cand1"}
	activeJob := &domain.Job{ID: 3, EmployerID: 42, Title: "Engineer", IsActive: true}

	t.Run("Should fail when the actor has no candidate profile", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockCandidates := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), mockCandidates, new(MockEmployerRepo), nil)

		mockCandidates.On("GetByUserID", mock.Anything, "emp1").Return(nil, domain.ErrNotFound)

		_, err := uc.Submit(context.Background(), "emp1", 3, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates can apply")
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should fail on an inactive job", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobs, mockCandidates, new(MockEmployerRepo), nil)

		mockCandidates.On("GetByUserID", mock.Anything, "cand1").Return(candidate, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(&domain.Job{ID: 3, IsActive: false}, nil)

		_, err := uc.Submit(context.Background(), "cand1", 3, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inactive job")
	})

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockCandidates, new(MockEmployerRepo), nil)

		mockCandidates.On("GetByUserID", mock.Anything, "cand1").Return(candidate, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(activeJob, nil)
		mockApps.On("Exists", mock.Anything, int64(3), int64(7)).Return(true, nil)

		_, err := uc.Submit(context.Background(), "cand1", 3, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should store an empty cover letter as NULL and start pending", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockCandidates, new(MockEmployerRepo), nil)

		mockCandidates.On("GetByUserID", mock.Anything, "cand1").Return(candidate, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(activeJob, nil)
		mockApps.On("Exists", mock.Anything, int64(3), int64(7)).Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Submit(context.Background(), "cand1", 3, "")
		assert.NoError(t, err)
		assert.Nil(t, app.CoverLetter)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, int64(7), app.CandidateID)
	})

	t.Run("Should keep a provided cover letter", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockCandidates, new(MockEmployerRepo), nil)

		mockCandidates.On("GetByUserID", mock.Anything, "cand1").Return(candidate, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(activeJob, nil)
		mockApps.On("Exists", mock.Anything, int64(3), int64(7)).Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Submit(context.Background(), "cand1", 3, "I am a great fit")
		assert.NoError(t, err)
		assert.Equal(t, "I am a great fit", *app.CoverLetter)
	})
}

func TestApplicationSetStatus(t *testing.T) {
	employer := &domain.EmployerProfile{ID: 42, UserID: "emp1"}
	pendingApp := &domain.Application{ID: 11, JobID: 3, Status: domain.ApplicationStatusPending}
	ownedJob := &domain.Job{ID: 3, EmployerID: 42}

	t.Run("Should reject statuses outside accepted and rejected", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo), new(MockEmployerRepo), nil)
		err := uc.SetStatus(context.Background(), "emp1", 11, "pending")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should reject re-deciding a decided application", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), new(MockCandidateRepo), new(MockEmployerRepo), nil)

		decided := &domain.Application{ID: 11, JobID: 3, Status: domain.ApplicationStatusAccepted}
		mockApps.On("GetByID", mock.Anything, int64(11)).Return(decided, nil)

		err := uc.SetStatus(context.Background(), "emp1", 11, domain.ApplicationStatusRejected)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been accepted")
		mockApps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject an employer who does not own the job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockEmployers := new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockCandidateRepo), mockEmployers, nil)

		mockApps.On("GetByID", mock.Anything, int64(11)).Return(pendingApp, nil)
		mockEmployers.On("GetByUserID", mock.Anything, "other_emp").Return(&domain.EmployerProfile{ID: 99, UserID: "other_emp"}, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(ownedJob, nil)

		err := uc.SetStatus(context.Background(), "other_emp", 11, domain.ApplicationStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
		mockApps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should accept a pending application owned by the employer", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockEmployers := new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockCandidateRepo), mockEmployers, nil)

		mockApps.On("GetByID", mock.Anything, int64(11)).Return(pendingApp, nil)
		mockEmployers.On("GetByUserID", mock.Anything, "emp1").Return(employer, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(ownedJob, nil)
		mockApps.On("UpdateStatus", mock.Anything, int64(11), domain.ApplicationStatusAccepted).Return(nil)

		err := uc.SetStatus(context.Background(), "emp1", 11, domain.ApplicationStatusAccepted)
		assert.NoError(t, err)
		mockApps.AssertExpectations(t)
	})
}

func TestListForJobOwnership(t *testing.T) {
	t.Run("Should hide another employer's applicants", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockEmployers := new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockCandidateRepo), mockEmployers, nil)

		mockEmployers.On("GetByUserID", mock.Anything, "emp2").Return(&domain.EmployerProfile{ID: 99, UserID: "emp2"}, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(&domain.Job{ID: 3, EmployerID: 42}, nil)

		_, err := uc.ListForJob(context.Background(), "emp2", 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
		mockApps.AssertNotCalled(t, "GetByJobID", mock.Anything, mock.Anything)
	})

	t.Run("Should list applicants for the owning employer", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockEmployers := new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockCandidateRepo), mockEmployers, nil)

		mockEmployers.On("GetByUserID", mock.Anything, "emp1").Return(&domain.EmployerProfile{ID: 42, UserID: "emp1"}, nil)
		mockJobs.On("GetByID", mock.Anything, int64(3)).Return(&domain.Job{ID: 3, EmployerID: 42}, nil)
		mockApps.On("GetByJobID", mock.Anything, int64(3)).Return([]domain.Application{{ID: 11, JobID: 3}}, nil)

		apps, err := uc.ListForJob(context.Background(), "emp1", 3)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

// fakeResumeStore records uploads without touching a bucket.
type fakeResumeStore struct {
	uploadedExt string
	url         string
	err         error
}

func (f *fakeResumeStore) Upload(ctx context.Context, userID, ext string, content []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploadedExt = ext
	return f.url, nil
}

func TestUploadResume(t *testing.T) {
	pdfContent := []byte("%PDF-1.7 minimal")

	t.Run("Should fail when the actor has no candidate profile", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		store := &fakeResumeStore{url: "https://cdn.example.com/user1/resume.pdf"}
		uc := usecase.NewCandidateUsecase(mockRepo, store, newValidator())

		mockRepo.On("GetByUserID", mock.Anything, "emp1").Return(nil, domain.ErrNotFound)

		_, err := uc.UploadResume(context.Background(), "emp1", "resume.pdf", pdfContent)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates")
	})

	t.Run("Should reject an unsupported extension", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, &fakeResumeStore{}, newValidator())

		mockRepo.On("GetByUserID", mock.Anything, "cand1").Return(&domain.CandidateProfile{ID: 7, UserID: "cand1"}, nil)

		_, err := uc.UploadResume(context.Background(), "cand1", "resume.exe", pdfContent)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), ".pdf, .doc or .docx")
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, &fakeResumeStore{}, newValidator())

		mockRepo.On("GetByUserID", mock.Anything, "cand1").Return(&domain.CandidateProfile{ID: 7, UserID: "cand1"}, nil)

		_, err := uc.UploadResume(context.Background(), "cand1", "resume.pdf", []byte("MZ executable"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})

	t.Run("Should store the file and record its URL", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		store := &fakeResumeStore{url: "https://cdn.example.com/cand1/resume.pdf"}
		uc := usecase.NewCandidateUsecase(mockRepo, store, newValidator())

		mockRepo.On("GetByUserID", mock.Anything, "cand1").Return(&domain.CandidateProfile{ID: 7, UserID: "cand1"}, nil)
		mockRepo.On("SetResumeURL", mock.Anything, "cand1", store.url).Return(nil)

		url, err := uc.UploadResume(context.Background(), "cand1", "resume.pdf", pdfContent)
		assert.NoError(t, err)
		assert.Equal(t, store.url, url)
		assert.Equal(t, ".pdf", store.uploadedExt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should surface storage failures without recording a URL", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		store := &fakeResumeStore{err: errors.New("bucket unavailable")}
		uc := usecase.NewCandidateUsecase(mockRepo, store, newValidator())

		mockRepo.On("GetByUserID", mock.Anything, "cand1").Return(&domain.CandidateProfile{ID: 7, UserID: "cand1"}, nil)

		_, err := uc.UploadResume(context.Background(), "cand1", "resume.pdf", pdfContent)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "SetResumeURL", mock.Anything, mock.Anything, mock.Anything)
	})
}
