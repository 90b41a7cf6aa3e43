package domain

import (
	"context"
	"time"
)

// EmployerProfile is the company-facing extension of an employer Profile.
type EmployerProfile struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id" validate:"required"`
	CompanyName    string    `json:"company_name" validate:"required,max=150"`
	Location       *string   `json:"location,omitempty"`
	CompanyWebsite *string   `json:"company_website,omitempty" validate:"omitempty,url"`
	CompanySize    *string   `json:"company_size,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EmployerRepository interface {
	Create(ctx context.Context, profile *EmployerProfile) error
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	Update(ctx context.Context, profile *EmployerProfile) error
}

type EmployerUsecase interface {
	GetProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, profile *EmployerProfile) error
}
