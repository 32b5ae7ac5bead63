package ports

import (
	"context"
	"time"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// RegisterInput carries a self-registration request.
type RegisterInput struct {
	Email          string
	Password       string
	FullName       string
	Phone          string
	Role           string
	Location       string
	Specialization string
	ClinicName     string
	LicenseNumber  string
}

// ProfileInput lists profile fields an account may change; nil leaves a field as is.
type ProfileInput struct {
	FullName       *string
	Phone          *string
	Location       *string
	Specialization *string
	ClinicName     *string
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *domain.Account
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	UpdateProfile(ctx context.Context, accountID string, in ProfileInput) (*domain.Account, error)
	// ListProviders returns the vet and agrovet directory.
	ListProviders(ctx context.Context) ([]*domain.Account, error)
}
