package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration, login and profile management.
type AuthService struct {
	repo   ports.AccountRepository
	issuer *TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, issuer *TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:             uuid.NewString(),
		Email:          in.Email,
		PasswordHash:   string(hash),
		FullName:       strings.TrimSpace(in.FullName),
		Phone:          in.Phone,
		Role:           in.Role,
		Location:       in.Location,
		Specialization: in.Specialization,
		ClinicName:     in.ClinicName,
		LicenseNumber:  in.LicenseNumber,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if !errors.Is(err, domain.ErrAccountExists) {
			s.logger.Error().Err(err).Msg("failed to create account")
		}
		return nil, err
	}
	s.logger.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("account registered")

	return s.authenticated(account)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.authenticated(account)
}

func (s *AuthService) UpdateProfile(ctx context.Context, accountID string, in ports.ProfileInput) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, domain.Invalid("full_name must not be empty")
		}
		account.FullName = name
	}
	setString(&account.Phone, in.Phone)
	setString(&account.Location, in.Location)
	if account.IsServiceProvider() {
		setString(&account.Specialization, in.Specialization)
		setString(&account.ClinicName, in.ClinicName)
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AuthService) ListProviders(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.ListByRoles(ctx, []string{domain.RoleVet, domain.RoleAgrovet})
}

func (s *AuthService) authenticated(account *domain.Account) (*ports.AuthResult, error) {
	token, expires, err := s.issuer.Issue(account)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, ExpiresAt: expires, Account: account}, nil
}

func validateRegistration(in ports.RegisterInput) error {
	var details []string
	if in.Email == "" {
		details = append(details, "email is required")
	}
	if len(in.Password) < minPasswordLen {
		details = append(details, "password must be at least 6 characters")
	}
	if strings.TrimSpace(in.FullName) == "" {
		details = append(details, "full_name is required")
	}
	switch in.Role {
	case domain.RoleFarmer, domain.RoleAgrovet:
	case domain.RoleVet:
		if in.ClinicName == "" {
			details = append(details, "clinic_name is required for vets")
		}
		if in.Specialization == "" {
			details = append(details, "specialization is required for vets")
		}
		if in.LicenseNumber == "" {
			details = append(details, "license_number is required for vets")
		}
	default:
		details = append(details, "role must be one of farmer, vet, agrovet")
	}
	if len(details) > 0 {
		return domain.Invalid(details...)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
