package domain

import (
	"context"
	"errors"
	"time"
)

const (
	RoleFarmer  = "farmer"
	RoleVet     = "vet"
	RoleAgrovet = "agrovet"
	RoleAdmin   = "admin"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account models a registered user of the platform.
type Account struct {
	ID             string    `json:"id" bson:"_id"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	FullName       string    `json:"full_name" bson:"full_name"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Role           string    `json:"role" bson:"role"`
	Location       string    `json:"location,omitempty" bson:"location,omitempty"`
	Specialization string    `json:"specialization,omitempty" bson:"specialization,omitempty"`
	ClinicName     string    `json:"clinic_name,omitempty" bson:"clinic_name,omitempty"`
	LicenseNumber  string    `json:"license_number,omitempty" bson:"license_number,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// IsServiceProvider reports whether the account is listed in the vet/agrovet directory.
func (a *Account) IsServiceProvider() bool {
	return a.Role == RoleVet || a.Role == RoleAgrovet
}

// Claims is the verified content of a bearer credential.
type Claims struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type accountCtxKey struct{}

// WithAccount returns a copy of ctx carrying the resolved account.
func WithAccount(ctx context.Context, a *Account) context.Context {
	return context.WithValue(ctx, accountCtxKey{}, a)
}

// AccountFromContext returns the account attached by WithAccount, if any.
func AccountFromContext(ctx context.Context) (*Account, bool) {
	a, ok := ctx.Value(accountCtxKey{}).(*Account)
	return a, ok && a != nil
}
