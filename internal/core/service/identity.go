package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// IdentityResolver maps verified claims to a stored account.
type IdentityResolver struct {
	accounts ports.AccountRepository
	timeout  time.Duration
}

func NewIdentityResolver(accounts ports.AccountRepository, timeout time.Duration) *IdentityResolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &IdentityResolver{accounts: accounts, timeout: timeout}
}

// Resolve performs one account read by claims.Subject. A missing account is
// reported as AccountNotFound; any other store failure is returned wrapped.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *domain.Claims) (*domain.Account, error) {
	if claims == nil || claims.Subject == "" {
		return nil, domain.ErrMalformedCredential
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	account, err := r.accounts.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrAccountNotResolved
		}
		return nil, fmt.Errorf("resolve account %s: %w", claims.Subject, err)
	}
	return account, nil
}
