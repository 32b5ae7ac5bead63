package ports

import (
	"context"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// AccountRepository defines account persistence.
// Lookups return domain.ErrAccountNotFound when no row matches.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Create returns domain.ErrAccountExists on a duplicate email.
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	ListByRoles(ctx context.Context, roles []string) ([]*domain.Account, error)
}
