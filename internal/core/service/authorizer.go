package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// CheckRole rejects an account whose role is not in allowed.
func CheckRole(account *domain.Account, allowed domain.RoleSet) error {
	if account == nil || !allowed.Allows(account.Role) {
		return domain.ErrInsufficientRole
	}
	return nil
}

// Authorizer answers existence and ownership questions about owned resources.
// It holds no per-request state.
type Authorizer struct {
	owners  ports.OwnerLookup
	timeout time.Duration
}

func NewAuthorizer(owners ports.OwnerLookup, timeout time.Duration) *Authorizer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Authorizer{owners: owners, timeout: timeout}
}

// Lookup validates ref and fetches the owner projection of the resource it names.
func (a *Authorizer) Lookup(ctx context.Context, ref domain.ResourceRef) (*domain.OwnerRef, error) {
	if ref.ID == "" || uuid.Validate(ref.ID) != nil {
		return nil, domain.Reject(domain.KindInvalidResourceReference,
			fmt.Sprintf("invalid %s id", ref.Kind), nil)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	owner, err := a.owners.LookupOwner(ctx, ref.Kind, ref.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Reject(domain.KindResourceNotFound,
				fmt.Sprintf("%s not found", ref.Kind), nil)
		}
		return nil, fmt.Errorf("lookup %s %s: %w", ref.Kind, ref.ID, err)
	}
	return &owner, nil
}

// Authorize runs the existence check, including the parent farm of an
// indirectly owned resource, and then decides ownership: an override role
// passes, otherwise the account must be the direct owner or the owner of the
// parent farm. The returned OwnerRef is the projection of ref itself.
func (a *Authorizer) Authorize(ctx context.Context, account *domain.Account, ref domain.ResourceRef, override domain.RoleSet) (*domain.OwnerRef, error) {
	owner, err := a.Lookup(ctx, ref)
	if err != nil {
		return nil, err
	}
	accountable, err := a.accountableOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	if account == nil {
		return nil, domain.ErrNotOwner
	}
	if override.Allows(account.Role) {
		return owner, nil
	}
	if accountable != account.ID {
		return nil, domain.ErrNotOwner
	}
	return owner, nil
}

// AuthorizeParent applies Authorize to the parent a create request targets,
// such as the farm_id of a new animal or the animal_id of a health record.
func (a *Authorizer) AuthorizeParent(ctx context.Context, account *domain.Account, parent domain.ResourceRef, override domain.RoleSet) (*domain.OwnerRef, error) {
	return a.Authorize(ctx, account, parent, override)
}

// accountableOwner follows at most one parent hop.
func (a *Authorizer) accountableOwner(ctx context.Context, owner *domain.OwnerRef) (string, error) {
	if owner.Direct() {
		return owner.OwnerID, nil
	}
	if owner.FarmID == "" {
		return "", fmt.Errorf("%s %s has no owner", owner.Kind, owner.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	farm, err := a.owners.LookupOwner(ctx, domain.KindFarm, owner.FarmID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.Reject(domain.KindResourceNotFound,
				fmt.Sprintf("farm of %s not found", owner.Kind), nil)
		}
		return "", fmt.Errorf("lookup parent farm %s: %w", owner.FarmID, err)
	}
	if !farm.Direct() {
		return "", fmt.Errorf("farm %s has no owner", farm.ID)
	}
	return farm.OwnerID, nil
}
