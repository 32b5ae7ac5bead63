package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

const (
	accountKey  = "farmtrak.account"
	ownerRefKey = "farmtrak.owner_ref"
)

// SetAccount attaches the resolved account to the echo context and to the
// request's context.Context.
func SetAccount(c echo.Context, a *domain.Account) {
	c.Set(accountKey, a)
	req := c.Request()
	c.SetRequest(req.WithContext(domain.WithAccount(req.Context(), a)))
}

// AccountFrom returns the account attached by the auth middleware, if any.
func AccountFrom(c echo.Context) (*domain.Account, bool) {
	a, ok := c.Get(accountKey).(*domain.Account)
	return a, ok && a != nil
}

// MustAccount is AccountFrom for routes behind Authenticate. It reports
// MissingCredential when the middleware did not run.
func MustAccount(c echo.Context) (*domain.Account, error) {
	a, ok := AccountFrom(c)
	if !ok {
		return nil, domain.ErrMissingCredential
	}
	return a, nil
}

// SetOwnerRef stores the projection fetched by an ownership gate so the
// route body does not read it again.
func SetOwnerRef(c echo.Context, ref *domain.OwnerRef) {
	c.Set(ownerRefKey, ref)
}

func OwnerRefFrom(c echo.Context) (*domain.OwnerRef, bool) {
	ref, ok := c.Get(ownerRefKey).(*domain.OwnerRef)
	return ref, ok && ref != nil
}
