package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/api/metrics"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

type CredentialVerifier interface {
	Verify(raw string) (*domain.Claims, error)
}

type IdentityResolver interface {
	Resolve(ctx context.Context, claims *domain.Claims) (*domain.Account, error)
}

type OwnershipAuthorizer interface {
	Authorize(ctx context.Context, account *domain.Account, ref domain.ResourceRef, override domain.RoleSet) (*domain.OwnerRef, error)
	AuthorizeParent(ctx context.Context, account *domain.Account, parent domain.ResourceRef, override domain.RoleSet) (*domain.OwnerRef, error)
}

// Guard builds the per-route stages of the authorization pipeline. It is
// immutable after construction and shared by all requests.
type Guard struct {
	verifier   CredentialVerifier
	resolver   IdentityResolver
	authorizer OwnershipAuthorizer
	logger     zerolog.Logger
}

func NewGuard(verifier CredentialVerifier, resolver IdentityResolver, authorizer OwnershipAuthorizer, logger zerolog.Logger) *Guard {
	return &Guard{verifier: verifier, resolver: resolver, authorizer: authorizer, logger: logger}
}

// Authenticate verifies the bearer credential, resolves its account and
// attaches it to the request.
func (g *Guard) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := g.authenticate(c); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// OptionalAuth lets requests without an Authorization header through
// anonymously. A header that is present must still carry a valid credential.
func (g *Guard) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			if err := g.authenticate(c); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func (g *Guard) authenticate(c echo.Context) error {
	raw, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		g.record(c, metrics.StageCredential, err)
		return err
	}

	claims, err := g.verifier.Verify(raw)
	g.record(c, metrics.StageCredential, err)
	if err != nil {
		return err
	}

	account, err := g.resolver.Resolve(c.Request().Context(), claims)
	g.record(c, metrics.StageIdentity, err)
	if err != nil {
		return err
	}

	SetAccount(c, account)
	return nil
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domain.ErrMissingCredential
	}
	scheme, token, found := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "bearer") {
		return "", domain.ErrMalformedCredential
	}
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", domain.ErrMissingCredential
	}
	return token, nil
}

// record counts a stage outcome and debug-logs rejections.
func (g *Guard) record(c echo.Context, stage string, err error) {
	outcome := "pass"
	if err != nil {
		outcome = "error"
		if kind, ok := domain.KindOf(err); ok {
			outcome = kind.String()
		}
		g.logger.Debug().
			Err(err).
			Str("stage", stage).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request rejected")
	}
	metrics.AuthDecisionsTotal.WithLabelValues(stage, outcome).Inc()
}
