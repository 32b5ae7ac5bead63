package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/service"
)

const (
	secret   = "secret"
	farmerID = "11111111-1111-4111-8111-111111111111"
	otherID  = "22222222-2222-4222-8222-222222222222"
	vetID    = "33333333-3333-4333-8333-333333333333"
	adminID  = "44444444-4444-4444-8444-444444444444"
	farmID   = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	animalID = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
	ghostID  = "cccccccc-cccc-4ccc-8ccc-cccccccccccc"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type stubAccounts map[string]*domain.Account

func (s stubAccounts) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := s[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (s stubAccounts) FindByEmail(context.Context, string) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}
func (s stubAccounts) Create(context.Context, *domain.Account) error { return nil }
func (s stubAccounts) Update(context.Context, *domain.Account) error { return nil }
func (s stubAccounts) ListByRoles(context.Context, []string) ([]*domain.Account, error) {
	return nil, nil
}

type stubOwners map[string]domain.OwnerRef

func (s stubOwners) LookupOwner(_ context.Context, kind domain.ResourceKind, id string) (domain.OwnerRef, error) {
	ref, ok := s[string(kind)+"/"+id]
	if !ok {
		return domain.OwnerRef{}, domain.ErrNotFound
	}
	return ref, nil
}

func newTestGuard() *Guard {
	accounts := stubAccounts{
		farmerID: {ID: farmerID, Role: domain.RoleFarmer},
		otherID:  {ID: otherID, Role: domain.RoleFarmer},
		vetID:    {ID: vetID, Role: domain.RoleVet},
		adminID:  {ID: adminID, Role: domain.RoleAdmin},
	}
	owners := stubOwners{
		"farm/" + farmID:     {Kind: domain.KindFarm, ID: farmID, OwnerID: farmerID},
		"animal/" + animalID: {Kind: domain.KindAnimal, ID: animalID, FarmID: farmID},
	}
	clock := func() time.Time { return now }
	return NewGuard(
		service.NewCredentialVerifier(secret, clock),
		service.NewIdentityResolver(accounts, time.Second),
		service.NewAuthorizer(owners, time.Second),
		zerolog.Nop(),
	)
}

func tokenFor(t *testing.T, id string, ttl time.Duration) string {
	t.Helper()
	issuer := service.NewTokenIssuer(secret, ttl, func() time.Time { return now.Add(-time.Hour) })
	token, _, err := issuer.Issue(&domain.Account{ID: id})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func newContext(method, target, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	g := newTestGuard()
	c, rec := newContext(http.MethodGet, "/", "Bearer "+tokenFor(t, farmerID, 2*time.Hour))

	var seen *domain.Account
	handler := g.Authenticate()(func(c echo.Context) error {
		seen, _ = AccountFrom(c)
		if a, ok := domain.AccountFromContext(c.Request().Context()); !ok || a.ID != farmerID {
			t.Errorf("account not propagated to request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if seen == nil || seen.ID != farmerID {
		t.Fatalf("account not attached: %+v", seen)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		header func(t *testing.T) string
		want   error
	}{
		{"missing header", func(*testing.T) string { return "" }, domain.ErrMissingCredential},
		{"empty bearer", func(*testing.T) string { return "Bearer " }, domain.ErrMissingCredential},
		{"wrong scheme", func(*testing.T) string { return "Token abc" }, domain.ErrMalformedCredential},
		{"garbage token", func(*testing.T) string { return "Bearer not-a-token" }, domain.ErrMalformedCredential},
		{"expired by one second", func(t *testing.T) string {
			return "Bearer " + tokenFor(t, farmerID, time.Hour-time.Second)
		}, domain.ErrExpiredCredential},
		{"deleted account", func(t *testing.T) string {
			return "Bearer " + tokenFor(t, ghostID, 2*time.Hour)
		}, domain.ErrAccountNotResolved},
	}

	g := newTestGuard()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newContext(http.MethodGet, "/", tc.header(t))
			called := false
			err := g.Authenticate()(okHandler(&called))(c)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if called {
				t.Fatal("next must not run")
			}
			if _, ok := AccountFrom(c); ok {
				t.Fatal("account must not be attached on rejection")
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	g := newTestGuard()

	c, _ := newContext(http.MethodGet, "/", "")
	called := false
	if err := g.OptionalAuth()(okHandler(&called))(c); err != nil || !called {
		t.Fatalf("anonymous request should pass, err=%v called=%v", err, called)
	}
	if _, ok := AccountFrom(c); ok {
		t.Fatal("anonymous request must carry no account")
	}

	c, _ = newContext(http.MethodGet, "/", "Bearer "+tokenFor(t, vetID, 2*time.Hour))
	if err := g.OptionalAuth()(okHandler(&called))(c); err != nil {
		t.Fatalf("valid token should pass: %v", err)
	}
	if a, ok := AccountFrom(c); !ok || a.ID != vetID {
		t.Fatal("account should be attached")
	}

	c, _ = newContext(http.MethodGet, "/", "Bearer junk")
	called = false
	if err := g.OptionalAuth()(okHandler(&called))(c); !errors.Is(err, domain.ErrMalformedCredential) || called {
		t.Fatalf("invalid token must be rejected, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	token, err := bearerToken("  bearer abc.def.ghi ")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("expected case-insensitive scheme, got %q (%v)", token, err)
	}
	if _, err := bearerToken("Basic dXNlcjpwYXNz"); !errors.Is(err, domain.ErrMalformedCredential) {
		t.Fatalf("expected MalformedCredential, got %v", err)
	}
	if _, err := bearerToken(strings.Repeat(" ", 3)); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected MissingCredential, got %v", err)
	}
}
