package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn  func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn     func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	profileFn   func(ctx context.Context, id string, in ports.ProfileInput) (*domain.Account, error)
	providersFn func(ctx context.Context) ([]*domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, id string, in ports.ProfileInput) (*domain.Account, error) {
	return s.profileFn(ctx, id, in)
}

func (s *stubAuthService) ListProviders(ctx context.Context) ([]*domain.Account, error) {
	return s.providersFn(ctx)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func requireValidation(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return ve
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	expires := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Email != "amina@example.com" || in.Role != domain.RoleFarmer || in.FullName != "Amina Njeri" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token:     "token123",
				ExpiresAt: expires,
				Account:   &domain.Account{ID: "acc-1", Email: in.Email, FullName: in.FullName, Role: in.Role, PasswordHash: "hash"},
			}, nil
		},
	}

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/register",
		`{"email":"amina@example.com","password":"secret1","full_name":"Amina Njeri","role":"farmer"}`)
	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "amina@example.com" || user["role"] != "farmer" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be rendered")
	}
}

func TestAuthHandler_Register_AccountExists(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrAccountExists
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/register",
		`{"email":"amina@example.com","password":"secret1","full_name":"Amina Njeri","role":"farmer"}`)
	err := NewAuthHandler(stub).Register(c)
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/register", "not-json")
	requireValidation(t, handler.Register(c))

	c, _ = jsonRequest(e, http.MethodPost, "/api/auth/register",
		`{"email":"nope","password":"123","full_name":"A","role":"admin"}`)
	ve := requireValidation(t, handler.Register(c))
	if len(ve.Details) != 4 {
		t.Fatalf("expected 4 field errors, got %v", ve.Details)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "amina@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{Token: "token123", Account: &domain.Account{ID: "acc-1", Role: domain.RoleFarmer}}, nil
		},
	}

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/login", `{"email":"amina@example.com","password":"secret1"}`)
	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/login", `{"email":"amina@example.com","password":"bad"}`)
	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/login", "{")
	requireValidation(t, NewAuthHandler(stub).Login(c))
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := jsonRequest(e, http.MethodGet, "/api/auth/me", "")
	if err := handler.Me(c); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected missing credential without an account, got %v", err)
	}

	c, rec := jsonRequest(e, http.MethodGet, "/api/auth/me", "")
	middleware.SetAccount(c, &domain.Account{ID: "acc-1", Email: "amina@example.com", Role: domain.RoleFarmer})
	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	user := decode(t, rec)["user"].(map[string]any)
	if user["id"] != "acc-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_UpdateMe_PassesOnlyProvidedFields(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, id string, in ports.ProfileInput) (*domain.Account, error) {
			if id != "acc-1" {
				t.Fatalf("unexpected id %s", id)
			}
			if in.Phone == nil || *in.Phone != "+254700000000" {
				t.Fatalf("expected phone to be set: %+v", in)
			}
			if in.FullName != nil || in.Location != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			return &domain.Account{ID: id, Phone: *in.Phone}, nil
		},
	}

	c, rec := jsonRequest(e, http.MethodPut, "/api/auth/me", `{"phone":"+254700000000"}`)
	middleware.SetAccount(c, &domain.Account{ID: "acc-1", Role: domain.RoleFarmer})
	if err := NewAuthHandler(stub).UpdateMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Providers_HidesContactsFromAnonymous(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		providersFn: func(ctx context.Context) ([]*domain.Account, error) {
			return []*domain.Account{{
				ID: "vet-1", FullName: "Dr. Otieno", Role: domain.RoleVet,
				Phone: "+254711111111", Email: "vet@example.com", ClinicName: "Rift Clinic",
			}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/api/vets", "")
	if err := handler.Providers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	vets := decode(t, rec)["vets"].([]any)
	entry := vets[0].(map[string]any)
	if _, ok := entry["phone"]; ok {
		t.Fatalf("anonymous caller must not see phone: %+v", entry)
	}

	c, rec = jsonRequest(e, http.MethodGet, "/api/vets", "")
	middleware.SetAccount(c, &domain.Account{ID: "acc-1", Role: domain.RoleFarmer})
	if err := handler.Providers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	entry = decode(t, rec)["vets"].([]any)[0].(map[string]any)
	if entry["phone"] != "+254711111111" || entry["clinic_name"] != "Rift Clinic" {
		t.Fatalf("authenticated caller should see contact details: %+v", entry)
	}
}
