package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func ownedContext(role, accountID, id string) echo.Context {
	c, _ := newContext(http.MethodDelete, "/farms/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	SetAccount(c, &domain.Account{ID: accountID, Role: role})
	return c
}

func TestRequireOwnership_Owner(t *testing.T) {
	g := newTestGuard()
	c := ownedContext(domain.RoleFarmer, farmerID, farmID)

	called := false
	if err := g.RequireOwnership(domain.KindFarm, "id", domain.RoleAdmin)(okHandler(&called))(c); err != nil {
		t.Fatalf("owner should pass: %v", err)
	}
	ref, ok := OwnerRefFrom(c)
	if !called || !ok || ref.OwnerID != farmerID {
		t.Fatalf("owner ref not attached: %+v", ref)
	}
}

func TestRequireOwnership_NonOwner(t *testing.T) {
	g := newTestGuard()
	c := ownedContext(domain.RoleFarmer, otherID, farmID)

	called := false
	if err := g.RequireOwnership(domain.KindFarm, "id", domain.RoleAdmin)(okHandler(&called))(c); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected NotOwner, got %v", err)
	}
	if called {
		t.Fatal("next must not run")
	}
}

func TestRequireOwnership_MissingResourceIs404ForEveryone(t *testing.T) {
	g := newTestGuard()
	for _, acct := range []struct{ role, id string }{
		{domain.RoleFarmer, farmerID},
		{domain.RoleFarmer, otherID},
		{domain.RoleAdmin, adminID},
	} {
		c := ownedContext(acct.role, acct.id, ghostID)
		called := false
		err := g.RequireOwnership(domain.KindFarm, "id", domain.RoleAdmin)(okHandler(&called))(c)
		if !errors.Is(err, domain.ErrResourceNotFound) {
			t.Errorf("%s: expected ResourceNotFound, got %v", acct.id, err)
		}
	}
}

func TestRequireOwnership_AdminOverride(t *testing.T) {
	g := newTestGuard()
	c := ownedContext(domain.RoleAdmin, adminID, farmID)

	called := false
	if err := g.RequireOwnership(domain.KindFarm, "id", domain.RoleAdmin)(okHandler(&called))(c); err != nil || !called {
		t.Fatalf("admin override should pass: %v", err)
	}
}

func TestRequireOwnership_InvalidID(t *testing.T) {
	g := newTestGuard()
	c := ownedContext(domain.RoleFarmer, farmerID, "123")

	called := false
	if err := g.RequireOwnership(domain.KindFarm, "id")(okHandler(&called))(c); !errors.Is(err, domain.ErrInvalidResourceReference) {
		t.Fatalf("expected InvalidResourceReference, got %v", err)
	}
}

func bodyContext(role, accountID, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/health-records", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	SetAccount(c, &domain.Account{ID: accountID, Role: role})
	return c
}

func TestRequireParent_FromBodyKeepsBody(t *testing.T) {
	g := newTestGuard()
	body := `{"animal_id":"` + animalID + `","diagnosis":"foot rot"}`
	c := bodyContext(domain.RoleFarmer, farmerID, body)

	var got string
	handler := g.RequireParent(domain.KindAnimal, FromBody("animal_id"), domain.RoleVet)(func(c echo.Context) error {
		raw, _ := io.ReadAll(c.Request().Body)
		got = string(raw)
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("farm owner should pass: %v", err)
	}
	if got != body {
		t.Fatalf("body not restored, got %q", got)
	}
}

func TestRequireParent_Rejections(t *testing.T) {
	g := newTestGuard()

	cases := []struct {
		name string
		role string
		id   string
		body string
		want error
	}{
		{"stranger", domain.RoleFarmer, otherID, `{"animal_id":"` + animalID + `"}`, domain.ErrNotOwner},
		{"missing parent", domain.RoleFarmer, farmerID, `{"animal_id":"` + ghostID + `"}`, domain.ErrResourceNotFound},
		{"no parent id", domain.RoleFarmer, farmerID, `{}`, domain.ErrInvalidResourceReference},
		{"numeric parent id", domain.RoleFarmer, farmerID, `{"animal_id":7}`, domain.ErrInvalidResourceReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := bodyContext(tc.role, tc.id, tc.body)
			called := false
			err := g.RequireParent(domain.KindAnimal, FromBody("animal_id"), domain.RoleVet)(okHandler(&called))(c)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if called {
				t.Fatal("next must not run")
			}
		})
	}
}

func TestRequireParent_VetOverride(t *testing.T) {
	g := newTestGuard()
	c := bodyContext(domain.RoleVet, vetID, `{"animal_id":"`+animalID+`"}`)

	called := false
	if err := g.RequireParent(domain.KindAnimal, FromBody("animal_id"), domain.RoleVet)(okHandler(&called))(c); err != nil || !called {
		t.Fatalf("vet override should pass: %v", err)
	}
}

func TestOptionalParent_FromQuery(t *testing.T) {
	g := newTestGuard()

	c, _ := newContext(http.MethodGet, "/animals", "")
	SetAccount(c, &domain.Account{ID: otherID, Role: domain.RoleFarmer})
	called := false
	if err := g.OptionalParent(domain.KindFarm, FromQuery("farm_id"))(okHandler(&called))(c); err != nil || !called {
		t.Fatalf("no farm_id should pass, got %v", err)
	}

	c, _ = newContext(http.MethodGet, "/animals?farm_id="+farmID, "")
	SetAccount(c, &domain.Account{ID: otherID, Role: domain.RoleFarmer})
	called = false
	if err := g.OptionalParent(domain.KindFarm, FromQuery("farm_id"))(okHandler(&called))(c); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected NotOwner for another farmer's farm, got %v", err)
	}
}

func TestRequireParent_OversizedBodyRejected(t *testing.T) {
	g := newTestGuard()
	body := `{"animal_id":"` + animalID + `","notes":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
	c := bodyContext(domain.RoleFarmer, farmerID, body)

	called := false
	err := g.RequireParent(domain.KindAnimal, FromBody("animal_id"), domain.RoleVet)(okHandler(&called))(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
	if called {
		t.Fatal("next must not run")
	}
}
