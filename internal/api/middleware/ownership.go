package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/metrics"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// MaxBodyBytes bounds how much of a request body a parent gate will buffer.
// Larger bodies are rejected with 413.
const MaxBodyBytes = 1 << 20

// RequireOwnership gates a route on the resource named by the path param.
// The existence check always runs first, so a missing resource is a 404 for
// every caller. Accounts whose role is in override skip the owner comparison.
func (g *Guard) RequireOwnership(kind domain.ResourceKind, param string, override ...string) echo.MiddlewareFunc {
	roles := domain.Roles(override...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := MustAccount(c)
			if err != nil {
				return err
			}

			ref := domain.ResourceRef{Kind: kind, ID: c.Param(param)}
			owner, err := g.authorizer.Authorize(c.Request().Context(), account, ref, roles)
			g.record(c, metrics.StageOwnership, err)
			if err != nil {
				return err
			}

			SetOwnerRef(c, owner)
			return next(c)
		}
	}
}

// ParentSource extracts the id of the parent a request targets.
type ParentSource func(c echo.Context) (string, error)

// FromQuery reads the parent id from a query parameter.
func FromQuery(name string) ParentSource {
	return func(c echo.Context) (string, error) {
		return c.QueryParam(name), nil
	}
}

// FromBody reads the parent id from a top-level string field of a JSON body
// and leaves the body readable for the handler.
func FromBody(field string) ParentSource {
	return func(c echo.Context) (string, error) {
		req := c.Request()
		if req.Body == nil {
			return "", nil
		}
		raw, err := io.ReadAll(http.MaxBytesReader(c.Response(), req.Body, MaxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return "", echo.ErrStatusRequestEntityTooLarge
			}
			return "", err
		}
		_ = req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(raw))

		if len(bytes.TrimSpace(raw)) == 0 {
			return "", nil
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", domain.Invalid("request body must be a JSON object")
		}
		switch v := body[field].(type) {
		case nil:
			return "", nil
		case string:
			return v, nil
		default:
			return "", domain.Reject(domain.KindInvalidResourceReference, field+" must be a string id", nil)
		}
	}
}

// RequireParent gates creation and filtered listing on the parent named by
// from. An absent parent id is an InvalidResourceReference.
func (g *Guard) RequireParent(kind domain.ResourceKind, from ParentSource, override ...string) echo.MiddlewareFunc {
	return g.parentGate(kind, from, true, override)
}

// OptionalParent is RequireParent that passes requests naming no parent.
func (g *Guard) OptionalParent(kind domain.ResourceKind, from ParentSource, override ...string) echo.MiddlewareFunc {
	return g.parentGate(kind, from, false, override)
}

func (g *Guard) parentGate(kind domain.ResourceKind, from ParentSource, required bool, override []string) echo.MiddlewareFunc {
	roles := domain.Roles(override...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := MustAccount(c)
			if err != nil {
				return err
			}

			id, err := from(c)
			if err != nil {
				return err
			}
			if id == "" && !required {
				return next(c)
			}

			parent := domain.ResourceRef{Kind: kind, ID: id}
			owner, err := g.authorizer.AuthorizeParent(c.Request().Context(), account, parent, roles)
			g.record(c, metrics.StageOwnership, err)
			if err != nil {
				return err
			}

			SetOwnerRef(c, owner)
			return next(c)
		}
	}
}
