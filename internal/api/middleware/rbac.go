package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/metrics"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/service"
)

// RequireRole enforces role-based access control. It must run after Authenticate.
func (g *Guard) RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := domain.Roles(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := MustAccount(c)
			if err == nil {
				err = service.CheckRole(account, allowed)
			}
			g.record(c, metrics.StageRole, err)
			if err != nil {
				return err
			}
			return next(c)
		}
	}
}
