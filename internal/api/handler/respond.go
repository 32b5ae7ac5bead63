package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/metrics"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

const headerIdempotencyKey = "Idempotency-Key"

func idempotencyKey(c echo.Context) string {
	return c.Request().Header.Get(headerIdempotencyKey)
}

// created renders a create result: 201 for a new resource, 200 when the
// Idempotency-Key replayed an earlier one.
func created(c echo.Context, kind domain.ResourceKind, replayed bool, body map[string]any) error {
	if replayed {
		metrics.IdempotentReplaysTotal.WithLabelValues(string(kind)).Inc()
		c.Response().Header().Set("Idempotent-Replayed", "true")
		return c.JSON(http.StatusOK, body)
	}
	metrics.ResourcesCreatedTotal.WithLabelValues(string(kind)).Inc()
	return c.JSON(http.StatusCreated, body)
}

func listed[T any](c echo.Context, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, map[string]any{name: items, "count": len(items)})
}
