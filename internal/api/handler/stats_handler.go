package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// StatsHandler serves the read-only summaries of farms and herds.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// FarmStats handles GET /farms/:id/stats.
//
// @Summary      Farm statistics
// @Description  Active livestock, crops, planted area and the planted share of the farm.
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Farm id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /farms/{id}/stats [get]
func (h *StatsHandler) FarmStats(c echo.Context) error {
	stats, err := h.service.FarmStats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"stats": stats})
}

// SpeciesStats handles GET /animals/stats/species.
//
// @Summary      Animals per species
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /animals/stats/species [get]
func (h *StatsHandler) SpeciesStats(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	stats, err := h.service.SpeciesStats(c.Request().Context(), account)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"stats": stats.Species, "total": stats.Total})
}
