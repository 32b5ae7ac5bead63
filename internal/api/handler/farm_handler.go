package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// FarmHandler serves /farms. Ownership of :id is enforced by middleware.
type FarmHandler struct {
	service ports.FarmService
}

func NewFarmHandler(service ports.FarmService) *FarmHandler {
	return &FarmHandler{service: service}
}

// List handles GET /farms.
//
// @Summary      List farms
// @Description  Farmers see their active farms; admins see every active farm.
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorEnvelope
// @Router       /farms [get]
func (h *FarmHandler) List(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	farms, err := h.service.List(c.Request().Context(), account)
	if err != nil {
		return err
	}
	return listed(c, "farms", farms)
}

// Create handles POST /farms.
//
// @Summary      Create a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Replays the first create for this key"
// @Param        body             body      createFarmRequest  true   "Farm"
// @Success      201              {object}  map[string]any
// @Success      200              {object}  map[string]any     "Idempotent replay"
// @Failure      400              {object}  errorEnvelope
// @Failure      403              {object}  errorEnvelope
// @Router       /farms [post]
func (h *FarmHandler) Create(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}

	var req createFarmRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	farm, replayed, err := h.service.Create(c.Request().Context(), account, req.farm(), idempotencyKey(c))
	if err != nil {
		return err
	}
	return created(c, domain.KindFarm, replayed, map[string]any{"message": "farm created", "farm": farm})
}

// Get handles GET /farms/:id.
//
// @Summary      Get a farm
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Farm id"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /farms/{id} [get]
func (h *FarmHandler) Get(c echo.Context) error {
	farm, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"farm": farm})
}

// Update handles PUT /farms/:id.
//
// @Summary      Update a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Farm id"
// @Param        body  body      updateFarmRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /farms/{id} [put]
func (h *FarmHandler) Update(c echo.Context) error {
	var req updateFarmRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	farm, err := h.service.Update(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "farm updated", "farm": farm})
}

// Delete handles DELETE /farms/:id. The farm is deactivated, not removed.
//
// @Summary      Delete a farm
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Farm id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /farms/{id} [delete]
func (h *FarmHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "farm deleted"})
}
