package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type CropHandler struct {
	service ports.CropService
}

func NewCropHandler(service ports.CropService) *CropHandler {
	return &CropHandler{service: service}
}

// List handles GET /crops.
//
// @Summary      List crops
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        farm_id  query     string  false  "Farm id"
// @Param        status   query     string  false  "Stored status filter"
// @Success      200      {object}  map[string]any
// @Failure      403      {object}  errorEnvelope
// @Failure      404      {object}  errorEnvelope
// @Router       /crops [get]
func (h *CropHandler) List(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	crops, err := h.service.List(c.Request().Context(), account, c.QueryParam("farm_id"), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return listed(c, "crops", crops)
}

// Create handles POST /crops.
//
// @Summary      Plant a crop
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCropRequest  true  "Crop"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /crops [post]
func (h *CropHandler) Create(c echo.Context) error {
	var req createCropRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	crop, err := h.service.Create(c.Request().Context(), req.crop())
	if err != nil {
		return err
	}
	return created(c, domain.KindCrop, false, map[string]any{"message": "crop created", "crop": crop})
}

// Get handles GET /crops/:id.
//
// @Summary      Get a crop
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Crop id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /crops/{id} [get]
func (h *CropHandler) Get(c echo.Context) error {
	crop, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"crop": crop})
}

// Update handles PUT /crops/:id.
//
// @Summary      Update a crop
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Crop id"
// @Param        body  body      updateCropRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /crops/{id} [put]
func (h *CropHandler) Update(c echo.Context) error {
	var req updateCropRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	crop, err := h.service.Update(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "crop updated", "crop": crop})
}

// SetStatus handles PATCH /crops/:id/status.
//
// @Summary      Change crop status
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Crop id"
// @Param        body  body      cropStatusRequest  true  "New status"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /crops/{id}/status [patch]
func (h *CropHandler) SetStatus(c echo.Context) error {
	var req cropStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	crop, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), domain.CropStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "crop status updated", "crop": crop})
}

// Delete handles DELETE /crops/:id.
//
// @Summary      Delete a crop
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Crop id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /crops/{id} [delete]
func (h *CropHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "crop deleted"})
}
