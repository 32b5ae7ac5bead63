package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type ProduceHandler struct {
	service ports.ProduceService
}

func NewProduceHandler(service ports.ProduceService) *ProduceHandler {
	return &ProduceHandler{service: service}
}

// @Summary      List produce
// @Tags         produce
// @Produce      json
// @Security     BearerAuth
// @Param        type  query     string  false  "Produce type"
// @Success      200   {object}  map[string]any
// @Router       /produce [get]
func (h *ProduceHandler) List(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	produce, err := h.service.List(c.Request().Context(), account.ID, c.QueryParam("type"))
	if err != nil {
		return err
	}
	return listed(c, "produce", produce)
}

// @Summary      Record produce
// @Description  crop_id and animal_id, when given, must belong to the caller.
// @Tags         produce
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProduceRequest  true  "Produce"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /produce [post]
func (h *ProduceHandler) Create(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	var req createProduceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	produce, err := h.service.Create(c.Request().Context(), account, req.produce())
	if err != nil {
		return err
	}
	return created(c, domain.KindProduce, false, map[string]any{"message": "produce recorded", "produce": produce})
}

// @Summary      Get produce
// @Tags         produce
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Produce id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /produce/{id} [get]
func (h *ProduceHandler) Get(c echo.Context) error {
	produce, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"produce": produce})
}

// @Summary      Update produce
// @Tags         produce
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Produce id"
// @Param        body  body      updateProduceRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /produce/{id} [put]
func (h *ProduceHandler) Update(c echo.Context) error {
	var req updateProduceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	produce, err := h.service.Update(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "produce updated", "produce": produce})
}

// @Summary      Delete produce
// @Tags         produce
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Produce id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /produce/{id} [delete]
func (h *ProduceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "produce deleted"})
}

// @Summary      Produce summary
// @Description  Stock by type, harvests per month over six months and produce expiring within a week.
// @Tags         produce
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /produce/stats/summary [get]
func (h *ProduceHandler) Summary(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	summary, err := h.service.Summary(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"summary": summary})
}
