package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	contacts, err := h.service.List(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}
	return listed(c, "contacts", contacts)
}

// @Summary      Add a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Contact"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Router       /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.service.Create(c.Request().Context(), account, &domain.Contact{
		Name:     deref(req.Name),
		Category: deref(req.Category),
		Phone:    deref(req.Phone),
		Email:    deref(req.Email),
		Notes:    deref(req.Notes),
	})
	if err != nil {
		return err
	}
	return created(c, domain.KindContact, false, map[string]any{"message": "contact created", "contact": contact})
}

// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"contact": contact})
}

// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Contact id"
// @Param        body  body      contactRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	contact, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ContactPatch{
		Name:     req.Name,
		Category: req.Category,
		Phone:    req.Phone,
		Email:    req.Email,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "contact updated", "contact": contact})
}

// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "contact deleted"})
}
