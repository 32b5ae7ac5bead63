package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// List handles GET /sales. Farmers list their own sales, admins list all.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        payment_status  query     string  false  "pending, partial or paid"
// @Success      200             {object}  map[string]any
// @Failure      403             {object}  errorEnvelope
// @Router       /sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	farmerID := account.ID
	if account.Role == domain.RoleAdmin {
		farmerID = ""
	}
	sales, err := h.service.List(c.Request().Context(), farmerID, c.QueryParam("payment_status"))
	if err != nil {
		return err
	}
	return listed(c, "sales", sales)
}

// Create handles POST /sales.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Replays the first create for this key"
// @Param        body             body      createSaleRequest  true   "Sale"
// @Success      201              {object}  map[string]any
// @Failure      400              {object}  errorEnvelope
// @Failure      403              {object}  errorEnvelope
// @Router       /sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}

	var req createSaleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sale, replayed, err := h.service.Create(c.Request().Context(), account, req.sale(), idempotencyKey(c))
	if err != nil {
		return err
	}
	return created(c, domain.KindSale, replayed, map[string]any{"message": "sale recorded", "sale": sale})
}

// Get handles GET /sales/:id.
//
// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /sales/{id} [get]
func (h *SaleHandler) Get(c echo.Context) error {
	sale, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"sale": sale})
}

// RecordPayment handles PATCH /sales/:id/payment.
//
// @Summary      Record a payment
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sale id"
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /sales/{id}/payment [patch]
func (h *SaleHandler) RecordPayment(c echo.Context) error {
	var req paymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sale, err := h.service.RecordPayment(c.Request().Context(), c.Param("id"), req.AmountPaid, req.PaymentStatus)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "payment recorded", "sale": sale})
}

// Delete handles DELETE /sales/:id.
//
// @Summary      Delete a sale
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /sales/{id} [delete]
func (h *SaleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "sale deleted"})
}
