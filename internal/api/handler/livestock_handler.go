package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// LivestockHandler serves /animals and /health-records.
type LivestockHandler struct {
	service ports.LivestockService
}

func NewLivestockHandler(service ports.LivestockService) *LivestockHandler {
	return &LivestockHandler{service: service}
}

// ListAnimals handles GET /animals.
//
// @Summary      List animals
// @Description  With farm_id, lists that farm's animals (ownership checked); otherwise the caller's farms.
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        farm_id  query     string  false  "Farm id"
// @Param        species  query     string  false  "Species filter"
// @Success      200      {object}  map[string]any
// @Failure      403      {object}  errorEnvelope
// @Failure      404      {object}  errorEnvelope
// @Router       /animals [get]
func (h *LivestockHandler) ListAnimals(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	animals, err := h.service.ListAnimals(c.Request().Context(), account, c.QueryParam("farm_id"), c.QueryParam("species"))
	if err != nil {
		return err
	}
	return listed(c, "animals", animals)
}

// CreateAnimal handles POST /animals.
//
// @Summary      Register an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string               false  "Replays the first create for this key"
// @Param        body             body      createAnimalRequest  true   "Animal"
// @Success      201              {object}  map[string]any
// @Failure      400              {object}  errorEnvelope
// @Failure      403              {object}  errorEnvelope
// @Failure      404              {object}  errorEnvelope
// @Failure      409              {object}  errorEnvelope
// @Router       /animals [post]
func (h *LivestockHandler) CreateAnimal(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}

	var req createAnimalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	animal, replayed, err := h.service.CreateAnimal(c.Request().Context(), account, req.animal(), idempotencyKey(c))
	if err != nil {
		return err
	}
	return created(c, domain.KindAnimal, replayed, map[string]any{"message": "animal created", "animal": animal})
}

// GetAnimal handles GET /animals/:id.
//
// @Summary      Get an animal
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /animals/{id} [get]
func (h *LivestockHandler) GetAnimal(c echo.Context) error {
	animal, err := h.service.GetAnimal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"animal": animal})
}

// UpdateAnimal handles PUT /animals/:id.
//
// @Summary      Update an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Animal id"
// @Param        body  body      updateAnimalRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /animals/{id} [put]
func (h *LivestockHandler) UpdateAnimal(c echo.Context) error {
	var req updateAnimalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	animal, err := h.service.UpdateAnimal(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "animal updated", "animal": animal})
}

// DeleteAnimal handles DELETE /animals/:id.
//
// @Summary      Remove an animal
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /animals/{id} [delete]
func (h *LivestockHandler) DeleteAnimal(c echo.Context) error {
	if err := h.service.RemoveAnimal(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "animal removed"})
}

// ListHealthRecords handles GET /animals/:id/health-records.
//
// @Summary      Health history of an animal
// @Tags         health
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /animals/{id}/health-records [get]
func (h *LivestockHandler) ListHealthRecords(c echo.Context) error {
	records, err := h.service.ListHealthRecords(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return listed(c, "health_records", records)
}

// CreateHealthRecord handles POST /health-records.
//
// @Summary      Record a health visit
// @Tags         health
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHealthRecordRequest  true  "Visit"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /health-records [post]
func (h *LivestockHandler) CreateHealthRecord(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}

	var req createHealthRecordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	record, err := h.service.RecordHealth(c.Request().Context(), account, req.record())
	if err != nil {
		return err
	}
	return created(c, domain.KindHealthRecord, false, map[string]any{"message": "health record created", "health_record": record})
}

// GetHealthRecord handles GET /health-records/:id.
//
// @Summary      Get a health record
// @Tags         health
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /health-records/{id} [get]
func (h *LivestockHandler) GetHealthRecord(c echo.Context) error {
	record, err := h.service.GetHealthRecord(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"health_record": record})
}

// DeleteHealthRecord handles DELETE /health-records/:id.
//
// @Summary      Delete a health record
// @Tags         health
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /health-records/{id} [delete]
func (h *LivestockHandler) DeleteHealthRecord(c echo.Context) error {
	if err := h.service.DeleteHealthRecord(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "health record deleted"})
}
