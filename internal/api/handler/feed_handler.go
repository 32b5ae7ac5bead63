package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type FeedHandler struct {
	service ports.FeedService
}

func NewFeedHandler(service ports.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// List handles GET /feeds.
//
// @Summary      List feedings
// @Tags         feeds
// @Produce      json
// @Security     BearerAuth
// @Param        animal_id  query     string  false  "Animal id"
// @Param        date_from  query     string  false  "RFC 3339 time or YYYY-MM-DD"
// @Param        date_to    query     string  false  "RFC 3339 time or YYYY-MM-DD"
// @Success      200        {object}  map[string]any
// @Failure      400        {object}  errorEnvelope
// @Failure      403        {object}  errorEnvelope
// @Router       /feeds [get]
func (h *FeedHandler) List(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	from, err := queryTime(c, "date_from", false)
	if err != nil {
		return err
	}
	to, err := queryTime(c, "date_to", true)
	if err != nil {
		return err
	}
	feeds, err := h.service.List(c.Request().Context(), account, domain.FeedFilter{
		AnimalID: c.QueryParam("animal_id"),
		From:     from,
		To:       to,
	})
	if err != nil {
		return err
	}
	return listed(c, "feeds", feeds)
}

// Create handles POST /feeds.
//
// @Summary      Record a feeding
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFeedRequest  true  "Feeding"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /feeds [post]
func (h *FeedHandler) Create(c echo.Context) error {
	var req createFeedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	feed, err := h.service.Create(c.Request().Context(), req.feed())
	if err != nil {
		return err
	}
	return created(c, domain.KindFeed, false, map[string]any{"message": "feed recorded", "feed": feed})
}

// Get handles GET /feeds/:id.
//
// @Summary      Get a feeding
// @Tags         feeds
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feed id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /feeds/{id} [get]
func (h *FeedHandler) Get(c echo.Context) error {
	feed, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"feed": feed})
}

// Update handles PUT /feeds/:id.
//
// @Summary      Update a feeding
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Feed id"
// @Param        body  body      updateFeedRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /feeds/{id} [put]
func (h *FeedHandler) Update(c echo.Context) error {
	var req updateFeedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	feed, err := h.service.Update(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "feed updated", "feed": feed})
}

// Delete handles DELETE /feeds/:id.
//
// @Summary      Delete a feeding
// @Tags         feeds
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feed id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /feeds/{id} [delete]
func (h *FeedHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "feed deleted"})
}

// Summary handles GET /feeds/stats/summary.
//
// @Summary      Feeding summary
// @Tags         feeds
// @Produce      json
// @Security     BearerAuth
// @Param        days  query     int  false  "Window in days, 1 to 365 (default 30)"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorEnvelope
// @Router       /feeds/stats/summary [get]
func (h *FeedHandler) Summary(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		if days, err = strconv.Atoi(raw); err != nil {
			return domain.Invalid("days must be an integer")
		}
	}
	summary, err := h.service.Summary(c.Request().Context(), account, days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"summary": summary})
}

// queryTime parses an RFC 3339 time or a bare date. A bare date used as an
// upper bound covers the whole day.
func queryTime(c echo.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, domain.Invalid(name + " must be a date (YYYY-MM-DD) or RFC 3339 time")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
