package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadtrack/acadtrack/internal/api/metrics"
	"github.com/acadtrack/acadtrack/internal/core/ports"
)

// ActivityHandler handles HTTP requests for activity operations.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Create handles POST /activities (admin only).
//
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActivityRequest  true  "Activity details; userId assigns an owner, defaulting to the acting admin"
// @Success      201   {object}  activityResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	input, err := toCreateInput(req, actor.ID)
	if err != nil {
		return err
	}

	activity, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.ActivityMutationsTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, activityResponse{
		Success:  true,
		Message:  "Activity created",
		Activity: activity,
	})
}

// List handles GET /activities. Every authenticated user sees the full set.
//
// @Summary      List all activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  map[string]any
// @Router       /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Get handles GET /activities/:id.
//
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity id"
// @Success      200  {object}  domain.Activity
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /activities/{id} [get]
func (h *ActivityHandler) Get(c echo.Context) error {
	activity, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Update handles PUT /activities/:id (admin only). Only supplied fields
// are overwritten.
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Activity id"
// @Param        body  body      updateActivityRequest  true  "Fields to change"
// @Success      200   {object}  activityResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	upd, err := toUpdate(req)
	if err != nil {
		return err
	}

	activity, err := h.service.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		return err
	}

	metrics.ActivityMutationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, activityResponse{
		Success:  true,
		Message:  "Activity updated",
		Activity: activity,
	})
}

// Delete handles DELETE /activities/:id (admin only). Deleting an unknown
// id reports 404 rather than silently succeeding.
//
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ActivityMutationsTotal.WithLabelValues("delete").Inc()

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Activity deleted"})
}
