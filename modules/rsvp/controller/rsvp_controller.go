package controller

import (
	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/middleware"
	"campus-pulse/core/params"
	"campus-pulse/modules/rsvp/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RsvpController struct {
	service service.RsvpServiceInterface
	controller.BaseController
}

func NewRsvpController(service service.RsvpServiceInterface) *RsvpController {
	return &RsvpController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Rsvp reserves a spot on an event
// @Summary RSVP to an event
// @Tags Rsvp
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.RsvpResponse
// @Failure 422 {object} errors.AppError
// @Router /private/events/{id}/rsvp [post]
func (c *RsvpController) Rsvp(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, err := c.service.Rsvp(ctx.Request().Context(), session.UserID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "RSVP created successfully")
}

// Cancel removes the caller's reservation
// @Summary Cancel RSVP
// @Tags Rsvp
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Router /private/events/{id}/rsvp [delete]
func (c *RsvpController) Cancel(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	if err := c.service.Cancel(ctx.Request().Context(), session.UserID, eventID); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "RSVP cancelled successfully")
}

// GetStatus reports the caller's RSVP state for one event
// @Summary Get RSVP status
// @Tags Rsvp
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.RsvpStatusResponse
// @Router /private/events/{id}/rsvp [get]
func (c *RsvpController) GetStatus(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, err := c.service.GetStatus(ctx.Request().Context(), session.UserID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "RSVP status retrieved successfully")
}

// ListMine lists the caller's reservations
// @Summary List my RSVPs
// @Tags Rsvp
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedMyRsvpResponse
// @Router /private/rsvps [get]
func (c *RsvpController) ListMine(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.ListMine(ctx.Request().Context(), session.UserID, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "RSVPs retrieved successfully")
}

// ListForEvent lists an event's attendees for administrators
// @Summary List RSVPs for an event
// @Tags Rsvp
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedEventRsvpResponse
// @Router /private/admin/events/{id}/rsvps [get]
func (c *RsvpController) ListForEvent(ctx echo.Context) error {
	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.ListForEvent(ctx.Request().Context(), eventID, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "RSVPs retrieved successfully")
}

// SendConfirmation re-requests the confirmation email
// @Summary Resend RSVP confirmation email
// @Tags Rsvp
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.RsvpStatusResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id}/rsvp/confirmation [post]
func (c *RsvpController) SendConfirmation(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, err := c.service.SendConfirmation(ctx.Request().Context(), session.UserID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Confirmation email requested successfully")
}
