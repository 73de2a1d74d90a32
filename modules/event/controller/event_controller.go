package controller

import (
	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/middleware"
	"campus-pulse/core/params"
	"campus-pulse/modules/event/dto"
	"campus-pulse/modules/event/entity"
	"campus-pulse/modules/event/repository"
	"campus-pulse/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	service service.EventServiceInterface
	controller.BaseController
}

func NewEventController(service service.EventServiceInterface) *EventController {
	return &EventController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// CreateEvent submits a new event
// @Summary Create an event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.CreateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Create(ctx.Request().Context(), session.UserID, session.IsAdmin(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// GetEvent retrieves one event by id
// @Summary Get event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, err := c.service.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Event retrieved successfully")
}

// ListEvents lists approved events for everyone
// @Summary List events
// @Tags Event
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedEventResponse
// @Router /public/events [get]
func (c *EventController) ListEvents(ctx echo.Context) error {
	filter := repository.ListFilter{
		Status:   entity.EventStatusApproved,
		Category: ctx.QueryParam("category"),
	}

	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), filter, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Events retrieved successfully")
}

// ListAllEvents lists events in any status, admin only
// @Summary List events for review
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedEventResponse
// @Failure 403 {object} errors.AppError
// @Router /private/admin/events [get]
func (c *EventController) ListAllEvents(ctx echo.Context) error {
	filter := repository.ListFilter{
		Status:   entity.EventStatus(ctx.QueryParam("status")),
		Category: ctx.QueryParam("category"),
	}

	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), filter, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Events retrieved successfully")
}

// ListMyEvents lists the events the caller created
// @Summary List my events
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.PaginatedEventResponse
// @Failure 401 {object} errors.AppError
// @Router /private/events/mine [get]
func (c *EventController) ListMyEvents(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	filter := repository.ListFilter{CreatorID: session.UserID}
	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), filter, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Events retrieved successfully")
}

// UpdateEvent patches an event
// @Summary Update event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} errors.AppError
// @Router /private/events/{id} [put]
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	req := new(dto.UpdateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Update(ctx.Request().Context(), id, session.UserID, session.IsAdmin(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// ReviewEvent approves or rejects a pending event
// @Summary Review event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.ReviewEventRequest true "Review decision"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} errors.AppError
// @Router /private/admin/events/{id}/review [put]
func (c *EventController) ReviewEvent(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	req := new(dto.ReviewEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Review(ctx.Request().Context(), id, session.UserID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Event reviewed successfully")
}

// DeleteEvent removes an event
// @Summary Delete event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/admin/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}

// GetQRPayload returns the check-in code and URL for the event's QR poster
// @Summary Get event QR payload
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.QRPayloadResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/events/{id}/qr [get]
func (c *EventController) GetQRPayload(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, err := c.service.GetQRPayload(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "QR payload retrieved successfully")
}

// PresignPoster returns a presigned upload URL for the event poster
// @Summary Presign poster upload
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.PosterUploadRequest true "Poster content type"
// @Success 200 {object} dto.PosterUploadResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/events/{id}/poster [post]
func (c *EventController) PresignPoster(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	req := new(dto.PosterUploadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.ContentType == "" {
		return c.BadRequest(errors.ErrInvalidInput, "content_type is required")
	}

	result, err := c.service.PresignPoster(ctx.Request().Context(), id, req.ContentType)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Upload URL generated successfully")
}

// GetStats returns the admin dashboard aggregate
// @Summary Get event stats
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.EventStats
// @Failure 403 {object} errors.AppError
// @Router /private/admin/events/stats [get]
func (c *EventController) GetStats(ctx echo.Context) error {
	result, err := c.service.GetStats(ctx.Request().Context())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Stats retrieved successfully")
}
