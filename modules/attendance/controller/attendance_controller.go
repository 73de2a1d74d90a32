package controller

import (
	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/middleware"
	"campus-pulse/core/params"
	"campus-pulse/modules/attendance/dto"
	"campus-pulse/modules/attendance/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AttendanceController struct {
	service service.AttendanceServiceInterface
	controller.BaseController
}

func NewAttendanceController(service service.AttendanceServiceInterface) *AttendanceController {
	return &AttendanceController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// CheckIn records attendance from a scanned QR code
// @Summary Check in to an event
// @Tags Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.CheckInRequest true "Check-in code"
// @Success 200 {object} dto.CheckInResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events/{id}/checkin [post]
func (c *AttendanceController) CheckIn(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	// The code arrives in the body on a POST, or as ?code= when the QR link
	// is opened directly.
	req := new(dto.CheckInRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Code == "" {
		req.Code = ctx.QueryParam("code")
	}

	result, err := c.service.CheckIn(ctx.Request().Context(), session.UserID, eventID, req.Code)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Checked in successfully")
}

// SubmitSurvey stores the post-event survey and awards points
// @Summary Submit event survey
// @Tags Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.SurveyRequest true "Survey answers"
// @Success 200 {object} dto.SurveyResponse
// @Failure 422 {object} errors.AppError
// @Router /private/events/{id}/survey [post]
func (c *AttendanceController) SubmitSurvey(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	req := new(dto.SurveyRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.SubmitSurvey(ctx.Request().Context(), session.UserID, eventID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Survey submitted successfully")
}

// GetRoster lists RSVPs with their check-in state, admin only
// @Summary Get event roster
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedRosterResponse
// @Failure 403 {object} errors.AppError
// @Router /private/admin/events/{id}/roster [get]
func (c *AttendanceController) GetRoster(ctx echo.Context) error {
	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.GetRoster(ctx.Request().Context(), eventID, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Roster retrieved successfully")
}
