package controller

import (
	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/middleware"
	"campus-pulse/core/params"
	"campus-pulse/modules/notification/dto"
	"campus-pulse/modules/notification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service *service.NotificationService
	controller.BaseController
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetMyNotifications retrieves user's notifications
// @Summary List my notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedNotificationResponse
// @Failure 401 {object} errors.AppError
// @Router /private/notifications [get]
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.GetMyNotifications(ctx.Request().Context(), session.UserID, *queryParams)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get notifications", err)
	}

	return c.SuccessResponse(ctx, result, "Notifications retrieved successfully")
}

// MarkAsRead marks specific notifications as read
// @Summary Mark notifications as read
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MarkAsReadRequest true "Notification IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/notifications/mark-read [put]
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.MarkAsReadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), session.UserID, req.IDs); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark as read", err)
	}

	return c.SuccessResponse(ctx, nil, "Marked as read successfully")
}

// MarkAllAsRead marks all notifications as read
// @Summary Mark all notifications as read
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /private/notifications/mark-all-read [put]
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	if err := c.service.MarkAllAsRead(ctx.Request().Context(), session.UserID); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark all as read", err)
	}

	return c.SuccessResponse(ctx, nil, "Marked all as read successfully")
}

// SetImportant toggles the important flag on a notification
// @Summary Flag or unflag a notification as important
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param request body dto.SetImportantRequest true "Important flag"
// @Success 200 {object} map[string]string
// @Router /private/notifications/{id}/important [put]
func (c *NotificationController) SetImportant(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid notification ID")
	}

	req := new(dto.SetImportantRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if err := c.service.SetImportant(ctx.Request().Context(), session.UserID, id, req.Important); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to update notification", err)
	}

	return c.SuccessResponse(ctx, nil, "Notification updated successfully")
}

// CountUnread counts unread notifications
// @Summary Count unread notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Router /private/notifications/unread-count [get]
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	count, err := c.service.CountUnread(ctx.Request().Context(), session.UserID)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to count unread", err)
	}

	return c.SuccessResponse(ctx, map[string]int{"count": count}, "Unread count retrieved")
}

// Delete removes a single notification
// @Summary Delete a notification
// @Tags Notification
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Router /private/notifications/{id} [delete]
func (c *NotificationController) Delete(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid notification ID")
	}

	if err := c.service.Delete(ctx.Request().Context(), session.UserID, id); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to delete notification", err)
	}

	return c.SuccessResponse(ctx, nil, "Notification deleted successfully")
}

// BulkDelete removes many notifications at once
// @Summary Delete multiple notifications
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BulkDeleteRequest true "Notification IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/notifications/bulk-delete [post]
func (c *NotificationController) BulkDelete(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.BulkDeleteRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid notification ID: "+raw)
		}
		ids = append(ids, id)
	}

	if err := c.service.BulkDelete(ctx.Request().Context(), session.UserID, ids); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to delete notifications", err)
	}

	return c.SuccessResponse(ctx, nil, "Notifications deleted successfully")
}
