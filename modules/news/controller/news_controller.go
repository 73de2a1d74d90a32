package controller

import (
	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/middleware"
	"campus-pulse/core/params"
	"campus-pulse/modules/news/dto"
	"campus-pulse/modules/news/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NewsController struct {
	service service.NewsServiceInterface
	controller.BaseController
}

func NewNewsController(service service.NewsServiceInterface) *NewsController {
	return &NewsController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListNews lists published announcements
// @Summary List news
// @Tags News
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedNewsResponse
// @Router /public/news [get]
func (c *NewsController) ListNews(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), false, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "News retrieved successfully")
}

// GetNews retrieves one published announcement
// @Summary Get news
// @Tags News
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} entity.News
// @Failure 404 {object} errors.AppError
// @Router /public/news/{id} [get]
func (c *NewsController) GetNews(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid news id")
	}

	result, err := c.service.GetByID(ctx.Request().Context(), id, false)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "News retrieved successfully")
}

// ListAllNews lists announcements including drafts, admin only
// @Summary List all news
// @Tags News
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.PaginatedNewsResponse
// @Failure 403 {object} errors.AppError
// @Router /private/admin/news [get]
func (c *NewsController) ListAllNews(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), true, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "News retrieved successfully")
}

// CreateNews publishes an announcement
// @Summary Create news
// @Tags News
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNewsRequest true "Announcement"
// @Success 200 {object} entity.News
// @Failure 403 {object} errors.AppError
// @Router /private/admin/news [post]
func (c *NewsController) CreateNews(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.CreateNewsRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Create(ctx.Request().Context(), session.UserID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "News created successfully")
}

// UpdateNews edits an announcement
// @Summary Update news
// @Tags News
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "News ID"
// @Param request body dto.UpdateNewsRequest true "Fields to update"
// @Success 200 {object} entity.News
// @Failure 404 {object} errors.AppError
// @Router /private/admin/news/{id} [put]
func (c *NewsController) UpdateNews(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid news id")
	}

	req := new(dto.UpdateNewsRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Update(ctx.Request().Context(), id, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "News updated successfully")
}

// DeleteNews removes an announcement
// @Summary Delete news
// @Tags News
// @Security BearerAuth
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/admin/news/{id} [delete]
func (c *NewsController) DeleteNews(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid news id")
	}

	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "News deleted successfully")
}
