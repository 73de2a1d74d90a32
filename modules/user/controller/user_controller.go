package controller

import (
	"strconv"

	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/middleware"
	"campus-pulse/modules/user/service"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	service service.UserServiceInterface
	controller.BaseController
}

func NewUserController(service service.UserServiceInterface) *UserController {
	return &UserController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetMe returns the current user's profile
// @Summary Get my profile
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} errors.AppError
// @Router /private/users/me [get]
func (c *UserController) GetMe(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	user, appErr := c.service.GetProfile(ctx.Request().Context(), session.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, user, "Profile retrieved successfully")
}

// GetMyHistory returns the current user's point-earning history
// @Summary Get my points history
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PointHistoryResponse
// @Failure 401 {object} errors.AppError
// @Router /private/users/me/history [get]
func (c *UserController) GetMyHistory(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	history, appErr := c.service.GetPointHistory(ctx.Request().Context(), session.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, history, "Point history retrieved successfully")
}

// GetLeaderboard returns users ranked by points
// @Summary Points leaderboard
// @Tags User
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of entries"
// @Success 200 {object} dto.LeaderboardResponse
// @Router /private/users/leaderboard [get]
func (c *UserController) GetLeaderboard(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	board, appErr := c.service.GetLeaderboard(ctx.Request().Context(), limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, board, "Leaderboard retrieved successfully")
}
