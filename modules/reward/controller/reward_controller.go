package controller

import (
	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/middleware"
	"campus-pulse/core/params"
	"campus-pulse/modules/reward/dto"
	"campus-pulse/modules/reward/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RewardController struct {
	service service.RewardServiceInterface
	controller.BaseController
}

func NewRewardController(service service.RewardServiceInterface) *RewardController {
	return &RewardController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListRewards lists redeemable rewards
// @Summary List rewards
// @Tags Reward
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedRewardResponse
// @Router /private/rewards [get]
func (c *RewardController) ListRewards(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), false, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Rewards retrieved successfully")
}

// Redeem spends points on a reward
// @Summary Redeem a reward
// @Tags Reward
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reward ID"
// @Success 200 {object} dto.RedemptionResponse
// @Failure 422 {object} errors.AppError
// @Router /private/rewards/{id}/redeem [post]
func (c *RewardController) Redeem(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid reward id")
	}

	result, err := c.service.Redeem(ctx.Request().Context(), session.UserID, id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Reward redeemed successfully")
}

// ListMyRedemptions lists the caller's redemption history
// @Summary List my redemptions
// @Tags Reward
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Redemption
// @Router /private/rewards/redemptions [get]
func (c *RewardController) ListMyRedemptions(ctx echo.Context) error {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	result, err := c.service.ListMyRedemptions(ctx.Request().Context(), session.UserID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Redemptions retrieved successfully")
}

// ListAllRewards lists rewards including inactive ones, admin only
// @Summary List all rewards
// @Tags Reward
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.PaginatedRewardResponse
// @Failure 403 {object} errors.AppError
// @Router /private/admin/rewards [get]
func (c *RewardController) ListAllRewards(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), true, *queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Rewards retrieved successfully")
}

// CreateReward adds a reward to the catalog
// @Summary Create reward
// @Tags Reward
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRewardRequest true "Reward details"
// @Success 200 {object} entity.Reward
// @Failure 403 {object} errors.AppError
// @Router /private/admin/rewards [post]
func (c *RewardController) CreateReward(ctx echo.Context) error {
	req := new(dto.CreateRewardRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Create(ctx.Request().Context(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Reward created successfully")
}

// UpdateReward edits a reward
// @Summary Update reward
// @Tags Reward
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param request body dto.UpdateRewardRequest true "Fields to update"
// @Success 200 {object} entity.Reward
// @Failure 404 {object} errors.AppError
// @Router /private/admin/rewards/{id} [put]
func (c *RewardController) UpdateReward(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid reward id")
	}

	req := new(dto.UpdateRewardRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Update(ctx.Request().Context(), id, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Reward updated successfully")
}

// DeleteReward removes a reward
// @Summary Delete reward
// @Tags Reward
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reward ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/admin/rewards/{id} [delete]
func (c *RewardController) DeleteReward(ctx echo.Context) error {
	id, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid reward id")
	}

	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Reward deleted successfully")
}
