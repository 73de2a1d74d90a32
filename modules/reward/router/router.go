package router

import (
	"campus-pulse/core/middleware"
	"campus-pulse/modules/reward/controller"

	"github.com/labstack/echo/v4"
)

type RewardRouter struct {
	controller *controller.RewardController
}

func NewRewardRouter(controller *controller.RewardController) *RewardRouter {
	return &RewardRouter{controller: controller}
}

func (r *RewardRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	private := e.Group("/private/rewards", mw.AuthMiddleware())
	private.GET("", r.controller.ListRewards)
	private.GET("/redemptions", r.controller.ListMyRedemptions)
	private.POST("/:id/redeem", r.controller.Redeem)

	admin := e.Group("/private/admin/rewards", mw.AuthMiddleware(), mw.AdminMiddleware())
	admin.GET("", r.controller.ListAllRewards)
	admin.POST("", r.controller.CreateReward)
	admin.PUT("/:id", r.controller.UpdateReward)
	admin.DELETE("/:id", r.controller.DeleteReward)
}
