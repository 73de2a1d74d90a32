package router

import (
	"campus-pulse/core/middleware"
	"campus-pulse/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	controller *controller.UserController
}

func NewUserRouter(controller *controller.UserController) *UserRouter {
	return &UserRouter{controller: controller}
}

func (r *UserRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/users", mw.AuthMiddleware())
	group.GET("/me", r.controller.GetMe)
	group.GET("/me/history", r.controller.GetMyHistory)
	group.GET("/leaderboard", r.controller.GetLeaderboard)
}
