package router

import (
	"campus-pulse/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(e *echo.Group) {
	group := e.Group("/public/auth")
	group.POST("/signup", r.controller.Signup)
	group.POST("/login", r.controller.Login)
	group.POST("/refresh", r.controller.Refresh)
	group.GET("/google", r.controller.GoogleLogin)
	group.GET("/google/callback", r.controller.GoogleCallback)
}
