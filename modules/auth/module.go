package auth

import (
	"campus-pulse/core/cache"
	"campus-pulse/modules/auth/controller"
	"campus-pulse/modules/auth/router"
	"campus-pulse/modules/auth/service"

	userRepository "campus-pulse/modules/user/repository"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module.
func Init(e *echo.Group, users *userRepository.UserRepository, cacheClient cache.Cache) {
	svc := service.NewAuthService(users, cacheClient)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Register(e)
}
