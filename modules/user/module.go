package user

import (
	"campus-pulse/core/database"
	"campus-pulse/core/middleware"
	"campus-pulse/modules/user/controller"
	"campus-pulse/modules/user/repository"
	"campus-pulse/modules/user/router"
	"campus-pulse/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init wires the user module and returns the service and repository for use
// by the auth and attendance modules.
func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) (service.UserServiceInterface, *repository.UserRepository) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Register(e, mw)

	return svc, repo
}
