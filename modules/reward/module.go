package reward

import (
	"campus-pulse/core/database"
	"campus-pulse/core/middleware"
	"campus-pulse/modules/reward/controller"
	"campus-pulse/modules/reward/repository"
	"campus-pulse/modules/reward/router"
	"campus-pulse/modules/reward/service"

	notificationService "campus-pulse/modules/notification/service"
	userService "campus-pulse/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init wires the reward module.
func Init(e *echo.Group, db database.Database, mw *middleware.Middleware, users userService.UserServiceInterface, notifier *notificationService.NotificationService) {
	repo := repository.NewRewardRepository(db)
	svc := service.NewRewardService(repo, users, notifier)
	ctrl := controller.NewRewardController(svc)

	router.NewRewardRouter(ctrl).Register(e, mw)
}
