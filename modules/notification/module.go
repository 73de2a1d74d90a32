package notification

import (
	"campus-pulse/core/database"
	"campus-pulse/core/middleware"
	"campus-pulse/modules/notification/controller"
	"campus-pulse/modules/notification/repository"
	"campus-pulse/modules/notification/router"
	"campus-pulse/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module and returns the service so other
// modules can emit notifications.
func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
