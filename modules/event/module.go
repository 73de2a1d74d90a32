package event

import (
	"campus-pulse/core/database"
	"campus-pulse/core/middleware"
	"campus-pulse/core/storage"
	"campus-pulse/modules/event/controller"
	"campus-pulse/modules/event/repository"
	"campus-pulse/modules/event/router"
	"campus-pulse/modules/event/service"
	notificationService "campus-pulse/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module and returns the repository so the rsvp and
// attendance modules can load events directly.
func Init(e *echo.Group, db database.Database, mw *middleware.Middleware, notifier *notificationService.NotificationService, store storage.Storage) *repository.EventRepository {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, notifier, store)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(e, mw)

	return repo
}
