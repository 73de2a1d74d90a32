package attendance

import (
	"campus-pulse/core/database"
	"campus-pulse/core/middleware"
	"campus-pulse/modules/attendance/controller"
	"campus-pulse/modules/attendance/repository"
	"campus-pulse/modules/attendance/router"
	"campus-pulse/modules/attendance/service"

	eventRepository "campus-pulse/modules/event/repository"
	notificationService "campus-pulse/modules/notification/service"
	rsvpRepository "campus-pulse/modules/rsvp/repository"
	userService "campus-pulse/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init wires the attendance module.
func Init(
	e *echo.Group,
	db database.Database,
	mw *middleware.Middleware,
	events *eventRepository.EventRepository,
	rsvps *rsvpRepository.RsvpRepository,
	users userService.UserServiceInterface,
	notifier *notificationService.NotificationService,
) {
	repo := repository.NewAttendanceRepository(db)
	svc := service.NewAttendanceService(repo, events, rsvps, users, notifier)
	ctrl := controller.NewAttendanceController(svc)

	router.NewAttendanceRouter(ctrl).Register(e, mw)
}
