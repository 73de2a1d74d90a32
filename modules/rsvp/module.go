package rsvp

import (
	"campus-pulse/core/cache"
	"campus-pulse/core/database"
	"campus-pulse/core/middleware"
	"campus-pulse/core/queue"
	"campus-pulse/modules/rsvp/controller"
	"campus-pulse/modules/rsvp/repository"
	"campus-pulse/modules/rsvp/router"
	"campus-pulse/modules/rsvp/service"

	eventRepository "campus-pulse/modules/event/repository"
	notificationService "campus-pulse/modules/notification/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init wires the rsvp module: HTTP routes plus the confirmation-email worker
// handler on the shared task mux.
func Init(
	e *echo.Group,
	db database.Database,
	mw *middleware.Middleware,
	events *eventRepository.EventRepository,
	notifier *notificationService.NotificationService,
	queueClient queue.Client,
	cacheClient cache.Cache,
	mux *asynq.ServeMux,
) *repository.RsvpRepository {
	repo := repository.NewRsvpRepository(db)
	svc := service.NewRsvpService(repo, events, notifier, queueClient)
	ctrl := controller.NewRsvpController(svc)

	router.NewRsvpRouter(ctrl).Register(e, mw)
	service.NewEmailWorker(repo, cacheClient).Register(mux)

	return repo
}
