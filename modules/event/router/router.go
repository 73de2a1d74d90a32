package router

import (
	"campus-pulse/core/middleware"
	"campus-pulse/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	public := e.Group("/public/events")
	public.GET("", r.controller.ListEvents)
	public.GET("/:id", r.controller.GetEvent)

	private := e.Group("/private/events", mw.AuthMiddleware())
	private.POST("", r.controller.CreateEvent)
	private.GET("/mine", r.controller.ListMyEvents)
	private.PUT("/:id", r.controller.UpdateEvent)

	admin := e.Group("/private/admin/events", mw.AuthMiddleware(), mw.AdminMiddleware())
	admin.GET("", r.controller.ListAllEvents)
	admin.GET("/stats", r.controller.GetStats)
	admin.PUT("/:id/review", r.controller.ReviewEvent)
	admin.DELETE("/:id", r.controller.DeleteEvent)
	admin.GET("/:id/qr", r.controller.GetQRPayload)
	admin.POST("/:id/poster", r.controller.PresignPoster)
}
