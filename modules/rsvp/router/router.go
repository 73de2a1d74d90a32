package router

import (
	"campus-pulse/core/middleware"
	"campus-pulse/modules/rsvp/controller"

	"github.com/labstack/echo/v4"
)

type RsvpRouter struct {
	controller *controller.RsvpController
}

func NewRsvpRouter(controller *controller.RsvpController) *RsvpRouter {
	return &RsvpRouter{controller: controller}
}

func (r *RsvpRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/private", mw.AuthMiddleware())
	group.GET("/rsvps", r.controller.ListMine)
	group.POST("/events/:id/rsvp", r.controller.Rsvp)
	group.GET("/events/:id/rsvp", r.controller.GetStatus)
	group.DELETE("/events/:id/rsvp", r.controller.Cancel)
	group.POST("/events/:id/rsvp/confirmation", r.controller.SendConfirmation)

	admin := e.Group("/private/admin/events", mw.AuthMiddleware(), mw.AdminMiddleware())
	admin.GET("/:id/rsvps", r.controller.ListForEvent)
}
