package router

import (
	"campus-pulse/core/middleware"
	"campus-pulse/modules/attendance/controller"

	"github.com/labstack/echo/v4"
)

type AttendanceRouter struct {
	controller *controller.AttendanceController
}

func NewAttendanceRouter(controller *controller.AttendanceController) *AttendanceRouter {
	return &AttendanceRouter{controller: controller}
}

func (r *AttendanceRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	private := e.Group("/private/events", mw.AuthMiddleware())
	private.POST("/:id/checkin", r.controller.CheckIn)
	private.POST("/:id/survey", r.controller.SubmitSurvey)

	admin := e.Group("/private/admin/events", mw.AuthMiddleware(), mw.AdminMiddleware())
	admin.GET("/:id/roster", r.controller.GetRoster)
}
