package router

import (
	"campus-pulse/core/middleware"
	"campus-pulse/modules/news/controller"

	"github.com/labstack/echo/v4"
)

type NewsRouter struct {
	controller *controller.NewsController
}

func NewNewsRouter(controller *controller.NewsController) *NewsRouter {
	return &NewsRouter{controller: controller}
}

func (r *NewsRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	public := e.Group("/public/news")
	public.GET("", r.controller.ListNews)
	public.GET("/:id", r.controller.GetNews)

	admin := e.Group("/private/admin/news", mw.AuthMiddleware(), mw.AdminMiddleware())
	admin.GET("", r.controller.ListAllNews)
	admin.POST("", r.controller.CreateNews)
	admin.PUT("/:id", r.controller.UpdateNews)
	admin.DELETE("/:id", r.controller.DeleteNews)
}
