package news

import (
	"campus-pulse/core/database"
	"campus-pulse/core/middleware"
	"campus-pulse/modules/news/controller"
	"campus-pulse/modules/news/repository"
	"campus-pulse/modules/news/router"
	"campus-pulse/modules/news/service"

	"github.com/labstack/echo/v4"
)

// Init wires the news module.
func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewNewsRepository(db)
	svc := service.NewNewsService(repo)
	ctrl := controller.NewNewsController(svc)

	router.NewNewsRouter(ctrl).Register(e, mw)
}
