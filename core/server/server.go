package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-pulse/core/cache"
	"campus-pulse/core/config"
	"campus-pulse/core/database"
	"campus-pulse/core/logger"
	"campus-pulse/core/middleware"
	"campus-pulse/core/queue"
	"campus-pulse/core/storage"

	"campus-pulse/modules/attendance"
	"campus-pulse/modules/auth"
	"campus-pulse/modules/event"
	"campus-pulse/modules/news"
	"campus-pulse/modules/notification"
	"campus-pulse/modules/reward"
	"campus-pulse/modules/rsvp"
	"campus-pulse/modules/user"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run boots the HTTP server and the in-process task worker, and blocks until
// shutdown.
func Run() error {
	// Missing .env is fine; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err = logger.Init(cfg.Server.Environment); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	cacheClient, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	store := storage.NewS3Storage(cfg.S3)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestID())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware()
	api := e.Group("/api/v1")

	workerSrv, mux := queue.NewServer(cfg.Redis)

	// Module wiring. Order matters only where one module's Init consumes
	// another's return value.
	userSvc, userRepo := user.Init(api, db, mw)
	notifier := notification.Init(api, db, mw)
	eventRepo := event.Init(api, db, mw, notifier, store)
	rsvpRepo := rsvp.Init(api, db, mw, eventRepo, notifier, queueClient, cacheClient, mux)
	attendance.Init(api, db, mw, eventRepo, rsvpRepo, userSvc, notifier)
	auth.Init(api, userRepo, cacheClient)
	news.Init(api, db, mw)
	reward.Init(api, db, mw, userSvc, notifier)

	go func() {
		if err := workerSrv.Run(mux); err != nil {
			logger.Error("Server:Worker", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", err)
		}
	}()

	logger.Info("Server:Started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Stopping")
	workerSrv.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(ctx)
}
