package main

import (
	"campus-pulse/core/logger"
	"campus-pulse/core/server"

	_ "campus-pulse/docs" // Swagger docs
)

// @title Campus Pulse API
// @version 1.0
// @description Student engagement backend: events, RSVPs, QR check-ins, surveys, points and rewards.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@campuspulse.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
