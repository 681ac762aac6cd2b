package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/edupulse/schoolerp/internal/pkg/logger"
	"github.com/edupulse/schoolerp/internal/server"
)

// @title EduPulse School ERP API
// @version 1.0
// @description Multi-tenant school management API: students, teachers, attendance, grades, fees, notifications and platform billing.

// @contact.name API Support
// @contact.email support@edupulse.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// .env is optional; explicit env vars and configs/config.yaml take over
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
