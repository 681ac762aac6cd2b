// Package bootstrap wires configuration, the database, repositories,
// services, controllers and background workers into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edupulse/schoolerp/docs" // Generated swagger docs
	appControllers "github.com/edupulse/schoolerp/internal/app/controllers"
	appMigrations "github.com/edupulse/schoolerp/internal/app/migrations"
	appRepos "github.com/edupulse/schoolerp/internal/app/repositories"
	appRoutes "github.com/edupulse/schoolerp/internal/app/routes"
	appServices "github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/config"
	"github.com/edupulse/schoolerp/internal/db"
	appMiddleware "github.com/edupulse/schoolerp/internal/middleware"
	"github.com/edupulse/schoolerp/internal/outbox"
	pkgAuth "github.com/edupulse/schoolerp/internal/pkg/auth"
	"github.com/edupulse/schoolerp/internal/pkg/helpers"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
	"github.com/edupulse/schoolerp/internal/pkg/validation"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Dispatcher     *outbox.Dispatcher
	Logger         zerolog.Logger

	AuthController         *appControllers.AuthController
	SchoolController       *appControllers.SchoolController
	StudentController      *appControllers.StudentController
	TeacherController      *appControllers.TeacherController
	AcademicController     *appControllers.AcademicController
	AttendanceController   *appControllers.AttendanceController
	GradeController        *appControllers.GradeController
	FeeController          *appControllers.FeeController
	NotificationController *appControllers.NotificationController
	ComplaintController    *appControllers.ComplaintController
	BillingController      *appControllers.BillingController
	DashboardController    *appControllers.DashboardController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	validation.RegisterCustomValidators()

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(database, deps.Repos, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Services.AuthService)

	// The notification outbox drains on a fixed interval; failed deliveries
	// stay queued and are retried on the next tick.
	deps.Dispatcher = outbox.NewDispatcher(
		deps.Repos.NotificationRepository,
		nil,
		helpers.ParseDuration(cfg.Outbox.PollInterval, 5*time.Second),
		cfg.Outbox.BatchSize,
	)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.SchoolController = appControllers.NewSchoolController(deps.Services.SchoolService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.TeacherController = appControllers.NewTeacherController(deps.Services.TeacherService)
	deps.AcademicController = appControllers.NewAcademicController(deps.Services.AcademicService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Services.AttendanceService)
	deps.GradeController = appControllers.NewGradeController(deps.Services.GradeService)
	deps.FeeController = appControllers.NewFeeController(deps.Services.FeeService)
	deps.NotificationController = appControllers.NewNotificationController(deps.Services.NotificationService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.Services.ComplaintService)
	deps.BillingController = appControllers.NewBillingController(deps.Services.BillingService)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SchoolController,
		deps.StudentController,
		deps.TeacherController,
		deps.AcademicController,
		deps.AttendanceController,
		deps.GradeController,
		deps.FeeController,
		deps.NotificationController,
		deps.ComplaintController,
		deps.BillingController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
