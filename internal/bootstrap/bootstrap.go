// Package bootstrap assembles configuration, database, dependencies and
// the router at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/pradeep/vidyapith/internal/app/controllers"
	appMigrations "github.com/pradeep/vidyapith/internal/app/migrations"
	appRepos "github.com/pradeep/vidyapith/internal/app/repositories"
	appRoutes "github.com/pradeep/vidyapith/internal/app/routes"
	appServices "github.com/pradeep/vidyapith/internal/app/services"
	"github.com/pradeep/vidyapith/internal/config"
	"github.com/pradeep/vidyapith/internal/db"
	appMiddleware "github.com/pradeep/vidyapith/internal/middleware"
	pkgAuth "github.com/pradeep/vidyapith/internal/pkg/auth"
	"github.com/pradeep/vidyapith/internal/pkg/filestorage"
	"github.com/pradeep/vidyapith/internal/pkg/helpers"
	"github.com/pradeep/vidyapith/internal/pkg/logger"
	"github.com/pradeep/vidyapith/internal/pkg/mail"
	"github.com/pradeep/vidyapith/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	SubmissionService    *appServices.SubmissionService
	ContactService       *appServices.ContactService
	AuthController       *appControllers.AuthController
	SubmissionController *appControllers.SubmissionController
	ContactController    *appControllers.ContactController
	PagesController      *appControllers.PagesController
	AdminController      *appControllers.AdminController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	TokenService         *pkgAuth.TokenService
	FileStorage          *filestorage.LocalStorage
	Mailer               mail.Mailer
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin account, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	smtpPort, err := strconv.Atoi(cfg.SMTP.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}
	deps.Mailer = mail.NewSMTPMailer(mail.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      smtpPort,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey:   cfg.Auth.Secret,
		SessionTTL:  helpers.ParseDuration(cfg.Auth.SessionTTL, 24*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AccountRepository,
		deps.Repos.SessionRepository,
		deps.TokenService,
		lgr,
	)
	deps.SubmissionService = appServices.NewSubmissionService(
		deps.Repos.StudentRepository,
		deps.Repos.DocumentRepository,
		deps.FileStorage,
		deps.Mailer,
		cfg.SMTP.AdminEmail,
		lgr,
	)
	deps.ContactService = appServices.NewContactService(deps.Mailer, cfg.SMTP.AdminEmail, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenService, deps.Repos.SessionRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.SubmissionController = appControllers.NewSubmissionController(deps.SubmissionService, lgr)
	deps.ContactController = appControllers.NewContactController(deps.ContactService, lgr)
	deps.PagesController = appControllers.NewPagesController()
	deps.AdminController = appControllers.NewAdminController(deps.SubmissionService, lgr)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SubmissionController,
		deps.ContactController,
		deps.PagesController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
