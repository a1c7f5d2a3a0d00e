package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/minwoo/dormhub/internal/app/auth"
	appControllers "github.com/minwoo/dormhub/internal/app/controllers"
	appMigrations "github.com/minwoo/dormhub/internal/app/migrations"
	appRepos "github.com/minwoo/dormhub/internal/app/repositories"
	appRoutes "github.com/minwoo/dormhub/internal/app/routes"
	appServices "github.com/minwoo/dormhub/internal/app/services"
	"github.com/minwoo/dormhub/internal/config"
	"github.com/minwoo/dormhub/internal/db"
	appMiddleware "github.com/minwoo/dormhub/internal/middleware"
	pkgAuth "github.com/minwoo/dormhub/internal/pkg/auth"
	"github.com/minwoo/dormhub/internal/pkg/filestorage"
	"github.com/minwoo/dormhub/internal/pkg/helpers"
	"github.com/minwoo/dormhub/internal/pkg/logger"
	"github.com/minwoo/dormhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService    *appServices.AuthService
	ProfileService *appServices.ProfileService
	DormService    *appServices.DormService
	OutingService  *appServices.OutingService
	PostService    *appServices.PostService
	InquiryService *appServices.InquiryService
	NoticeService  *appServices.NoticeService

	AuthController    *appControllers.AuthController
	ProfileController *appControllers.ProfileController
	DormController    *appControllers.DormController
	OutingController  *appControllers.OutingController
	PostController    *appControllers.PostController
	InquiryController *appControllers.InquiryController
	NoticeController  *appControllers.NoticeController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.MediaRoot)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Must match the static file serving URL path configured on the router.
	imageBaseURL := "http://localhost:" + cfg.Server.Port + "/media"

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.PostRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.UserRepository, deps.Repos.DormRepository)
	deps.DormService = appServices.NewDormService(deps.Repos.DormRepository)
	deps.OutingService = appServices.NewOutingService(deps.Repos.OutingRepository, cfg.App.AllowDecisionOverride)
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, deps.AuthzService, deps.FileStorage, imageBaseURL)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository, deps.FileStorage, imageBaseURL)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, lgr)
	deps.DormController = appControllers.NewDormController(deps.DormService, lgr)
	deps.OutingController = appControllers.NewOutingController(deps.OutingService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService, lgr)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.DormController,
		deps.OutingController,
		deps.PostController,
		deps.InquiryController,
		deps.NoticeController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
