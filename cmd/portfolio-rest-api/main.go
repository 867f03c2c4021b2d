// cmd/portfolio-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Azu-ul/portfolio-back/internal/api/rest/v1"
	"github.com/Azu-ul/portfolio-back/internal/app"
	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/identity"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/config"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services    *appServices
	tokens      users.TokenService
	projectRepo projects.Repository
	db          *gorm.DB
}

type appServices struct {
	auth    users.AuthService
	project projects.Service
	skill   skills.Service
	content content.Service
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.RoleModel{},
		&models.ProjectModel{},
		&models.ProjectTechnologyModel{},
		&models.SkillModel{},
		&models.SoftSkillModel{},
		&models.SiteHeaderModel{},
		&models.SiteAboutModel{},
		&models.SiteContactModel{},
		&models.SiteFooterModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	if err := persistence.EnsureRoles(db); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	skillRepo, err := persistence.NewGormSkillRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill repository: %w", err)
	}

	contentRepo, err := persistence.NewGormContentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create content repository: %w", err)
	}

	// Initialize credential helpers
	hasher := identity.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := identity.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// Initialize services
	services, err := initializeApplicationServices(userRepo, projectRepo, skillRepo, contentRepo, hasher, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// The reset-password route replaces a password keyed by email alone.
	log.Warn("reset-password runs without an ownership verification step; restrict the route in untrusted deployments")

	return &appDependencies{
		services:    services,
		tokens:      tokens,
		projectRepo: projectRepo,
		db:          db,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	userRepo users.Repository,
	projectRepo projects.Repository,
	skillRepo skills.Repository,
	contentRepo content.Repository,
	hasher users.PasswordHasher,
	tokens users.TokenService,
	log logger.Logger,
) (*appServices, error) {
	authService, err := app.NewAuthService(userRepo, hasher, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	projectService, err := app.NewProjectService(projectRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	skillService, err := app.NewSkillService(skillRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill service: %w", err)
	}

	contentService, err := app.NewContentService(contentRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:    authService,
		project: projectService,
		skill:   skillService,
		content: contentService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.auth,
		deps.tokens,
		deps.services.project,
		deps.services.skill,
		deps.services.content,
		deps.projectRepo,
		deps.db,
		cfg.Server.IsDevelopment(),
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	if err := persistence.CloseDB(deps.db); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
