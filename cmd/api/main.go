package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/team-ops/pkg/validator"

	"github.com/johnquangdev/team-ops/internal/adapter/handler"
	"github.com/johnquangdev/team-ops/internal/adapter/repository"
	"github.com/johnquangdev/team-ops/internal/infrastructure/database"
	"github.com/johnquangdev/team-ops/internal/infrastructure/scheduler"
	actionUsecase "github.com/johnquangdev/team-ops/internal/usecase/action"
	dashboardUsecase "github.com/johnquangdev/team-ops/internal/usecase/dashboard"
	decisionUsecase "github.com/johnquangdev/team-ops/internal/usecase/decision"
	meetingUsecase "github.com/johnquangdev/team-ops/internal/usecase/meeting"
	memberUsecase "github.com/johnquangdev/team-ops/internal/usecase/member"
	taskUsecase "github.com/johnquangdev/team-ops/internal/usecase/task"
	"github.com/johnquangdev/team-ops/internal/usecase/workload"
	"github.com/johnquangdev/team-ops/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply schema migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying schema migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	memberRepo := repository.NewMemberRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)
	actionRepo := repository.NewActionRepository(db)

	// Initialize services
	log.Println("✨ Initializing services...")
	memberService := memberUsecase.NewService(memberRepo, taskRepo)
	taskService := taskUsecase.NewService(taskRepo, memberRepo)
	meetingService := meetingUsecase.NewService(meetingRepo, memberRepo, actionRepo, decisionRepo)
	decisionService := decisionUsecase.NewService(decisionRepo, memberRepo, meetingRepo)
	actionService := actionUsecase.NewService(actionRepo, meetingRepo, memberRepo)
	workloadService := workload.NewService(memberRepo, taskRepo)
	dashboardService := dashboardUsecase.NewService(
		decisionRepo,
		taskRepo,
		actionRepo,
		meetingRepo,
		memberRepo,
		actionService,
		workloadService,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	teamHandler := handler.NewTeamHandler(memberService, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)
	decisionHandler := handler.NewDecisionHandler(decisionService, logger)
	actionHandler := handler.NewActionHandler(actionService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, teamHandler, meetingHandler, taskHandler, decisionHandler, actionHandler, dashboardHandler)
	router.Setup(e)

	// Start background overdue sweeper
	var sweeper *scheduler.Sweeper
	if cfg.Sweeper.Enabled {
		log.Println("⏰ Starting overdue sweeper...")
		sweeper = scheduler.NewSweeper(actionService, cfg.Sweeper.Interval, logger)
		if err := sweeper.Start(); err != nil {
			log.Fatalf("Failed to start overdue sweeper: %v", err)
		}
	} else {
		log.Println("⏰ Overdue sweeper disabled; actions are swept lazily on reads")
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if sweeper != nil {
		sweeper.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
