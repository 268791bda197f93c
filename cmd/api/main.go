package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fingold/fingold-backend/internal/cache"
	"github.com/fingold/fingold-backend/internal/charts"
	"github.com/fingold/fingold-backend/internal/config"
	"github.com/fingold/fingold-backend/internal/handler"
	"github.com/fingold/fingold-backend/internal/middleware"
	"github.com/fingold/fingold-backend/internal/report"
	"github.com/fingold/fingold-backend/internal/repository/postgres"
	"github.com/fingold/fingold-backend/internal/repository/storage"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/fingold/fingold-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Apply schema migrations before serving
	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	expenseRepo := postgres.NewExpenseRepository(pool, cfg.Location)
	goalRepo := postgres.NewGoalRepository(pool, cfg.Location)
	incomeRepo := postgres.NewIncomeRepository(pool, cfg.Location)

	// Report storage is optional
	var reportStorage storage.ReportStorage
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3ReportStorage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize report storage")
		}
		reportStorage = s3Storage
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Report archiving enabled")
	} else {
		log.Info().Msg("S3_BUCKET not set, report archiving disabled")
	}

	chartCache, err := cache.NewChartCache(cfg.ChartCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create chart cache")
	}
	defer chartCache.Close()

	// WebSocket hub doubles as the event publisher
	hub := websocket.NewHub()

	// Initialize services
	clock := service.NewClock(cfg.Location)
	chartGenerator := charts.NewGenerator()

	expenseService := service.NewExpenseService(expenseRepo, clock)
	expenseService.SetEventPublisher(hub)
	goalService := service.NewGoalService(goalRepo, clock)
	goalService.SetEventPublisher(hub)
	incomeService := service.NewIncomeService(incomeRepo, clock)
	incomeService.SetEventPublisher(hub)
	dashboardService := service.NewDashboardService(expenseRepo, incomeRepo, clock)
	chartService := service.NewChartService(expenseRepo, incomeRepo, chartGenerator, chartCache)
	reportService := service.NewReportService(expenseRepo, report.NewRenderer(chartGenerator), reportStorage, clock, cfg.ExportURLTTL)

	// Keep dashboard charts warm in the cache
	var chartWarmer *service.ChartWarmer
	if cfg.ChartWarmInterval > 0 {
		chartWarmer = service.NewChartWarmer(chartService, log.Logger, cfg.ChartWarmInterval)
		chartWarmer.Start(context.Background())
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Expense:   handler.NewExpenseHandler(expenseService, cfg.Location),
		Goal:      handler.NewGoalHandler(goalService, cfg.Location),
		Income:    handler.NewIncomeHandler(incomeService, cfg.Location),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService, cfg.Location),
		Chart:     handler.NewChartHandler(chartService),
		WebSocket: handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	exportLimiter := middleware.NewRateLimiterWithConfig(cfg.ExportRateLimit, middleware.DefaultBurstSize)
	defer exportLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(middleware.RequestLogger())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, handlers, middleware.RateLimitMiddleware(exportLimiter))

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("timezone", cfg.Location.String()).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if chartWarmer != nil {
		chartWarmer.Stop()
	}
	hub.CloseAll()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
