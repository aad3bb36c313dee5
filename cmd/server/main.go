// PosDesk Backend API Server
//
// @title        PosDesk Backend API
// @version      1.0
// @description  Cash drawer session and reconciliation service for PosDesk terminals
// @BasePath     /api/v1
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcashdrawer "github.com/posdesk/backend/internal/application/cashdrawer"
	domaincashdrawer "github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/infrastructure/auth"
	"github.com/posdesk/backend/internal/infrastructure/cache"
	"github.com/posdesk/backend/internal/infrastructure/config"
	"github.com/posdesk/backend/internal/infrastructure/logger"
	"github.com/posdesk/backend/internal/infrastructure/persistence"
	"github.com/posdesk/backend/internal/interfaces/http/handler"
	"github.com/posdesk/backend/internal/interfaces/http/middleware"
	"github.com/posdesk/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting PosDesk backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with a GORM logger that routes through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	log.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// Repositories
	sessionRepo := persistence.NewCashSessionRepository(db.DB)
	withdrawalRepo := persistence.NewCashWithdrawalRepository(db.DB)
	saleRepo := persistence.NewPosSaleRepository(db.DB)
	operatorRepo := persistence.NewOperatorRepository(db.DB)

	// Domain services
	guard := domaincashdrawer.NewSessionGuard(sessionRepo)
	reconciler := domaincashdrawer.NewReconciler(sessionRepo, withdrawalRepo, saleRepo)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)
	summaryCache := cache.NewSummaryCache(cfg.Redis, log)

	// Application services
	shiftService := appcashdrawer.NewShiftService(sessionRepo, operatorRepo, guard, reconciler, log)
	withdrawalService := appcashdrawer.NewWithdrawalService(withdrawalRepo, operatorRepo, log)
	dashboardService := appcashdrawer.NewDashboardService(sessionRepo, saleRepo, reconciler, summaryCache, cfg.Dashboard.SummaryCacheTTL, log)

	// Handlers
	cashDrawerHandler := handler.NewCashDrawerHandler(shiftService, withdrawalService, dashboardService)
	systemHandler := handler.NewSystemHandler()

	// Setup Gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	// Middleware stack. Order matters: request ID first so every later
	// stage can log it.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.JWT.Secret != "" {
		engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService: jwtService,
			SkipPaths: []string{
				"/health",
				"/api/v1/ping",
				"/api/v1/system/ping",
				"/api/v1/system/info",
			},
			Logger: log,
		}))
	} else {
		// Dev mode: handlers fall back to the X-User-ID header
		log.Warn("JWT secret not configured, authentication disabled")
	}

	// Health check outside the versioned API
	engine.GET("/health", healthHandler(db, log))

	// Routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	cashDrawerGroup := router.NewDomainGroup("cashdrawer", "/cashdrawer")
	cashDrawerGroup.POST("/shifts/open", cashDrawerHandler.OpenShift)
	cashDrawerGroup.POST("/shifts/open-manual", cashDrawerHandler.OpenShiftManual)
	cashDrawerGroup.POST("/shifts/close", cashDrawerHandler.CloseShift)
	cashDrawerGroup.GET("/shifts/status", cashDrawerHandler.GetShiftStatus)
	cashDrawerGroup.GET("/shifts", cashDrawerHandler.ListShifts)
	cashDrawerGroup.POST("/stock-control", cashDrawerHandler.MarkStockControlDone)
	cashDrawerGroup.GET("/stock-control", cashDrawerHandler.GetStockControlStatus)
	cashDrawerGroup.POST("/withdrawals", cashDrawerHandler.RecordWithdrawal)
	cashDrawerGroup.GET("/dashboard", cashDrawerHandler.GetDashboard)

	systemGroup := router.NewDomainGroup("system", "/system")
	systemGroup.GET("/info", systemHandler.GetSystemInfo)
	systemGroup.GET("/ping", systemHandler.Ping)

	r.Register(cashDrawerGroup)
	r.Register(systemGroup)
	r.Setup()

	engine.GET("/api/v1/ping", systemHandler.Ping)

	// HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down server", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "down",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "up",
		})
	}
}
