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

	identityapp "github.com/kosmanager/backend/internal/application/identity"
	lodgingapp "github.com/kosmanager/backend/internal/application/lodging"
	tenancyapp "github.com/kosmanager/backend/internal/application/tenancy"
	"github.com/kosmanager/backend/internal/infrastructure/auth"
	"github.com/kosmanager/backend/internal/infrastructure/config"
	"github.com/kosmanager/backend/internal/infrastructure/logger"
	"github.com/kosmanager/backend/internal/infrastructure/persistence"
	"github.com/kosmanager/backend/internal/interfaces/http/handler"
	"github.com/kosmanager/backend/internal/interfaces/http/middleware"
	"github.com/kosmanager/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with a GORM logger bridged to zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.DBName),
	)

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	roomRepo := persistence.NewGormRoomRepository(db.DB)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	propertyService := lodgingapp.NewPropertyService(propertyRepo, userRepo, log)
	roomService := lodgingapp.NewRoomService(roomRepo, propertyRepo, userRepo, txScope, log)
	tenancyService := tenancyapp.NewTenancyService(tenantRepo, invoiceRepo, roomRepo, propertyRepo, txScope, log)
	invoiceService := tenancyapp.NewInvoiceService(invoiceRepo, tenantRepo, log)
	bulkService := tenancyapp.NewBulkService(userRepo, roomRepo, txScope, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	roomHandler := handler.NewRoomHandler(roomService)
	tenantHandler := handler.NewTenantHandler(tenancyService, bulkService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	healthHandler := handler.NewHealthHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoints, reachable without a token
	engine.GET("/health", healthHandler.Check)
	engine.GET("/api/v1/health", healthHandler.Check)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Auth domain (registration, login, profile, plan upgrade)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.POST("/upgrade", authHandler.Upgrade)
	r.Register(authRoutes)

	// Property domain (boarding houses and their rooms)
	propertyRoutes := router.NewDomainGroup("properties", "/properties")
	propertyRoutes.POST("", propertyHandler.Create)
	propertyRoutes.GET("", propertyHandler.List)
	propertyRoutes.GET("/:id", propertyHandler.Get)
	propertyRoutes.PUT("/:id", propertyHandler.Update)
	propertyRoutes.DELETE("/:id", propertyHandler.Delete)
	propertyRoutes.GET("/:id/rooms", roomHandler.ListByProperty)
	propertyRoutes.POST("/:id/rooms", roomHandler.Create)
	r.Register(propertyRoutes)

	// Room domain (cross-property room access)
	roomRoutes := router.NewDomainGroup("rooms", "/rooms")
	roomRoutes.GET("/available", roomHandler.ListAvailable)
	roomRoutes.GET("/:id", roomHandler.Get)
	roomRoutes.PUT("/:id", roomHandler.Update)
	roomRoutes.DELETE("/:id", roomHandler.Delete)
	r.Register(roomRoutes)

	// Tenant domain (check-in, check-out, bulk intake)
	tenantRoutes := router.NewDomainGroup("tenants", "/tenants")
	tenantRoutes.POST("", tenantHandler.CheckIn)
	tenantRoutes.GET("", tenantHandler.List)
	tenantRoutes.GET("/active", tenantHandler.ListActive)
	tenantRoutes.POST("/bulk", tenantHandler.BulkCheckIn)
	tenantRoutes.GET("/:id", tenantHandler.Get)
	tenantRoutes.POST("/:id/checkout", tenantHandler.CheckOut)
	tenantRoutes.DELETE("/:id", tenantHandler.Delete)
	r.Register(tenantRoutes)

	// Invoice domain (monthly billing and payment reminders)
	invoiceRoutes := router.NewDomainGroup("invoices", "/invoices")
	invoiceRoutes.POST("", invoiceHandler.Create)
	invoiceRoutes.GET("", invoiceHandler.List)
	invoiceRoutes.PATCH("/:id/status", invoiceHandler.UpdateStatus)
	invoiceRoutes.DELETE("/:id", invoiceHandler.Delete)
	invoiceRoutes.GET("/:id/reminder", invoiceHandler.Reminder)
	r.Register(invoiceRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
