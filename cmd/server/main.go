package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/luxurahair/luxura-inventory-api/internal/application/catalog"
	inventoryapp "github.com/luxurahair/luxura-inventory-api/internal/application/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/application/wixsync"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/config"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/lock"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/logger"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/persistence"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/wix"
	"github.com/luxurahair/luxura-inventory-api/internal/interfaces/http/handler"
	"github.com/luxurahair/luxura-inventory-api/internal/interfaces/http/middleware"
	"github.com/luxurahair/luxura-inventory-api/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Luxura Inventory API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	salonRepo := persistence.NewGormSalonRepository(db.DB)
	inventoryItemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	syncRunRepo := persistence.NewGormSyncRunRepository(db.DB)

	// The run lock is Redis-backed so concurrent deployments serialize sync
	// runs across instances. Without Redis a single-instance in-process lock
	// still protects the catalog.
	runLock := buildRunLock(cfg, log)

	// The catalog source degrades to a stub when credentials are absent:
	// the API stays up, sync runs fail with a clear cause.
	catalogSource := buildCatalogSource(cfg, log)

	// Initialize services
	syncScope := persistence.NewGormSyncTransactionScope(db.DB)
	syncService := wixsync.NewSyncService(
		catalogSource,
		syncScope,
		syncRunRepo,
		runLock,
		cfg.Sync.SalonCode,
		cfg.Sync.SalonName,
		log,
	)
	productService := catalogapp.NewProductService(productRepo)
	salonService := inventoryapp.NewSalonService(salonRepo)
	inventoryService := inventoryapp.NewInventoryService(inventoryItemRepo, salonRepo, productRepo)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService)
	salonHandler := handler.NewSalonHandler(salonService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	syncHandler := handler.NewSyncHandler(syncService, syncRunRepo)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, recovery, logging, security headers, CORS
	engine.Use(logger.RequestID())
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

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/sku/:sku", productHandler.GetBySKU)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	catalogRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)

	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.POST("/salons", salonHandler.Create)
	inventoryRoutes.GET("/salons", salonHandler.List)
	inventoryRoutes.GET("/salons/:id", salonHandler.GetByID)
	inventoryRoutes.PUT("/salons/:id", salonHandler.Update)
	inventoryRoutes.DELETE("/salons/:id", salonHandler.Delete)
	inventoryRoutes.GET("/items", inventoryHandler.List)
	inventoryRoutes.POST("/movements", inventoryHandler.ApplyMovement)

	wixRoutes := router.NewDomainGroup("wix", "/wix")
	wixRoutes.POST("/sync", syncHandler.Run)
	wixRoutes.GET("/runs", syncHandler.ListRuns)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(catalogRoutes).
		Register(inventoryRoutes).
		Register(wixRoutes).
		Register(systemRoutes)
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

// buildRunLock returns the Redis-backed run lock when Redis is reachable,
// falling back to the in-process lock otherwise.
func buildRunLock(cfg *config.Config, log *zap.Logger) wixsync.RunLock {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, using in-process run lock",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Error(err),
		)
		_ = client.Close()
		return wixsync.NewInProcessRunLock()
	}

	log.Info("Redis connected, sync runs serialized across instances",
		zap.String("addr", cfg.Redis.Addr()),
	)
	return lock.NewRedisRunLock(client, "sync:run:lock", cfg.Sync.LockTTL)
}

// buildCatalogSource returns the Wix client, or a stub source when no
// credentials are configured.
func buildCatalogSource(cfg *config.Config, log *zap.Logger) syncdomain.CatalogSource {
	if cfg.Wix.APIKey == "" || cfg.Wix.SiteID == "" {
		log.Warn("Wix credentials not configured, sync runs will fail until they are set")
		return wix.UnconfiguredSource{}
	}

	wixCfg := wix.NewConfig(cfg.Wix.APIKey, cfg.Wix.SiteID)
	if cfg.Wix.BaseURL != "" {
		wixCfg.BaseURL = cfg.Wix.BaseURL
	}
	if cfg.Wix.Timeout > 0 {
		wixCfg.TimeoutSeconds = int(cfg.Wix.Timeout.Seconds())
	}

	client, err := wix.NewClient(wixCfg)
	if err != nil {
		log.Fatal("Failed to initialize Wix client", zap.Error(err))
	}
	return client
}

// healthHandler returns a handler for the health check endpoint
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
