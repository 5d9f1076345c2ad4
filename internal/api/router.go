package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freshmart/inventory-api/internal/api/handler"
	"github.com/freshmart/inventory-api/internal/api/middleware"
	"github.com/freshmart/inventory-api/internal/core/service"
	"github.com/freshmart/inventory-api/internal/infrastructure/config"
	mongodb "github.com/freshmart/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/freshmart/inventory-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/freshmart/inventory-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Repositories ---
	productRepo := mongodb.NewProductRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	authRepo := mongodb.NewAuthRepository(db)

	// --- Services ---
	var cache service.SummaryCache
	if rdb != nil && cfg.SummaryCacheTTL > 0 {
		cache = redisdb.NewSummaryCache(rdb, cfg.SummaryCacheTTL)
	}
	productService := service.NewProductService(productRepo, cache, log)
	saleService := service.NewSaleService(productRepo, saleRepo, cfg.AtomicStock, cache, log)
	stockService := service.NewStockService(productRepo, saleRepo, cache, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	// --- Handlers ---
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	stockHandler := handler.NewStockHandler(stockService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes ---
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	products := e.Group("/v1/products", authMiddleware)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, middleware.CanModify())
	products.PUT("/:id", productHandler.Update, middleware.CanModify())
	products.DELETE("/:id", productHandler.Delete, middleware.CanDelete())

	sales := e.Group("/v1/sales", authMiddleware)
	sales.GET("", saleHandler.List)
	sales.POST("", saleHandler.Record)

	stock := e.Group("/v1/stock", authMiddleware)
	stock.GET("/summary", stockHandler.Summary)

	return e
}
