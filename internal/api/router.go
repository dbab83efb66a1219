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

	"github.com/almacen/stock-api/internal/api/handler"
	"github.com/almacen/stock-api/internal/api/middleware"
	"github.com/almacen/stock-api/internal/core/domain"
	"github.com/almacen/stock-api/internal/core/ports"
	"github.com/almacen/stock-api/internal/core/service"
	mongodb "github.com/almacen/stock-api/internal/infrastructure/db/mongo"
)

// Deps carries everything the router needs that is constructed in main.
type Deps struct {
	DB           *mongo.Database
	Redis        *redis.Client // nil disables the login limiter readiness check
	Limiter      service.LoginLimiter
	AuditTrail   ports.AuditRecorder
	AuditService ports.AuditService
	JWTSecret    string
	TokenTTL     time.Duration
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("stock"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	categoryRepo := mongodb.NewCategoryRepository(deps.DB)
	productRepo := mongodb.NewProductRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Limiter, deps.JWTSecret, deps.TokenTTL, deps.Log)
	categoryService := service.NewCategoryService(categoryRepo, deps.AuditTrail, deps.Log)
	productService := service.NewProductService(productRepo, deps.AuditTrail, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	auditHandler := handler.NewAuditHandler(deps.AuditService)

	authn := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Category routes (reads public, writes admin) ---
	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.GetAll)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("", categoryHandler.Create, authn, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, authn, adminOnly)
	categories.DELETE("/:id", categoryHandler.Remove, authn, adminOnly)

	// --- Product routes ---
	products := e.Group("/api/products")
	products.GET("", productHandler.GetAll)
	products.GET("/:id", productHandler.GetByID)
	products.POST("", productHandler.Create, authn, adminOnly)
	products.PUT("/:id", productHandler.Update, authn, adminOnly)
	products.DELETE("/:id", productHandler.Remove, authn, adminOnly)

	// --- Audit trail (admin) ---
	e.GET("/api/audit", auditHandler.Recent, authn, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
