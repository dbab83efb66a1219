// Command api runs the stock management REST API.
//
// @title        Stock API
// @version      1.0
// @description  Inventory management backend: JWT auth, categories, products.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/almacen/stock-api/internal/api"
	"github.com/almacen/stock-api/internal/core/service"
	"github.com/almacen/stock-api/internal/infrastructure/db/mongo"
	"github.com/almacen/stock-api/internal/infrastructure/db/redis"
	"github.com/almacen/stock-api/internal/infrastructure/queue"
	"github.com/almacen/stock-api/internal/pkg/config"
	"github.com/almacen/stock-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis (optional: empty addr disables the login limiter) ---
	var limiter service.LoginLimiter
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		limiter = redis.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, login throttling disabled")
	}

	// --- Audit trail ---
	auditRepo := mongo.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		DB:           db,
		Redis:        rdb,
		Limiter:      limiter,
		AuditTrail:   dispatcher,
		AuditService: auditService,
		JWTSecret:    cfg.JWT.Secret,
		TokenTTL:     cfg.JWT.ExpiresIn,
		Log:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("stock api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the unique indexes the API's duplicate handling
// relies on. Startup fails hard when they cannot be created.
func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongo.NewCategoryRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongo.NewProductRepository(db).EnsureIndexes(ctx)
}
