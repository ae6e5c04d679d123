package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/cache"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/core/services"
	"github.com/SscSPs/fund_ledger_app/internal/extraction"
	"github.com/SscSPs/fund_ledger_app/internal/handlers"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/SscSPs/fund_ledger_app/internal/platform/config"
	"github.com/SscSPs/fund_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fund_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// @title Fund Ledger API
// @version 1.0
// @description Commitments, capital calls, distributions, quarterly performance and the LP payment matrix of a master fund.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.StoreTimeout)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient, readCache := setupReadCache(cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	extractor := setupExtractor(cfg, logger)

	repos := pgsql.NewRepositoryProvider(dbPool, cfg.StoreTimeout, cfg.StoreReadRetries)
	serviceContainer := services.NewServiceContainer(cfg, repos, extractor, services.WithReadCache(readCache))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	lim, err := newRateLimiter(cfg, redisClient)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(lim))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register binding validators", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// setupReadCache picks the read cache backend. A Redis backend that cannot be
// reached falls back to the in-process store.
func setupReadCache(cfg *config.Config, logger *slog.Logger) (*redis.Client, *cache.ReadCache) {
	switch cfg.CacheBackend {
	case config.CacheBackendNone:
		logger.Info("Read cache disabled")
		return nil, nil
	case config.CacheBackendRedis:
		store := cache.NewRedisStore(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable, using in-memory read cache", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
			_ = store.Client.Close()
			return nil, cache.NewReadCache(cache.NewMemoryStore(), cfg.CacheTTL)
		}
		logger.Info("Read cache backed by Redis", slog.String("addr", cfg.RedisAddr))
		return store.Client, cache.NewReadCache(store, cfg.CacheTTL)
	default:
		logger.Info("Read cache in memory", slog.Duration("ttl", cfg.CacheTTL))
		return nil, cache.NewReadCache(cache.NewMemoryStore(), cfg.CacheTTL)
	}
}

// setupExtractor returns nil when no Gemini API key is configured, which
// leaves the extraction endpoints answering 503.
func setupExtractor(cfg *config.Config, logger *slog.Logger) portssvc.DocumentExtractor {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, document extraction disabled")
		return nil
	}
	ex, err := extraction.NewGeminiExtractor(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	if err != nil {
		logger.Error("Failed to create Gemini client, document extraction disabled", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("Document extraction enabled", slog.String("model", cfg.GeminiModel))
	return ex
}

// newRateLimiter shares limits across replicas when Redis is available.
func newRateLimiter(cfg *config.Config, redisClient *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	if redisClient != nil {
		store, err := sredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{Prefix: "fund_ledger_limiter"})
		if err != nil {
			return nil, err
		}
		return limiter.New(store, rate), nil
	}
	return limiter.New(memory.NewStore(), rate), nil
}
