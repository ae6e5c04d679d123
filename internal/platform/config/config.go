package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string
	JWTIssuer    string

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"

	// Read cache
	CacheBackend  string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Store adapter
	StoreTimeout     time.Duration
	StoreReadRetries uint64

	// LP matrix
	LPCallCapEnforced bool
	FOFCurrency       string // Investor commitments are held in this single currency

	// Document extraction
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	viper.SetDefault("CACHE_TTL", "5s")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STORE_TIMEOUT", "5s")
	viper.SetDefault("STORE_READ_RETRIES", 3)
	viper.SetDefault("LP_CALL_CAP_ENFORCED", false)
	viper.SetDefault("FOF_CURRENCY", "USD")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_TIMEOUT", "60s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the default insecure key in production.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.CacheBackend = strings.ToLower(viper.GetString("CACHE_BACKEND"))
	switch cfg.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis, CacheBackendNone:
	default:
		log.Printf("Warning: Invalid value for CACHE_BACKEND ('%s'). Defaulting to %s.\n", cfg.CacheBackend, CacheBackendMemory)
		cfg.CacheBackend = CacheBackendMemory
	}
	cfg.CacheTTL = durationOr("CACHE_TTL", 5*time.Second)
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.StoreTimeout = durationOr("STORE_TIMEOUT", 5*time.Second)
	cfg.StoreReadRetries = uint64(max(viper.GetInt("STORE_READ_RETRIES"), 0))

	cfg.LPCallCapEnforced = viper.GetBool("LP_CALL_CAP_ENFORCED")
	cfg.FOFCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("FOF_CURRENCY")))
	if !domain.IsSupportedCurrency(cfg.FOFCurrency) {
		log.Printf("Warning: Invalid value for FOF_CURRENCY ('%s'). Defaulting to %s.\n", cfg.FOFCurrency, domain.CurrencyUSD)
		cfg.FOFCurrency = domain.CurrencyUSD
	}

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")
	cfg.GeminiTimeout = durationOr("GEMINI_TIMEOUT", time.Minute)
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Document extraction is disabled.")
	}

	return cfg, nil
}

// durationOr parses key as a duration, falling back to def on a bad value.
func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
