package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL         string        `validate:"required"`
	Port                string        `validate:"required,numeric"`
	IsProduction        bool
	LogLevel            string        `validate:"oneof=debug info warn error"`
	JWTSecret           string        `validate:"required"`
	MigrationsPath      string        `validate:"required"`
	ChartOfAccountsFile string        // Optional YAML chart loaded at startup
	WriteLockTimeout    time.Duration `validate:"gt=0"`
	RateLimit           string        `validate:"required"` // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins  []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CHART_OF_ACCOUNTS_FILE", "")
	v.SetDefault("WRITE_LOCK_TIMEOUT", "5s")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override the defaults and the .env file.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		LogLevel:            strings.ToLower(v.GetString("LOG_LEVEL")),
		JWTSecret:           v.GetString("JWT_SECRET"),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		ChartOfAccountsFile: v.GetString("CHART_OF_ACCOUNTS_FILE"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	timeoutStr := v.GetString("WRITE_LOCK_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_LOCK_TIMEOUT %q: %w", timeoutStr, err)
	}
	cfg.WriteLockTimeout = timeout

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
