// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Storage drivers for the goal store.
const (
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Insights  InsightsConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	LogLevel     string
}

// BackendConfig holds the expense backend client configuration.
type BackendConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// StorageConfig holds the goal store configuration.
// DatabaseURL is a file path for sqlite and a DSN for postgres.
type StorageConfig struct {
	Driver          string
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL       string
	Password  string
	DB        int
	KeyPrefix string
}

// InsightsConfig tunes the dashboard and history computations.
type InsightsConfig struct {
	IncomeMultiplier     float64
	BreakdownSize        int
	HistoryTopCategories int
	AmountTolerance      float64
	PercentTolerance     float64
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey    string
	FromName        string
	FromEmail       string
	ReportRecipient string
}

// RateLimitConfig limits report emails per client.
type RateLimitConfig struct {
	ReportEmailAttempts int
	ReportEmailWindow   time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Environment:  getEnv("ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
		},
		Backend: BackendConfig{
			BaseURL:      getEnv("BACKEND_BASE_URL", "http://localhost:5000/api"),
			Timeout:      getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
			MaxRetries:   getEnvAsInt("BACKEND_MAX_RETRIES", 2),
			RetryBackoff: getEnvAsDuration("BACKEND_RETRY_BACKOFF", 500*time.Millisecond),
		},
		Storage: StorageConfig{
			Driver:          getEnv("GOAL_STORE_DRIVER", StorageSQLite),
			DatabaseURL:     getEnv("DATABASE_URL", "finance_webapp.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "finance-webapp:"),
		},
		Insights: InsightsConfig{
			IncomeMultiplier:     getEnvAsFloat("INCOME_MULTIPLIER", 1.3),
			BreakdownSize:        getEnvAsInt("DASHBOARD_BREAKDOWN_SIZE", 5),
			HistoryTopCategories: getEnvAsInt("HISTORY_TOP_CATEGORIES", 3),
			AmountTolerance:      getEnvAsFloat("RECONCILE_AMOUNT_TOLERANCE", 0.01),
			PercentTolerance:     getEnvAsFloat("RECONCILE_PERCENT_TOLERANCE", 0.01),
		},
		Email: EmailConfig{
			ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
			FromName:        getEnv("RESEND_FROM_NAME", "Finance Tracker"),
			FromEmail:       getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			ReportRecipient: getEnv("REPORT_RECIPIENT", ""),
		},
		RateLimit: RateLimitConfig{
			ReportEmailAttempts: getEnvAsInt("REPORT_EMAIL_MAX_ATTEMPTS", 5),
			ReportEmailWindow:   getEnvAsDuration("REPORT_EMAIL_WINDOW", time.Hour),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
