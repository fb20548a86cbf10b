// Package main is the entry point for the Finance Tracker web app server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/webapp/config"
	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/infra/db"
	"github.com/finance-tracker/webapp/internal/infra/dependency"
	"github.com/finance-tracker/webapp/internal/integration/persistence"
	"github.com/finance-tracker/webapp/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Finance Tracker web app",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"backend", cfg.Backend.BaseURL,
		"goal_store", cfg.Storage.Driver,
	)

	store, closer, err := openGoalStore(cfg)
	if err != nil {
		slog.Error("Failed to open goal store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close goal store", "error", err)
		}
	}()

	if cfg.Email.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emailed reports are disabled")
	}

	injector, err := dependency.NewInjector(cfg, dependency.Externals{Store: store})
	if err != nil {
		slog.Error("Failed to wire application", "error", err)
		os.Exit(1)
	}
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exited properly")
}

// openGoalStore connects the key-value store selected by GOAL_STORE_DRIVER.
func openGoalStore(cfg *config.Config) (adapter.KeyValueStore, io.Closer, error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client, err := db.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Goal store connected", "driver", "redis")
		return persistence.NewRedisStore(client, cfg.Redis.KeyPrefix), client, nil
	case config.StorageSQLite, config.StoragePostgres:
		database, err := db.NewConnection(&cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(&model.KeyValueModel{}); err != nil {
			_ = database.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Info("Goal store connected", "driver", cfg.Storage.Driver)
		return persistence.NewGormStore(database.DB()), database, nil
	default:
		return nil, nil, fmt.Errorf("unknown goal store driver %q", cfg.Storage.Driver)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
