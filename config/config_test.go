package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		if cfg.Backend.BaseURL != "http://localhost:5000/api" {
			t.Errorf("unexpected backend URL %q", cfg.Backend.BaseURL)
		}
		if cfg.Storage.Driver != StorageSQLite {
			t.Errorf("expected sqlite goal store, got %q", cfg.Storage.Driver)
		}
		if cfg.Insights.IncomeMultiplier != 1.3 || cfg.Insights.BreakdownSize != 5 || cfg.Insights.HistoryTopCategories != 3 {
			t.Errorf("unexpected insight defaults %+v", cfg.Insights)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("BACKEND_BASE_URL", "http://backend:9000/api")
		t.Setenv("BACKEND_TIMEOUT", "3s")
		t.Setenv("GOAL_STORE_DRIVER", StorageRedis)
		t.Setenv("INCOME_MULTIPLIER", "1.5")
		t.Setenv("REPORT_EMAIL_MAX_ATTEMPTS", "not-a-number")

		cfg := Load()

		if cfg.Backend.BaseURL != "http://backend:9000/api" || cfg.Backend.Timeout != 3*time.Second {
			t.Errorf("unexpected backend config %+v", cfg.Backend)
		}
		if cfg.Storage.Driver != StorageRedis {
			t.Errorf("expected redis goal store, got %q", cfg.Storage.Driver)
		}
		if cfg.Insights.IncomeMultiplier != 1.5 {
			t.Errorf("expected multiplier 1.5, got %v", cfg.Insights.IncomeMultiplier)
		}
		if cfg.RateLimit.ReportEmailAttempts != 5 {
			t.Errorf("expected malformed value to fall back to default, got %d", cfg.RateLimit.ReportEmailAttempts)
		}
	})
}
