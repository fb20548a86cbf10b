package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/integration/persistence/model"
)

func newRedisStore(t *testing.T) (adapter.KeyValueStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "webapp:"), server
}

func newSQLiteStore(t *testing.T) adapter.KeyValueStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.KeyValueModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormStore(db)
}

func TestKeyValueStores(t *testing.T) {
	redisStore, _ := newRedisStore(t)
	stores := map[string]adapter.KeyValueStore{
		"redis":  redisStore,
		"sqlite": newSQLiteStore(t),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := store.Ping(ctx); err != nil {
				t.Fatalf("ping failed: %v", err)
			}

			_, found, err := store.Get(ctx, "missing")
			if err != nil || found {
				t.Fatalf("expected missing key, got found=%v err=%v", found, err)
			}

			if err := store.Set(ctx, "k", []byte("one")); err != nil {
				t.Fatalf("set failed: %v", err)
			}
			if err := store.Set(ctx, "k", []byte("two")); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}

			value, found, err := store.Get(ctx, "k")
			if err != nil || !found || string(value) != "two" {
				t.Fatalf("expected two, got %q found=%v err=%v", value, found, err)
			}
		})
	}
}

func TestRedisStorePrefix(t *testing.T) {
	store, server := newRedisStore(t)

	if err := store.Set(context.Background(), GoalsKey, []byte("[]")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !server.Exists("webapp:" + GoalsKey) {
		t.Errorf("expected key to be prefixed, keys: %v", server.Keys())
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, server := newRedisStore(t)
	server.Close()

	if err := store.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail after server close")
	}
}
