package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/integration/persistence/model"
)

// gormStore implements adapter.KeyValueStore on a SQL table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a key-value store on the key_values table.
func NewGormStore(db *gorm.DB) adapter.KeyValueStore {
	return &gormStore{
		db: db,
	}
}

// Get returns the value stored under key.
func (s *gormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var kv model.KeyValueModel
	result := s.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&kv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return kv.Value, true, nil
}

// Set upserts the value under key.
func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	kv := model.KeyValueModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv)
	return result.Error
}

// Ping checks the database connection.
func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
