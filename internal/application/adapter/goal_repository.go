package adapter

import (
	"context"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// KeyValueStore is the get/set contract of the local store that backs goals.
type KeyValueStore interface {
	// Get returns the value under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// List returns every goal in creation order.
	List(ctx context.Context) ([]*entity.Goal, error)

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id string) (*entity.Goal, error)

	// Save inserts the goal or replaces the stored goal with the same ID.
	Save(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal.
	Delete(ctx context.Context, id string) error
}
