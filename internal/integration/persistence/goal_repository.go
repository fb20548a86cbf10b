// Package persistence implements repository interfaces for the local goal store.
package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/integration/persistence/model"
)

// GoalsKey is the store key holding the goal list.
const GoalsKey = "financialGoals"

// goalRepository implements the adapter.GoalRepository interface.
// Every write rewrites the whole list under GoalsKey.
type goalRepository struct {
	store adapter.KeyValueStore
	mu    sync.Mutex
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(store adapter.KeyValueStore) adapter.GoalRepository {
	return &goalRepository{
		store: store,
	}
}

// List returns every goal in stored order.
func (r *goalRepository) List(ctx context.Context) ([]*entity.Goal, error) {
	models, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	goals := make([]*entity.Goal, len(models))
	for i := range models {
		goals[i] = models[i].ToEntity()
	}
	return goals, nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id string) (*entity.Goal, error) {
	models, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range models {
		if models[i].ID == id {
			return models[i].ToEntity(), nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// Save replaces the goal with the same ID or appends it.
func (r *goalRepository) Save(ctx context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	models, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range models {
		if models[i].ID == goal.ID {
			models[i] = model.GoalFromEntity(goal)
			replaced = true
			break
		}
	}
	if !replaced {
		models = append(models, model.GoalFromEntity(goal))
	}
	return r.persist(ctx, models)
}

// Delete removes a goal.
func (r *goalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	models, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := models[:0]
	for _, m := range models {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(models) {
		return domainerror.ErrGoalNotFound
	}
	return r.persist(ctx, kept)
}

func (r *goalRepository) load(ctx context.Context) ([]model.GoalModel, error) {
	data, found, err := r.store.Get(ctx, GoalsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}
	if !found {
		return []model.GoalModel{}, nil
	}
	models, err := model.DecodeGoals(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return models, nil
}

func (r *goalRepository) persist(ctx context.Context, models []model.GoalModel) error {
	data, err := model.EncodeGoals(models)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}
	if err := r.store.Set(ctx, GoalsKey, data); err != nil {
		return fmt.Errorf("failed to write goals: %w", err)
	}
	return nil
}
