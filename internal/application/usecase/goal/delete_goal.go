package goal

import (
	"context"

	"github.com/finance-tracker/webapp/internal/application/adapter"
)

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, id string) error {
	if _, err := findGoal(ctx, uc.goalRepo, id); err != nil {
		return err
	}
	if err := uc.goalRepo.Delete(ctx, id); err != nil {
		return storeError("failed to delete goal", err)
	}
	return nil
}
