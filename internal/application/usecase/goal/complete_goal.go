package goal

import (
	"context"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// CompleteGoalUseCase marks a goal as achieved.
type CompleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewCompleteGoalUseCase creates a new CompleteGoalUseCase instance.
func NewCompleteGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *CompleteGoalUseCase {
	return &CompleteGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute completes the goal and fills its balance up to the target.
func (uc *CompleteGoalUseCase) Execute(ctx context.Context, id string) (*GoalView, error) {
	goal, err := findGoal(ctx, uc.goalRepo, id)
	if err != nil {
		return nil, err
	}
	if goal.Completed {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalAlreadyCompleted,
			"goal already completed",
			domainerror.ErrGoalAlreadyCompleted,
		)
	}

	goal.Complete()
	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, storeError("failed to complete goal", err)
	}

	view := NewGoalView(goal, uc.clock.Now())
	return &view, nil
}
