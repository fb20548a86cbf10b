package goal

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left unchanged.
type UpdateGoalInput struct {
	ID       string
	Name     *string
	Target   *decimal.Decimal
	Current  *decimal.Decimal
	Deadline *time.Time
	Icon     *string
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*GoalView, error) {
	goal, err := findGoal(ctx, uc.goalRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		goal.Name = strings.TrimSpace(*input.Name)
	}
	if input.Target != nil {
		if err := validateTarget(*input.Target); err != nil {
			return nil, err
		}
		goal.Target = *input.Target
	}
	if input.Current != nil {
		if err := validateCurrent(*input.Current); err != nil {
			return nil, err
		}
		goal.Current = *input.Current
	}
	if input.Deadline != nil {
		if err := validateDeadline(*input.Deadline); err != nil {
			return nil, err
		}
		goal.Deadline = *input.Deadline
	}
	if input.Icon != nil && *input.Icon != "" {
		goal.Icon = *input.Icon
	}

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, storeError("failed to update goal", err)
	}

	view := NewGoalView(goal, uc.clock.Now())
	return &view, nil
}
