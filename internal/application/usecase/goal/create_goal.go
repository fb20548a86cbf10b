package goal

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name     string
	Target   decimal.Decimal
	Current  decimal.Decimal
	Deadline time.Time
	Icon     string
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*GoalView, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateTarget(input.Target); err != nil {
		return nil, err
	}
	if err := validateCurrent(input.Current); err != nil {
		return nil, err
	}
	if err := validateDeadline(input.Deadline); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	goal := entity.NewGoal(strings.TrimSpace(input.Name), input.Target, input.Current, input.Deadline, input.Icon, now)

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, storeError("failed to create goal", err)
	}

	view := NewGoalView(goal, now)
	return &view, nil
}
