package goal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// AddContributionInput represents a contribution towards a goal.
type AddContributionInput struct {
	ID     string
	Amount decimal.Decimal
}

// AddContributionUseCase adds an amount to a goal's saved balance.
type AddContributionUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewAddContributionUseCase creates a new AddContributionUseCase instance.
func NewAddContributionUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *AddContributionUseCase {
	return &AddContributionUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute adds the contribution. Negative amounts are withdrawals.
func (uc *AddContributionUseCase) Execute(ctx context.Context, input AddContributionInput) (*GoalView, error) {
	if input.Amount.IsZero() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution must be a non-zero number",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, err := findGoal(ctx, uc.goalRepo, input.ID)
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

	goal.Contribute(input.Amount)
	if err := validateCurrent(goal.Current); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, storeError("failed to save contribution", err)
	}

	view := NewGoalView(goal, uc.clock.Now())
	return &view, nil
}
