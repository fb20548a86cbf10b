// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// findGoal loads a goal and maps a miss to a GoalError.
func findGoal(ctx context.Context, repo adapter.GoalRepository, id string) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, storeError("failed to find goal", err)
	}
	return goal, nil
}

func storeError(message string, err error) error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalStoreUnavailable,
		message,
		fmt.Errorf("%w: %w", domainerror.ErrGoalStoreUnavailable, err),
	)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalName,
			"goal name is required",
			domainerror.ErrMissingGoalName,
		)
	}
	return nil
}

func validateTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTarget,
			"target amount must be greater than zero",
			domainerror.ErrInvalidGoalTarget,
		)
	}
	return nil
}

func validateCurrent(current decimal.Decimal) error {
	if current.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCurrent,
			"current amount must not be negative",
			domainerror.ErrInvalidGoalCurrent,
		)
	}
	return nil
}

func validateDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDeadline,
			"deadline is required",
			domainerror.ErrInvalidGoalDeadline,
		)
	}
	return nil
}
