package goal

import (
	"context"
	"time"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// GoalView is a goal with its derived progress at the reference time.
type GoalView struct {
	Goal        *entity.Goal
	Progress    int
	DaysLeft    int
	Status      entity.GoalStatus
	StatusText  string
	CanComplete bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Active    []GoalView
	Completed []GoalView
	Stats     entity.GoalStats
}

// ListGoalsUseCase lists goals split into active and completed.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute lists the goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, storeError("failed to list goals", err)
	}

	now := uc.clock.Now()
	out := &ListGoalsOutput{
		Active:    []GoalView{},
		Completed: []GoalView{},
		Stats:     entity.SummarizeGoals(goals),
	}
	for _, g := range goals {
		view := NewGoalView(g, now)
		if g.Completed {
			out.Completed = append(out.Completed, view)
		} else {
			out.Active = append(out.Active, view)
		}
	}
	return out, nil
}

// NewGoalView derives the view of g at now.
func NewGoalView(g *entity.Goal, now time.Time) GoalView {
	return GoalView{
		Goal:        g,
		Progress:    g.Progress(),
		DaysLeft:    g.DaysLeft(now),
		Status:      g.Status(now),
		StatusText:  g.StatusText(now),
		CanComplete: g.CanComplete(),
	}
}
