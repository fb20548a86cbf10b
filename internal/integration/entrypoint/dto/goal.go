package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/usecase/goal"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name     string          `json:"name" binding:"required"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline string          `json:"deadline" binding:"required"`
	Icon     string          `json:"icon"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name     *string          `json:"name,omitempty"`
	Target   *decimal.Decimal `json:"target,omitempty"`
	Current  *decimal.Decimal `json:"current,omitempty"`
	Deadline *string          `json:"deadline,omitempty"`
	Icon     *string          `json:"icon,omitempty"`
}

// ContributionRequest represents a deposit into (or withdrawal from) a goal.
type ContributionRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Target      float64   `json:"target"`
	Current     float64   `json:"current"`
	Deadline    string    `json:"deadline"`
	Icon        string    `json:"icon"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	Progress    int       `json:"progress"`
	DaysLeft    int       `json:"days_left"`
	Status      string    `json:"status"`
	StatusText  string    `json:"status_text"`
	CanComplete bool      `json:"can_complete"`
}

// GoalStatsResponse summarises the goal list.
type GoalStatsResponse struct {
	TotalTarget   float64 `json:"total_target"`
	AchievedCount int     `json:"achieved_count"`
	ActiveCount   int     `json:"active_count"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Active    []GoalResponse    `json:"active"`
	Completed []GoalResponse    `json:"completed"`
	Stats     GoalStatsResponse `json:"stats"`
}

// ToGoalResponse converts a goal view.
func ToGoalResponse(v goal.GoalView) GoalResponse {
	g := v.Goal
	return GoalResponse{
		ID:          g.ID,
		Name:        g.Name,
		Target:      g.Target.InexactFloat64(),
		Current:     g.Current.InexactFloat64(),
		Deadline:    g.Deadline.Format(entity.ExpenseDateLayout),
		Icon:        g.Icon,
		Completed:   g.Completed,
		CreatedAt:   g.CreatedAt,
		Progress:    v.Progress,
		DaysLeft:    v.DaysLeft,
		Status:      string(v.Status),
		StatusText:  v.StatusText,
		CanComplete: v.CanComplete,
	}
}

// ToGoalListResponse converts a list output.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	response := GoalListResponse{
		Active:    make([]GoalResponse, 0, len(output.Active)),
		Completed: make([]GoalResponse, 0, len(output.Completed)),
		Stats: GoalStatsResponse{
			TotalTarget:   output.Stats.TotalTarget.InexactFloat64(),
			AchievedCount: output.Stats.AchievedCount,
			ActiveCount:   output.Stats.ActiveCount,
		},
	}
	for _, v := range output.Active {
		response.Active = append(response.Active, ToGoalResponse(v))
	}
	for _, v := range output.Completed {
		response.Completed = append(response.Completed, ToGoalResponse(v))
	}
	return response
}
