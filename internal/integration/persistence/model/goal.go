package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// GoalModel is the JSON shape of a goal inside the stored goal list.
type GoalModel struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `json:"target"`
	Current   decimal.Decimal `json:"current"`
	Deadline  string          `json:"deadline"`
	Icon      string          `json:"icon"`
	Completed bool            `json:"completed"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToEntity converts a GoalModel to a domain Goal entity.
// An unreadable deadline becomes the zero time.
func (m *GoalModel) ToEntity() *entity.Goal {
	deadline, err := time.Parse(entity.ExpenseDateLayout, m.Deadline)
	if err != nil {
		deadline = time.Time{}
	}
	icon := m.Icon
	if icon == "" {
		icon = entity.DefaultGoalIcon
	}
	return &entity.Goal{
		ID:        m.ID,
		Name:      m.Name,
		Target:    m.Target,
		Current:   m.Current,
		Deadline:  deadline,
		Icon:      icon,
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) GoalModel {
	return GoalModel{
		ID:        goal.ID,
		Name:      goal.Name,
		Target:    goal.Target,
		Current:   goal.Current,
		Deadline:  goal.Deadline.Format(entity.ExpenseDateLayout),
		Icon:      goal.Icon,
		Completed: goal.Completed,
		CreatedAt: goal.CreatedAt,
	}
}

// DecodeGoals parses a stored goal list. An empty value is an empty list.
func DecodeGoals(data []byte) ([]GoalModel, error) {
	if len(data) == 0 {
		return []GoalModel{}, nil
	}
	var goals []GoalModel
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []GoalModel{}
	}
	return goals, nil
}

// EncodeGoals serializes a goal list.
func EncodeGoals(goals []GoalModel) ([]byte, error) {
	if goals == nil {
		goals = []GoalModel{}
	}
	return json.Marshal(goals)
}
