// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// ExpenseGateway defines the expense operations offered by the backend.
// The backend owns the records; callers re-fetch after every write.
type ExpenseGateway interface {
	// ListExpenses fetches every record, narrowed by the backend when filter is set.
	ListExpenses(ctx context.Context, filter entity.ExpenseFilter) ([]entity.ExpenseRecord, error)

	// CreateExpense submits a new record.
	CreateExpense(ctx context.Context, input entity.ExpenseInput) error

	// UpdateExpense submits staged edits for an existing record.
	UpdateExpense(ctx context.Context, id string, input entity.ExpenseInput) error

	// DeleteExpense removes a record.
	DeleteExpense(ctx context.Context, id string) error

	// ExportCSV downloads the backend's CSV export as opaque bytes.
	ExportCSV(ctx context.Context) ([]byte, error)
}

// BudgetGateway defines the budget operations offered by the backend.
type BudgetGateway interface {
	// GetBudgetAnalysis fetches the backend's analysis for a month.
	GetBudgetAnalysis(ctx context.Context, month entity.MonthKey) (*entity.BudgetAnalysis, error)

	// SetBudget upserts a budget keyed by (month, category).
	SetBudget(ctx context.Context, input entity.BudgetInput) error
}

// ChartImage is an opaque chart payload rendered by the backend.
type ChartImage struct {
	ContentType string
	Data        []byte
}

// ChartGateway fetches chart images from the backend.
type ChartGateway interface {
	CategoryChart(ctx context.Context, month entity.MonthKey) (*ChartImage, error)
	BudgetChart(ctx context.Context, month entity.MonthKey) (*ChartImage, error)
	MonthlyTrendChart(ctx context.Context) (*ChartImage, error)
}
