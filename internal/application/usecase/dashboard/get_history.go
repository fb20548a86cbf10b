package dashboard

import (
	"context"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// DefaultTopCategories is the number of categories ranked in the history view.
const DefaultTopCategories = 3

// GetHistoryInput represents the input for the history view.
type GetHistoryInput struct {
	// Anchor is the newest month of the window and defaults to the current month.
	Anchor *entity.MonthKey
}

// GetHistoryOutput is the 6-month rolling history.
type GetHistoryOutput struct {
	Anchor  entity.MonthKey
	Summary analysis.HistorySummary
	// TopCategories ranks categories over every fetched record, not only the window.
	TopCategories []analysis.CategoryShare
}

// GetHistoryUseCase builds the rolling window and its summary.
type GetHistoryUseCase struct {
	expenses    adapter.ExpenseGateway
	clock       adapter.Clock
	incomeModel analysis.IncomeModel
	topN        int
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(expenses adapter.ExpenseGateway, clock adapter.Clock, incomeModel analysis.IncomeModel, topN int) *GetHistoryUseCase {
	if topN <= 0 {
		topN = DefaultTopCategories
	}
	return &GetHistoryUseCase{
		expenses:    expenses,
		clock:       clock,
		incomeModel: incomeModel,
		topN:        topN,
	}
}

// Execute fetches the records and summarises the window ending at the anchor.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	anchor := resolveMonth(input.Anchor, uc.clock)
	if !anchor.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidAnchor,
			"anchor month must be between 01 and 12",
			domainerror.ErrInvalidAnchor,
		)
	}

	records, err := uc.expenses.ListExpenses(ctx, entity.ExpenseFilter{})
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardFetchFailed,
			"failed to load expenses",
			err,
		)
	}

	buckets := analysis.BuildWindowAt(records, anchor)

	return &GetHistoryOutput{
		Anchor:        anchor,
		Summary:       analysis.Summarize(buckets, uc.incomeModel),
		TopCategories: analysis.TopCategoriesShare(analysis.ByCategory(records), uc.topN),
	}, nil
}
