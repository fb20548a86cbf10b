package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// DefaultBreakdownSize is the number of categories shown in the month breakdown.
const DefaultBreakdownSize = 5

// GetMonthSummaryInput represents the input for the month summary.
type GetMonthSummaryInput struct {
	// Month defaults to the current month.
	Month *entity.MonthKey
}

// GetMonthSummaryOutput is the single-month view of the dashboard.
type GetMonthSummaryOutput struct {
	Month         entity.MonthKey
	Total         decimal.Decimal
	RecordCount   int
	ElapsedDays   int
	AveragePerDay decimal.Decimal
	PriorAverage  decimal.Decimal
	Trend         analysis.Trend
	// Breakdown is empty when nothing was spent in the month.
	Breakdown []analysis.CategoryShare
}

// GetMonthSummaryUseCase derives the month total, daily average, trend and category breakdown.
type GetMonthSummaryUseCase struct {
	expenses      adapter.ExpenseGateway
	clock         adapter.Clock
	breakdownSize int
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(expenses adapter.ExpenseGateway, clock adapter.Clock, breakdownSize int) *GetMonthSummaryUseCase {
	if breakdownSize <= 0 {
		breakdownSize = DefaultBreakdownSize
	}
	return &GetMonthSummaryUseCase{
		expenses:      expenses,
		clock:         clock,
		breakdownSize: breakdownSize,
	}
}

// Execute fetches the records once and summarises the requested month against the one before.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*GetMonthSummaryOutput, error) {
	month := resolveMonth(input.Month, uc.clock)
	if !month.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 01 and 12",
			domainerror.ErrInvalidMonth,
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

	now := uc.clock.Now()
	current := analysis.SelectMonthKey(records, month)
	prior := month.Previous()

	total := analysis.SumAmounts(current)
	avg := analysis.AveragePerDay(total, month, now)
	priorAvg := analysis.AveragePerDay(analysis.SumAmounts(analysis.SelectMonthKey(records, prior)), prior, now)

	breakdown := []analysis.CategoryShare{}
	if !total.IsZero() {
		breakdown = analysis.ShareOf(analysis.TopN(analysis.ByCategory(current), uc.breakdownSize), total)
	}

	return &GetMonthSummaryOutput{
		Month:         month,
		Total:         total,
		RecordCount:   len(current),
		ElapsedDays:   analysis.ElapsedDays(month, now),
		AveragePerDay: avg,
		PriorAverage:  priorAvg,
		Trend:         analysis.CompareTrend(avg, priorAvg),
		Breakdown:     breakdown,
	}, nil
}
