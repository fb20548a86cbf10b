package dashboard

import (
	"context"
	"time"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeExpenses struct {
	records []entity.ExpenseRecord
	err     error
}

func (f *fakeExpenses) ListExpenses(ctx context.Context, _ entity.ExpenseFilter) ([]entity.ExpenseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.records, f.err
}

func (f *fakeExpenses) CreateExpense(context.Context, entity.ExpenseInput) error         { return nil }
func (f *fakeExpenses) UpdateExpense(context.Context, string, entity.ExpenseInput) error { return nil }
func (f *fakeExpenses) DeleteExpense(context.Context, string) error                      { return nil }
func (f *fakeExpenses) ExportCSV(context.Context) ([]byte, error)                        { return nil, nil }

type fakeBudgets struct {
	analysis *entity.BudgetAnalysis
	err      error
	asked    entity.MonthKey
}

func (f *fakeBudgets) GetBudgetAnalysis(_ context.Context, month entity.MonthKey) (*entity.BudgetAnalysis, error) {
	f.asked = month
	if f.err != nil {
		return nil, f.err
	}
	copied := *f.analysis
	return &copied, nil
}

func (f *fakeBudgets) SetBudget(context.Context, entity.BudgetInput) error { return nil }

type fakeCharts struct {
	image *adapter.ChartImage
	err   error
	month entity.MonthKey
	calls []ChartKind
}

func (f *fakeCharts) CategoryChart(_ context.Context, month entity.MonthKey) (*adapter.ChartImage, error) {
	f.month = month
	f.calls = append(f.calls, ChartCategory)
	return f.image, f.err
}

func (f *fakeCharts) BudgetChart(_ context.Context, month entity.MonthKey) (*adapter.ChartImage, error) {
	f.month = month
	f.calls = append(f.calls, ChartBudget)
	return f.image, f.err
}

func (f *fakeCharts) MonthlyTrendChart(context.Context) (*adapter.ChartImage, error) {
	f.calls = append(f.calls, ChartMonthlyTrend)
	return f.image, f.err
}
