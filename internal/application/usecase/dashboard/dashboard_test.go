package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/domain/valueobject"
)

func record(id, amount, category, date string) entity.ExpenseRecord {
	d, err := time.Parse(entity.ExpenseDateLayout, date)
	if err != nil {
		panic(err)
	}
	return entity.ExpenseRecord{
		ID:       id,
		Amount:   decimal.RequireFromString(amount),
		Category: entity.KnownCategory(category),
		Date:     d,
	}
}

func records() []entity.ExpenseRecord {
	return []entity.ExpenseRecord{
		record("1", "100", "Groceries", "2024-03-05"),
		record("2", "50", "Groceries", "2024-03-20"),
		record("3", "30", "Dining Out", "2024-02-10"),
		record("4", "20", "Transport", "2024-03-08"),
	}
}

func TestGetMonthSummaryUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)}
	uc := NewGetMonthSummaryUseCase(&fakeExpenses{records: records()}, clock, 5)

	t.Run("defaults to the current month", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetMonthSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Month.String() != "2024-03" {
			t.Errorf("expected 2024-03, got %s", out.Month)
		}
		if !out.Total.Equal(decimal.NewFromInt(170)) || out.RecordCount != 3 {
			t.Errorf("unexpected total %s / count %d", out.Total, out.RecordCount)
		}
		if out.ElapsedDays != 10 || !out.AveragePerDay.Equal(decimal.NewFromInt(17)) {
			t.Errorf("unexpected average %s over %d days", out.AveragePerDay, out.ElapsedDays)
		}
		// February 2024 averages 30/29.
		if out.Trend.Direction != analysis.DirectionUp {
			t.Errorf("expected up, got %s", out.Trend.Direction)
		}
		if len(out.Breakdown) != 2 || out.Breakdown[0].Category.Label() != "Groceries" {
			t.Fatalf("unexpected breakdown %+v", out.Breakdown)
		}
		if !out.Breakdown[0].Percent.Equal(decimal.RequireFromString("88.2")) {
			t.Errorf("expected 88.2%%, got %s", out.Breakdown[0].Percent)
		}
	})

	t.Run("empty month hides the breakdown", func(t *testing.T) {
		month := entity.MonthKey{Year: 2023, Month: time.July}
		out, err := uc.Execute(context.Background(), GetMonthSummaryInput{Month: &month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.AveragePerDay.IsZero() || len(out.Breakdown) != 0 {
			t.Errorf("expected zero average and no breakdown, got %s / %d", out.AveragePerDay, len(out.Breakdown))
		}
		if out.ElapsedDays != 31 || out.Trend.Direction != analysis.DirectionFlat {
			t.Errorf("unexpected days %d / trend %s", out.ElapsedDays, out.Trend.Direction)
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		month := entity.MonthKey{Year: 2024, Month: 13}
		_, err := uc.Execute(context.Background(), GetMonthSummaryInput{Month: &month})
		var dashErr *domainerror.DashboardError
		if !errors.As(err, &dashErr) || dashErr.Code != domainerror.ErrCodeInvalidMonth {
			t.Errorf("expected invalid month error, got %v", err)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		failing := NewGetMonthSummaryUseCase(&fakeExpenses{err: domainerror.ErrBackendUnavailable}, clock, 5)
		_, err := failing.Execute(context.Background(), GetMonthSummaryInput{})
		if !errors.Is(err, domainerror.ErrBackendUnavailable) {
			t.Errorf("expected the backend error to be wrapped, got %v", err)
		}
	})
}

func TestGetHistoryUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)}
	uc := NewGetHistoryUseCase(&fakeExpenses{records: records()}, clock, analysis.NewMultiplierIncomeModel(1.3), 3)

	out, err := uc.Execute(context.Background(), GetHistoryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Summary.Months) != analysis.WindowSize {
		t.Fatalf("expected %d months, got %d", analysis.WindowSize, len(out.Summary.Months))
	}
	if first := out.Summary.Months[0].Bucket.Key.String(); first != "2023-10" {
		t.Errorf("expected window to start at 2023-10, got %s", first)
	}
	if !out.Summary.TotalExpense.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected 200, got %s", out.Summary.TotalExpense)
	}
	if len(out.TopCategories) != 3 || out.TopCategories[0].Category.Label() != "Groceries" {
		t.Errorf("unexpected top categories %+v", out.TopCategories)
	}
}

func TestGetBudgetAnalysisUseCase(t *testing.T) {
	month := entity.MonthKey{Year: 2024, Month: time.March}
	remote := &entity.BudgetAnalysis{
		TotalBudget:     decimal.NewFromInt(500),
		TotalSpent:      decimal.NewFromInt(170),
		TotalRemaining:  decimal.NewFromInt(330),
		TotalPercentage: decimal.NewFromInt(34),
		Status:          entity.BudgetStatusUnder,
		Categories: []entity.CategoryBudgetStatus{{
			Category:   entity.KnownCategory("Groceries"),
			Budget:     decimal.NewFromInt(200),
			Spent:      decimal.NewFromInt(150),
			Remaining:  decimal.NewFromInt(50),
			Percentage: decimal.NewFromInt(75),
			Status:     entity.BudgetStatusUnder,
		}},
	}

	t.Run("local analysis agrees with the backend", func(t *testing.T) {
		budgets := &fakeBudgets{analysis: remote}
		uc := NewGetBudgetAnalysisUseCase(&fakeExpenses{records: records()}, budgets, valueobject.DefaultTolerance())

		out, err := uc.Execute(context.Background(), GetBudgetAnalysisInput{Month: month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if budgets.asked != month {
			t.Errorf("expected the backend to be asked for %s, got %s", month, budgets.asked)
		}
		if len(out.Discrepancies) != 0 {
			t.Errorf("expected no discrepancies, got %+v", out.Discrepancies)
		}
		g, ok := out.Analysis.Category(entity.KnownCategory("groceries"))
		if !ok || !g.Percentage.Equal(decimal.NewFromInt(75)) || g.Status != entity.BudgetStatusUnder {
			t.Errorf("unexpected groceries status %+v", g)
		}
	})

	t.Run("either fetch failing fails the view", func(t *testing.T) {
		uc := NewGetBudgetAnalysisUseCase(&fakeExpenses{records: records()}, &fakeBudgets{err: domainerror.ErrBackendUnavailable}, valueobject.DefaultTolerance())
		_, err := uc.Execute(context.Background(), GetBudgetAnalysisInput{Month: month})
		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetAnalysisFailed {
			t.Errorf("expected budget analysis error, got %v", err)
		}
	})
}

func TestGetChartUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)}

	t.Run("routes by kind with the default month", func(t *testing.T) {
		charts := &fakeCharts{image: &adapter.ChartImage{ContentType: "image/png", Data: []byte{0x89}}}
		uc := NewGetChartUseCase(charts, clock)
		for _, kind := range []ChartKind{ChartCategory, ChartBudget, ChartMonthlyTrend} {
			if _, err := uc.Execute(context.Background(), GetChartInput{Kind: kind}); err != nil {
				t.Fatalf("%s: unexpected error: %v", kind, err)
			}
		}
		if len(charts.calls) != 3 || charts.month.String() != "2024-03" {
			t.Errorf("unexpected calls %v for month %s", charts.calls, charts.month)
		}
	})

	t.Run("empty image is unavailable", func(t *testing.T) {
		uc := NewGetChartUseCase(&fakeCharts{image: &adapter.ChartImage{}}, clock)
		_, err := uc.Execute(context.Background(), GetChartInput{Kind: ChartCategory})
		if !errors.Is(err, domainerror.ErrChartUnavailable) {
			t.Errorf("expected chart unavailable, got %v", err)
		}
	})
}
