package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// WindowSize is the number of months in the rolling history window.
const WindowSize = 6

// BuildWindow buckets the records into the anchor month and the five months
// before it, oldest first. Records outside the window or without a date are ignored.
func BuildWindow(records []entity.ExpenseRecord, anchor time.Time) []entity.MonthBucket {
	return BuildWindowAt(records, entity.MonthOf(anchor))
}

// BuildWindowAt is BuildWindow anchored on a MonthKey.
func BuildWindowAt(records []entity.ExpenseRecord, anchor entity.MonthKey) []entity.MonthBucket {
	buckets := make([]entity.MonthBucket, WindowSize)
	index := make(map[entity.MonthKey]int, WindowSize)
	for i := 0; i < WindowSize; i++ {
		key := anchor.AddMonths(i - (WindowSize - 1))
		buckets[i] = entity.NewMonthBucket(key)
		index[key] = i
	}

	for _, r := range records {
		key, ok := r.Month()
		if !ok {
			continue
		}
		i, ok := index[key]
		if !ok {
			continue
		}
		buckets[i].TotalExpense = buckets[i].TotalExpense.Add(r.Amount)
		buckets[i].RecordCount++
		buckets[i].CategoryTotals.Add(r.Category, r.Amount)
	}
	return buckets
}

// MonthFlow is the per-bucket income and net flow view of the window.
type MonthFlow struct {
	Bucket          entity.MonthBucket
	EstimatedIncome decimal.Decimal
	NetFlow         decimal.Decimal
	// TopCategory is nil when the bucket has no records.
	TopCategory *entity.CategoryAmount
}

// HistorySummary holds the metrics derived from a window.
type HistorySummary struct {
	Months               []MonthFlow
	TotalExpense         decimal.Decimal
	TotalEstimatedIncome decimal.Decimal
	TotalSaved           decimal.Decimal
	AverageMonthlySpend  decimal.Decimal
	// HighestExpenseMonth is nil only for an empty window.
	HighestExpenseMonth *entity.MonthBucket
	IncomeIsSynthetic   bool
}

// Summarize derives the window metrics. The monthly average counts only
// buckets with non-zero expense in its denominator.
func Summarize(buckets []entity.MonthBucket, model IncomeModel) HistorySummary {
	if model == nil {
		model = NewMultiplierIncomeModel(DefaultIncomeMultiplier)
	}

	summary := HistorySummary{
		Months:               make([]MonthFlow, 0, len(buckets)),
		TotalExpense:         decimal.Zero,
		TotalEstimatedIncome: decimal.Zero,
		TotalSaved:           decimal.Zero,
		AverageMonthlySpend:  decimal.Zero,
		IncomeIsSynthetic:    model.Synthetic(),
	}

	nonZero := 0
	for i := range buckets {
		b := buckets[i]
		income := model.EstimateIncome(b.TotalExpense)
		summary.Months = append(summary.Months, MonthFlow{
			Bucket:          b,
			EstimatedIncome: income,
			NetFlow:         income.Sub(b.TotalExpense),
			TopCategory:     TopCategory(b.CategoryTotals),
		})

		summary.TotalExpense = summary.TotalExpense.Add(b.TotalExpense)
		if !b.TotalExpense.IsZero() {
			nonZero++
		}
		if summary.HighestExpenseMonth == nil || b.TotalExpense.GreaterThan(summary.HighestExpenseMonth.TotalExpense) {
			summary.HighestExpenseMonth = &buckets[i]
		}
	}

	if nonZero > 0 {
		summary.AverageMonthlySpend = summary.TotalExpense.Div(decimal.NewFromInt(int64(nonZero)))
	}
	summary.TotalEstimatedIncome = model.EstimateIncome(summary.TotalExpense)
	summary.TotalSaved = summary.TotalEstimatedIncome.Sub(summary.TotalExpense)
	return summary
}

// TopCategory returns the largest category, the first one on ties, or nil when empty.
func TopCategory(totals *entity.CategoryTotals) *entity.CategoryAmount {
	top := TopN(totals, 1)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}
