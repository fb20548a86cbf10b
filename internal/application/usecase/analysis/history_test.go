package analysis

import (
	"testing"
	"time"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

func keys(buckets []entity.MonthBucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.Key.String()
	}
	return out
}

func TestBuildWindow(t *testing.T) {
	t.Run("January anchor wraps into the previous year", func(t *testing.T) {
		got := keys(BuildWindow(nil, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
		want := []string{"2023-08", "2023-09", "2023-10", "2023-11", "2023-12", "2024-01"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("always six contiguous buckets ending at the anchor", func(t *testing.T) {
		anchors := []time.Time{
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC),
		}
		for _, anchor := range anchors {
			buckets := BuildWindow(scenarioRecords(), anchor)
			if len(buckets) != WindowSize {
				t.Fatalf("%s: expected %d buckets, got %d", anchor, WindowSize, len(buckets))
			}
			if buckets[WindowSize-1].Key != entity.MonthOf(anchor) {
				t.Errorf("%s: last bucket is %s", anchor, buckets[WindowSize-1].Key)
			}
			for i := 1; i < len(buckets); i++ {
				if buckets[i].Key != buckets[i-1].Key.AddMonths(1) {
					t.Errorf("%s: buckets %d and %d are not contiguous", anchor, i-1, i)
				}
			}
		}
	})

	t.Run("empty months still appear with zero totals", func(t *testing.T) {
		buckets := BuildWindow(nil, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		for _, b := range buckets {
			if !b.TotalExpense.IsZero() || b.RecordCount != 0 || b.CategoryTotals.Len() != 0 {
				t.Errorf("bucket %s is not empty", b.Key)
			}
		}
	})

	t.Run("records outside the span and undated records contribute nothing", func(t *testing.T) {
		records := append(scenarioRecords(),
			rec("1000", "Rent", "2023-09-30"),
			rec("2000", "Rent", "2024-04-01"),
			rec("3000", "Rent", ""),
		)
		buckets := BuildWindow(records, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))
		total := SumAmounts(nil)
		count := 0
		for _, b := range buckets {
			total = total.Add(b.TotalExpense)
			count += b.RecordCount
		}
		assertDecimal(t, "window total", "180", total)
		if count != 3 {
			t.Errorf("expected 3 records, got %d", count)
		}
		march := buckets[WindowSize-1]
		assertDecimal(t, "March", "150", march.TotalExpense)
		if march.Label() != "Mar" || march.Year() != 2024 {
			t.Errorf("unexpected label %s %d", march.Label(), march.Year())
		}
	})
}

func TestSummarize(t *testing.T) {
	records := []entity.ExpenseRecord{
		rec("100", "Food", "2024-01-05"),
		rec("300", "Rent", "2024-03-01"),
		rec("50", "Food", "2024-03-02"),
		rec("300", "Rent", "2024-05-01"),
		rec("100", "Food", "2024-06-01"),
		rec("100", "Travel", "2024-06-02"),
	}
	buckets := BuildWindow(records, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	summary := Summarize(buckets, NewMultiplierIncomeModel(1.3))

	t.Run("average excludes zero months", func(t *testing.T) {
		// 950 across four non-zero months.
		assertDecimal(t, "average", "237.5", summary.AverageMonthlySpend)
	})

	t.Run("highest month first wins ties", func(t *testing.T) {
		if summary.HighestExpenseMonth == nil {
			t.Fatal("expected a highest month")
		}
		if summary.HighestExpenseMonth.Key.String() != "2024-03" {
			t.Errorf("expected 2024-03, got %s", summary.HighestExpenseMonth.Key)
		}
	})

	t.Run("synthetic income and net flow", func(t *testing.T) {
		if !summary.IncomeIsSynthetic {
			t.Error("expected income to be flagged synthetic")
		}
		for _, m := range summary.Months {
			want := m.Bucket.TotalExpense.Mul(dec("0.3"))
			if !m.NetFlow.Equal(want) {
				t.Errorf("%s: expected net flow %s, got %s", m.Bucket.Key, want, m.NetFlow)
			}
		}
		assertDecimal(t, "total expense", "950", summary.TotalExpense)
		assertDecimal(t, "total income", "1235", summary.TotalEstimatedIncome)
		assertDecimal(t, "total saved", "285", summary.TotalSaved)
	})

	t.Run("top category per month", func(t *testing.T) {
		byKey := map[string]MonthFlow{}
		for _, m := range summary.Months {
			byKey[m.Bucket.Key.String()] = m
		}
		if byKey["2024-02"].TopCategory != nil {
			t.Error("expected no top category for an empty month")
		}
		if got := byKey["2024-03"].TopCategory.Category.Label(); got != "Rent" {
			t.Errorf("expected Rent, got %s", got)
		}
		// Food and Travel tie in June; Food was seen first.
		if got := byKey["2024-06"].TopCategory.Category.Label(); got != "Food" {
			t.Errorf("expected Food, got %s", got)
		}
	})
}

func TestSummarize_EmptyWindow(t *testing.T) {
	summary := Summarize(BuildWindow(nil, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)), nil)
	assertDecimal(t, "average", "0", summary.AverageMonthlySpend)
	if summary.HighestExpenseMonth == nil || summary.HighestExpenseMonth.Key.String() != "2024-01" {
		t.Errorf("expected the oldest month to win an all-zero window")
	}
	assertDecimal(t, "saved", "0", summary.TotalSaved)
}
