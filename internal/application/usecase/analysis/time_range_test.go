package analysis

import (
	"testing"
	"time"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

func TestSelectMonth(t *testing.T) {
	records := scenarioRecords()

	t.Run("selects March records only", func(t *testing.T) {
		got := SelectMonth(records, 2024, time.March)
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
		assertDecimal(t, "sum", "150", SumAmounts(got))
	})

	t.Run("year must match as well as month", func(t *testing.T) {
		got := SelectMonth(records, 2023, time.March)
		if len(got) != 0 {
			t.Errorf("expected no records, got %d", len(got))
		}
	})

	t.Run("records without a date never match", func(t *testing.T) {
		withUndated := append(scenarioRecords(), rec("999", "Groceries", ""))
		got := SelectMonth(withUndated, 2024, time.March)
		assertDecimal(t, "sum", "150", SumAmounts(got))
	})

	t.Run("month outside 1..12 selects nothing", func(t *testing.T) {
		for _, m := range []time.Month{0, 13, -1} {
			if got := SelectMonth(records, 2024, m); len(got) != 0 {
				t.Errorf("month %d: expected no records, got %d", m, len(got))
			}
		}
	})

	t.Run("day of month and time of day are irrelevant", func(t *testing.T) {
		late := entity.ExpenseRecord{Amount: dec("7"), Date: time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)}
		got := SelectMonth([]entity.ExpenseRecord{late}, 2024, time.March)
		if len(got) != 1 {
			t.Errorf("expected the record to match, got %d", len(got))
		}
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		got := SelectMonth(nil, 2024, time.March)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty slice, got %v", got)
		}
	})
}

func TestSelectMonth_SumMatchesMonthlyAmounts(t *testing.T) {
	records := []entity.ExpenseRecord{
		rec("0.10", "A", "2024-01-01"),
		rec("0.20", "B", "2024-01-31"),
		rec("12.345", "A", "2024-02-01"),
		rec("1000", "C", "2023-01-15"),
		rec("3.3", "", "2024-01-15"),
	}

	want := map[entity.MonthKey]string{
		{Year: 2024, Month: time.January}:  "3.6",
		{Year: 2024, Month: time.February}: "12.345",
		{Year: 2023, Month: time.January}:  "1000",
		{Year: 2024, Month: time.March}:    "0",
	}
	for key, sum := range want {
		t.Run(key.String(), func(t *testing.T) {
			assertDecimal(t, "sum", sum, SumAmounts(SelectMonthKey(records, key)))
		})
	}
}
