package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(entity.ExpenseDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(amount, category, date string) entity.ExpenseRecord {
	r := entity.ExpenseRecord{
		Amount:   dec(amount),
		Category: entity.KnownCategory(category),
	}
	if date != "" {
		r.Date = day(date)
	}
	return r
}

func assertDecimal(t *testing.T, name string, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s %s, got %s", name, want, got.String())
	}
}

// scenarioRecords is the three-record set used across the core tests.
func scenarioRecords() []entity.ExpenseRecord {
	return []entity.ExpenseRecord{
		rec("100", "Groceries", "2024-03-05"),
		rec("50", "Groceries", "2024-03-20"),
		rec("30", "Dining Out", "2024-02-10"),
	}
}
