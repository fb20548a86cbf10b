package analysis

import (
	"testing"
	"time"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

func TestByCategory(t *testing.T) {
	t.Run("March scenario totals Groceries only", func(t *testing.T) {
		totals := ByCategory(SelectMonth(scenarioRecords(), 2024, time.March))
		if totals.Len() != 1 {
			t.Fatalf("expected 1 category, got %d", totals.Len())
		}
		got, ok := totals.Get(entity.KnownCategory("Groceries"))
		if !ok {
			t.Fatal("expected Groceries to be present")
		}
		assertDecimal(t, "Groceries", "150", got)
	})

	t.Run("absent category folds into Unspecified", func(t *testing.T) {
		totals := ByCategory([]entity.ExpenseRecord{
			rec("5", "", "2024-03-01"),
			rec("6", "   ", "2024-03-02"),
		})
		got, ok := totals.Get(entity.Unspecified)
		if !ok {
			t.Fatal("expected Unspecified to be present")
		}
		assertDecimal(t, "Unspecified", "11", got)
	})

	t.Run("a category literally named Uncategorized stays distinct", func(t *testing.T) {
		totals := ByCategory([]entity.ExpenseRecord{
			rec("5", "", "2024-03-01"),
			rec("7", "Uncategorized", "2024-03-02"),
		})
		if totals.Len() != 2 {
			t.Fatalf("expected 2 categories, got %d", totals.Len())
		}
		named, _ := totals.Get(entity.KnownCategory("Uncategorized"))
		assertDecimal(t, "named", "7", named)
	})

	t.Run("keeps first-encountered order", func(t *testing.T) {
		totals := ByCategory([]entity.ExpenseRecord{
			rec("1", "B", ""),
			rec("1", "A", ""),
			rec("1", "B", ""),
			rec("1", "C", ""),
		})
		var labels []string
		for _, c := range totals.Categories() {
			labels = append(labels, c.Label())
		}
		if len(labels) != 3 || labels[0] != "B" || labels[1] != "A" || labels[2] != "C" {
			t.Errorf("expected [B A C], got %v", labels)
		}
	})
}

func TestTopN(t *testing.T) {
	totals := ByCategory([]entity.ExpenseRecord{
		rec("10", "Rent", ""),
		rec("30", "Food", ""),
		rec("30", "Travel", ""),
		rec("5", "Books", ""),
		rec("20", "Rent", ""),
	})

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "zero", n: 0, want: []string{}},
		{name: "negative", n: -2, want: []string{}},
		{name: "ties keep first occurrence", n: 3, want: []string{"Rent", "Food", "Travel"}},
		{name: "caps at distinct count", n: 10, want: []string{"Rent", "Food", "Travel", "Books"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopN(totals, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d entries, got %d", len(tt.want), len(got))
			}
			for i, label := range tt.want {
				if got[i].Category.Label() != label {
					t.Errorf("position %d: expected %s, got %s", i, label, got[i].Category.Label())
				}
			}
			for i := 1; i < len(got); i++ {
				if got[i].Amount.GreaterThan(got[i-1].Amount) {
					t.Errorf("not descending at %d", i)
				}
			}
		})
	}

	t.Run("does not mutate the input", func(t *testing.T) {
		before := totals.Categories()
		top := TopN(totals, 2)
		top[0].Amount = dec("999")
		after := totals.Categories()
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("order changed at %d", i)
			}
		}
		rent, _ := totals.Get(entity.KnownCategory("Rent"))
		assertDecimal(t, "Rent", "30", rent)
	})

	t.Run("subset sum never exceeds total", func(t *testing.T) {
		total := totals.Sum()
		for n := 0; n <= 5; n++ {
			sub := SumAmounts(nil)
			for _, e := range TopN(totals, n) {
				sub = sub.Add(e.Amount)
			}
			if sub.GreaterThan(total) {
				t.Errorf("n=%d: subset %s exceeds total %s", n, sub, total)
			}
			if n >= totals.Len() && !sub.Equal(total) {
				t.Errorf("n=%d: expected subset to equal total", n)
			}
		}
	})

	t.Run("nil totals", func(t *testing.T) {
		if got := TopN(nil, 3); len(got) != 0 {
			t.Errorf("expected empty, got %v", got)
		}
	})
}

func TestTopCategoriesShare(t *testing.T) {
	totals := ByCategory([]entity.ExpenseRecord{
		rec("50", "Rent", ""),
		rec("30", "Food", ""),
		rec("20", "Travel", ""),
		rec("100", "Other", ""),
	})

	shares := TopCategoriesShare(totals, 3)
	if len(shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(shares))
	}
	// Subtotal of the top three is 180.
	assertDecimal(t, "Other", "55.6", shares[0].Percent)
	assertDecimal(t, "Rent", "27.8", shares[1].Percent)
	assertDecimal(t, "Food", "16.7", shares[2].Percent)
}

func TestShareOf_ZeroTotal(t *testing.T) {
	shares := ShareOf([]entity.CategoryAmount{{Category: entity.KnownCategory("A"), Amount: dec("0")}}, dec("0"))
	assertDecimal(t, "percent", "0", shares[0].Percent)
}
