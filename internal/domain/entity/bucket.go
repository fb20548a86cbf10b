package entity

import (
	"github.com/shopspring/decimal"
)

// CategoryAmount pairs a category with an amount.
type CategoryAmount struct {
	Category Category
	Amount   decimal.Decimal
}

// CategoryTotals is a category to amount map that remembers first-insertion order.
// The zero value is ready to use.
type CategoryTotals struct {
	order  []Category
	totals map[Category]decimal.Decimal
}

// NewCategoryTotals returns an empty CategoryTotals.
func NewCategoryTotals() *CategoryTotals {
	return &CategoryTotals{totals: make(map[Category]decimal.Decimal)}
}

// Add accumulates amount into category c.
func (t *CategoryTotals) Add(c Category, amount decimal.Decimal) {
	if t.totals == nil {
		t.totals = make(map[Category]decimal.Decimal)
	}
	current, ok := t.totals[c]
	if !ok {
		t.order = append(t.order, c)
		current = decimal.Zero
	}
	t.totals[c] = current.Add(amount)
}

// Get returns the total for c and whether c has been seen.
func (t *CategoryTotals) Get(c Category) (decimal.Decimal, bool) {
	if t == nil || t.totals == nil {
		return decimal.Zero, false
	}
	v, ok := t.totals[c]
	if !ok {
		return decimal.Zero, false
	}
	return v, true
}

// Lookup sums the totals of every key that matches c by loose label
// comparison: trimmed and case-folded. Spellings such as "Groceries" and
// "groceries " are one category here.
func (t *CategoryTotals) Lookup(c Category) (decimal.Decimal, bool) {
	sum := decimal.Zero
	if t == nil {
		return sum, false
	}
	found := false
	for _, k := range t.order {
		if k.Matches(c) {
			sum = sum.Add(t.totals[k])
			found = true
		}
	}
	return sum, found
}

// Len returns the number of distinct categories.
func (t *CategoryTotals) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Categories returns the categories in first-insertion order.
func (t *CategoryTotals) Categories() []Category {
	if t == nil {
		return nil
	}
	out := make([]Category, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns every category with its total in first-insertion order.
func (t *CategoryTotals) Entries() []CategoryAmount {
	if t == nil {
		return []CategoryAmount{}
	}
	out := make([]CategoryAmount, 0, len(t.order))
	for _, c := range t.order {
		out = append(out, CategoryAmount{Category: c, Amount: t.totals[c]})
	}
	return out
}

// Sum returns the total across all categories.
func (t *CategoryTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	if t == nil {
		return sum
	}
	for _, c := range t.order {
		sum = sum.Add(t.totals[c])
	}
	return sum
}

// MonthBucket aggregates the records of one calendar month.
type MonthBucket struct {
	Key            MonthKey
	TotalExpense   decimal.Decimal
	RecordCount    int
	CategoryTotals *CategoryTotals
}

// NewMonthBucket returns an empty bucket for key.
func NewMonthBucket(key MonthKey) MonthBucket {
	return MonthBucket{
		Key:            key,
		TotalExpense:   decimal.Zero,
		CategoryTotals: NewCategoryTotals(),
	}
}

// Label returns the short month name, e.g. "Jan".
func (b MonthBucket) Label() string {
	return b.Key.ShortLabel()
}

// Year returns the bucket's calendar year.
func (b MonthBucket) Year() int {
	return b.Key.Year
}

// IsEmpty reports whether no record landed in the bucket.
func (b MonthBucket) IsEmpty() bool {
	return b.RecordCount == 0
}
