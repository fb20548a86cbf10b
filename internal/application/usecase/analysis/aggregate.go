package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// SumAmounts returns the exact decimal sum of the record amounts.
func SumAmounts(records []entity.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// ByCategory totals the records per category in first-encountered order.
// Records without a category land in entity.Unspecified.
func ByCategory(records []entity.ExpenseRecord) *entity.CategoryTotals {
	totals := entity.NewCategoryTotals()
	for _, r := range records {
		totals.Add(r.Category, r.Amount)
	}
	return totals
}

// TopN returns the n largest categories, descending by amount.
// Ties keep first-encountered order. The input is never modified.
func TopN(totals *entity.CategoryTotals, n int) []entity.CategoryAmount {
	if n <= 0 || totals.Len() == 0 {
		return []entity.CategoryAmount{}
	}

	ranked := totals.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n:n]
}

// CategoryShare is a ranked category with its share of a reference total.
type CategoryShare struct {
	entity.CategoryAmount
	// Percent of the reference total, rounded to one decimal.
	Percent decimal.Decimal
}

// ShareOf expresses each entry as a percentage of total. A zero total yields zero shares.
func ShareOf(entries []entity.CategoryAmount, total decimal.Decimal) []CategoryShare {
	shares := make([]CategoryShare, 0, len(entries))
	for _, e := range entries {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = e.Amount.Div(total).Mul(hundred).Round(1)
		}
		shares = append(shares, CategoryShare{CategoryAmount: e, Percent: pct})
	}
	return shares
}

// TopCategoriesShare ranks the n largest categories and expresses each as a
// share of their combined subtotal.
func TopCategoriesShare(totals *entity.CategoryTotals, n int) []CategoryShare {
	top := TopN(totals, n)
	subtotal := decimal.Zero
	for _, e := range top {
		subtotal = subtotal.Add(e.Amount)
	}
	return ShareOf(top, subtotal)
}
