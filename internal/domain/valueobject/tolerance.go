// Package valueobject contains domain value objects for the spending insights web app.
package valueobject

import "github.com/shopspring/decimal"

// Tolerance holds the thresholds used when comparing locally computed budget
// figures with the figures reported by the backend.
type Tolerance struct {
	// Amounts are compared to the cent.
	Amount decimal.Decimal
	// Percentages are compared to a hundredth of a percent.
	Percentage decimal.Decimal
}

// DefaultTolerance returns the default reconciliation tolerance.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Amount:     decimal.RequireFromString("0.01"),
		Percentage: decimal.RequireFromString("0.01"),
	}
}

// AmountsAgree reports whether two amounts differ by less than the amount tolerance.
func (t Tolerance) AmountsAgree(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(t.Amount)
}

// PercentagesAgree reports whether two percentages differ by less than the percentage tolerance.
func (t Tolerance) PercentagesAgree(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(t.Percentage)
}
