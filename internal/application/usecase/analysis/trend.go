package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// Direction classifies a trend.
type Direction string

const (
	DirectionFlat Direction = "flat"
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

var (
	hundred = decimal.NewFromInt(100)
	// flatThreshold is an absolute currency amount, not a percentage.
	flatThreshold = decimal.RequireFromString("0.5")
)

// Trend is the change between two averages. Percent is unsigned; Direction carries the sign.
type Trend struct {
	Direction Direction
	Percent   decimal.Decimal
}

// AveragePerDay divides the month total by the elapsed days of month.
// For the month containing now that is now's day of month; any other month
// uses its full calendar length.
func AveragePerDay(total decimal.Decimal, month entity.MonthKey, now time.Time) decimal.Decimal {
	days := ElapsedDays(month, now)
	if days <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(days)))
}

// ElapsedDays returns the divisor used by AveragePerDay.
func ElapsedDays(month entity.MonthKey, now time.Time) int {
	if month.Contains(now) {
		return now.Day()
	}
	return month.DaysIn()
}

// CompareTrend classifies the move from prior to current.
// Differences below 0.5 are flat. Percent is 0 when prior is zero.
func CompareTrend(current, prior decimal.Decimal) Trend {
	diff := current.Sub(prior)

	percent := decimal.Zero
	if !prior.IsZero() {
		percent = diff.Div(prior).Mul(hundred).Round(1).Abs()
	}

	direction := DirectionFlat
	switch {
	case diff.Abs().LessThan(flatThreshold):
		direction = DirectionFlat
	case diff.IsPositive():
		direction = DirectionUp
	default:
		direction = DirectionDown
	}

	return Trend{Direction: direction, Percent: percent}
}
