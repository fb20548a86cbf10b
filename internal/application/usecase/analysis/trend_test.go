package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

func TestAveragePerDay(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		total string
		month entity.MonthKey
		want  string
	}{
		{name: "current month divides by day of month", total: "100", month: entity.MonthKey{Year: 2024, Month: time.March}, want: "10"},
		{name: "past month divides by its length", total: "310", month: entity.MonthKey{Year: 2024, Month: time.January}, want: "10"},
		{name: "leap February", total: "29", month: entity.MonthKey{Year: 2024, Month: time.February}, want: "1"},
		{name: "common February", total: "28", month: entity.MonthKey{Year: 2023, Month: time.February}, want: "1"},
		{name: "same month of another year is not current", total: "31", month: entity.MonthKey{Year: 2023, Month: time.March}, want: "1"},
		{name: "zero total past month", total: "0", month: entity.MonthKey{Year: 2023, Month: time.November}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, "average", tt.want, AveragePerDay(dec(tt.total), tt.month, now))
		})
	}

	t.Run("first day of current month", func(t *testing.T) {
		first := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		assertDecimal(t, "average", "42", AveragePerDay(dec("42"), entity.MonthOf(first), first))
	})
}

func TestCompareTrend(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		prior     string
		direction Direction
		percent   string
	}{
		{name: "up", current: "15", prior: "10", direction: DirectionUp, percent: "50"},
		{name: "down is unsigned", current: "5", prior: "10", direction: DirectionDown, percent: "50"},
		{name: "below noise floor is flat", current: "10.49", prior: "10", direction: DirectionFlat, percent: "4.9"},
		{name: "exactly 0.5 is not flat", current: "10.5", prior: "10", direction: DirectionUp, percent: "5"},
		{name: "zero prior", current: "12", prior: "0", direction: DirectionUp, percent: "0"},
		{name: "rounds to one decimal", current: "4", prior: "3", direction: DirectionUp, percent: "33.3"},
		{name: "both zero", current: "0", prior: "0", direction: DirectionFlat, percent: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareTrend(dec(tt.current), dec(tt.prior))
			if got.Direction != tt.direction {
				t.Errorf("expected direction %s, got %s", tt.direction, got.Direction)
			}
			assertDecimal(t, "percent", tt.percent, got.Percent)
		})
	}
}

func TestCompareTrend_SameValueIsFlat(t *testing.T) {
	for _, v := range []string{"0", "0.01", "3.333", "100", "123456.78", "-4"} {
		t.Run(v, func(t *testing.T) {
			got := CompareTrend(dec(v), dec(v))
			if got.Direction != DirectionFlat {
				t.Errorf("expected flat, got %s", got.Direction)
			}
			if !got.Percent.Equal(decimal.Zero) {
				t.Errorf("expected percent 0, got %s", got.Percent)
			}
		})
	}
}
