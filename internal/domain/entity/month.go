package entity

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the wire layout of a month key (YYYY-MM).
const MonthKeyLayout = "2006-01"

// MonthKey identifies a calendar month. Month is 1-indexed (time.January == 1).
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t, read from t's own calendar fields.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses a YYYY-MM string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse(MonthKeyLayout, s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return MonthOf(t), nil
}

// Valid reports whether the month is within 1..12.
func (k MonthKey) Valid() bool {
	return k.Month >= time.January && k.Month <= time.December
}

// String returns the YYYY-MM representation.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Start returns midnight UTC of the first day of the month.
func (k MonthKey) Start() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the key n months away; negative n goes back in time.
// Year boundaries are wrapped by time.Date normalisation.
func (k MonthKey) AddMonths(n int) MonthKey {
	return MonthOf(time.Date(k.Year, k.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// Previous returns the preceding calendar month.
func (k MonthKey) Previous() MonthKey {
	return k.AddMonths(-1)
}

// DaysIn returns the number of days in the month, leap years included.
func (k MonthKey) DaysIn() int {
	return time.Date(k.Year, k.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShortLabel returns the abbreviated English month name, e.g. "Jan".
func (k MonthKey) ShortLabel() string {
	return k.Month.String()[:3]
}

// LongLabel returns e.g. "March 2024".
func (k MonthKey) LongLabel() string {
	return fmt.Sprintf("%s %d", k.Month.String(), k.Year)
}

// Contains reports whether t falls within the month.
func (k MonthKey) Contains(t time.Time) bool {
	return t.Year() == k.Year && t.Month() == k.Month
}
