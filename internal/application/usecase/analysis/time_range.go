// Package analysis holds the pure aggregation core behind the dashboard,
// history and budget views. Nothing here performs I/O or keeps state; every
// function takes its reference month or date explicitly.
package analysis

import (
	"time"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// SelectMonth returns the records dated within the given calendar month.
// Only year and month are compared. Records without a usable date never match,
// and a month outside January..December selects nothing.
func SelectMonth(records []entity.ExpenseRecord, year int, month time.Month) []entity.ExpenseRecord {
	key := entity.MonthKey{Year: year, Month: month}
	if !key.Valid() {
		return []entity.ExpenseRecord{}
	}

	selected := make([]entity.ExpenseRecord, 0, len(records))
	for _, r := range records {
		if r.HasDate() && key.Contains(r.Date) {
			selected = append(selected, r)
		}
	}
	return selected
}

// SelectMonthKey is SelectMonth for a MonthKey.
func SelectMonthKey(records []entity.ExpenseRecord, key entity.MonthKey) []entity.ExpenseRecord {
	return SelectMonth(records, key.Year, key.Month)
}
