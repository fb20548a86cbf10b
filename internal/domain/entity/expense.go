package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseDateLayout is the calendar date layout used by the backend.
const ExpenseDateLayout = "2006-01-02"

// ExpenseRecord is a single spending record as owned by the backend.
type ExpenseRecord struct {
	ID          string
	Amount      decimal.Decimal
	Category    Category
	Date        time.Time // zero when the backend date could not be parsed
	Description string
	Tags        []string
	CreatedAt   string
}

// HasDate reports whether the record carries a usable calendar date.
func (r ExpenseRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// Month returns the record's calendar month and whether the date is usable.
func (r ExpenseRecord) Month() (MonthKey, bool) {
	if !r.HasDate() {
		return MonthKey{}, false
	}
	return MonthOf(r.Date), true
}

// ExpenseInput carries the fields staged by the UI for a create or update.
// Nil pointers are left untouched on update.
type ExpenseInput struct {
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
	Description *string
	Tags        []string
}

// ExpenseFilter narrows the list fetched from the backend. Filter semantics are owned by the backend.
type ExpenseFilter struct {
	Category string
	Tag      string
}

// IsEmpty reports whether no filter is set.
func (f ExpenseFilter) IsEmpty() bool {
	return f.Category == "" && f.Tag == ""
}
