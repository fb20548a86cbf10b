package backend

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// dateLayouts are tried in order when reading a record date.
var dateLayouts = []string{
	entity.ExpenseDateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// flexAmount reads a JSON number or numeric string. Anything else decodes to zero.
type flexAmount struct {
	decimal.Decimal
}

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	a.Decimal = decimal.Zero
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(raw)); err == nil {
		a.Decimal = d
	}
	return nil
}

// flexDate reads a calendar date in any of dateLayouts. Unparseable values decode to the zero time.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	d.Time = parseDate(s)
	return nil
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// flexTags reads a list of strings or a comma separated string.
type flexTags []string

func (t *flexTags) UnmarshalJSON(data []byte) error {
	*t = nil
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*t = append(*t, part)
		}
	}
	return nil
}

// flexID reads a string or numeric identifier.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = flexID(s)
		return nil
	}
	*id = flexID(strings.TrimSpace(string(data)))
	if *id == "null" {
		*id = ""
	}
	return nil
}

type expenseJSON struct {
	ID          flexID     `json:"id"`
	Amount      flexAmount `json:"amount"`
	Category    *string    `json:"category"`
	Date        flexDate   `json:"date"`
	Description *string    `json:"description"`
	Tags        flexTags   `json:"tags"`
	CreatedAt   *string    `json:"created_at"`
}

func (e expenseJSON) toEntity() entity.ExpenseRecord {
	record := entity.ExpenseRecord{
		ID:     string(e.ID),
		Amount: e.Amount.Decimal,
		Date:   e.Date.Time,
		Tags:   []string(e.Tags),
	}
	if e.Category != nil {
		record.Category = entity.KnownCategory(*e.Category)
	}
	if e.Description != nil {
		record.Description = *e.Description
	}
	if e.CreatedAt != nil {
		record.CreatedAt = *e.CreatedAt
	}
	return record
}

type expenseListJSON struct {
	Expenses []expenseJSON `json:"expenses"`
	Count    int           `json:"count"`
}

// decodeExpenses accepts {"expenses": [...]} or a bare array.
func decodeExpenses(body []byte) ([]entity.ExpenseRecord, error) {
	var items []expenseJSON
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
	} else {
		var list expenseListJSON
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		items = list.Expenses
	}

	records := make([]entity.ExpenseRecord, 0, len(items))
	for _, item := range items {
		records = append(records, item.toEntity())
	}
	return records, nil
}

// expensePayload is the body of a create or update.
type expensePayload struct {
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func newExpensePayload(input entity.ExpenseInput) expensePayload {
	payload := expensePayload{
		Category:    input.Category,
		Description: input.Description,
		Tags:        input.Tags,
	}
	if input.Amount != nil {
		f := input.Amount.InexactFloat64()
		payload.Amount = &f
	}
	if input.Date != nil {
		s := input.Date.Format(entity.ExpenseDateLayout)
		payload.Date = &s
	}
	return payload
}

type budgetPayload struct {
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
	Category *string `json:"category"`
}

func newBudgetPayload(input entity.BudgetInput) budgetPayload {
	payload := budgetPayload{
		Amount: input.Amount.InexactFloat64(),
		Month:  input.Month.String(),
	}
	if !input.Category.IsUnspecified() {
		raw := input.Category.Raw()
		payload.Category = &raw
	}
	return payload
}

type categoryAnalysisJSON struct {
	Budget     flexAmount `json:"budget"`
	Spent      flexAmount `json:"spent"`
	Remaining  flexAmount `json:"remaining"`
	Percentage flexAmount `json:"percentage"`
	Status     string     `json:"status"`
}

type budgetAnalysisJSON struct {
	Month           string                          `json:"month"`
	TotalBudget     flexAmount                      `json:"total_budget"`
	TotalSpent      flexAmount                      `json:"total_spent"`
	TotalRemaining  flexAmount                      `json:"total_remaining"`
	TotalPercentage flexAmount                      `json:"total_percentage"`
	Status          string                          `json:"status"`
	Categories      map[string]categoryAnalysisJSON `json:"categories"`
}

// toEntity converts the backend analysis. Categories are ordered by label.
func (a budgetAnalysisJSON) toEntity(month entity.MonthKey) *entity.BudgetAnalysis {
	analysis := &entity.BudgetAnalysis{
		Month:           month,
		TotalBudget:     a.TotalBudget.Decimal,
		TotalSpent:      a.TotalSpent.Decimal,
		TotalRemaining:  a.TotalRemaining.Decimal,
		TotalPercentage: a.TotalPercentage.Decimal,
		Status:          mapStatus(a.Status),
		Categories:      make([]entity.CategoryBudgetStatus, 0, len(a.Categories)),
	}
	if a.TotalBudget.IsZero() {
		analysis.Status = entity.BudgetStatusNotSet
	}

	names := make([]string, 0, len(a.Categories))
	for name := range a.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := a.Categories[name]
		analysis.Categories = append(analysis.Categories, entity.CategoryBudgetStatus{
			Category:   entity.KnownCategory(name),
			Budget:     c.Budget.Decimal,
			Spent:      c.Spent.Decimal,
			Remaining:  c.Remaining.Decimal,
			Percentage: c.Percentage.Decimal,
			Status:     mapStatus(c.Status),
		})
	}
	return analysis
}

// mapStatus translates the backend status vocabulary.
func mapStatus(s string) entity.BudgetStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "over", "exceeded", "over_budget":
		return entity.BudgetStatusOver
	case "under", "within_limit", "under_budget", "ok":
		return entity.BudgetStatusUnder
	default:
		return entity.BudgetStatusNotSet
	}
}

type writeAck struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type csvEnvelope struct {
	Data *string `json:"data"`
}
