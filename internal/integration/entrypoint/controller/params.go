package controller

import (
	"strings"
	"time"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// optionalMonth parses a YYYY-MM value. An empty value yields nil.
func optionalMonth(raw string) (*entity.MonthKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	key, err := entity.ParseMonthKey(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// parseDate parses a YYYY-MM-DD value.
func parseDate(raw string) (time.Time, error) {
	return time.Parse(entity.ExpenseDateLayout, strings.TrimSpace(raw))
}
