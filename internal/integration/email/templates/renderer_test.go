package templates

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

type reportRow struct {
	Label       string
	Income      string
	Expense     string
	NetFlow     string
	TopCategory string
}

type reportData struct {
	Anchor          string
	Rows            []reportRow
	TotalExpense    string
	AverageMonthly  string
	HighestMonth    string
	TotalSaved      string
	IncomeSynthetic bool
	TopCategories   []string
}

func TestRenderer(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	t.Run("history report", func(t *testing.T) {
		data := reportData{
			Anchor: "March 2024",
			Rows: []reportRow{
				{Label: "Mar 2024", Income: "195.00", Expense: "150.00", NetFlow: "45.00", TopCategory: "Food & Drink"},
			},
			TotalExpense:    "150.00",
			AverageMonthly:  "25.00",
			HighestMonth:    "March 2024",
			TotalSaved:      "45.00",
			IncomeSynthetic: true,
			TopCategories:   []string{"Food & Drink (100.0%)"},
		}

		html, text, err := renderer.Render("history_report", data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(html, "Food &amp; Drink") {
			t.Errorf("expected escaped category in HTML body")
		}
		if !strings.Contains(html, "(est.)") {
			t.Errorf("expected synthetic income marker in HTML body")
		}
		if !strings.Contains(text, "Mar 2024: spent 150.00, income 195.00, net 45.00, top Food & Drink") {
			t.Errorf("unexpected text body:\n%s", text)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, err := renderer.Render("missing", nil)
		if !errors.Is(err, domainerror.ErrInvalidTemplate) {
			t.Errorf("expected invalid template error, got %v", err)
		}
	})
}
