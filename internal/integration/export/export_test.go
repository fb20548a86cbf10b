package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

func fixture() (analysis.HistorySummary, []analysis.CategoryShare) {
	records := []entity.ExpenseRecord{
		{ID: "1", Amount: decimal.NewFromInt(100), Category: entity.KnownCategory("Food"), Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Amount: decimal.NewFromInt(50), Category: entity.KnownCategory("Rent"), Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}
	buckets := analysis.BuildWindowAt(records, entity.MonthKey{Year: 2024, Month: time.March})
	summary := analysis.Summarize(buckets, nil)
	top := analysis.TopCategoriesShare(analysis.ByCategory(records), 3)
	return summary, top
}

func TestCSVWriter(t *testing.T) {
	summary, top := fixture()

	var buf bytes.Buffer
	if err := NewCSVWriter().Write(&buf, summary, top); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}

	if rows[0][0] != "Month" || len(rows[0]) != len(historyHeader) {
		t.Fatalf("unexpected header %v", rows[0])
	}
	// Header plus six months.
	march := rows[6]
	if march[0] != "Mar" || march[1] != "2024" || march[3] != "100.00" || march[4] != "130.00" || march[6] != "Food" {
		t.Errorf("unexpected March row %v", march)
	}
	if rows[1][2] != "0" || rows[1][6] != "" {
		t.Errorf("expected empty October row, got %v", rows[1])
	}

	found := false
	for _, row := range rows {
		if len(row) == 2 && row[0] == "Total Estimated Income" && row[1] == "195.00" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected synthetic income summary line, got %v", rows)
	}

	last := rows[len(rows)-1]
	if last[0] != "Rent" || last[2] != "33.3" {
		t.Errorf("unexpected last top category row %v", last)
	}
}

func TestXLSXWriter(t *testing.T) {
	summary, top := fixture()

	var buf bytes.Buffer
	if err := NewXLSXWriter().Write(&buf, summary, top); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(historySheet, "A7"); got != "Mar" {
		t.Errorf("expected March in A7, got %q", got)
	}
	if got, _ := f.GetCellValue(historySheet, "G7"); got != "Food" {
		t.Errorf("expected Food in G7, got %q", got)
	}
	if got, _ := f.GetCellValue(categoriesSheet, "B2"); got != "Food" {
		t.Errorf("expected Food ranked first, got %q", got)
	}
	if got, _ := f.GetCellValue(categoriesSheet, "A3"); got != "2" {
		t.Errorf("expected rank 2 in A3, got %q", got)
	}
}

func TestWriterFormats(t *testing.T) {
	if NewCSVWriter().Format() != "csv" || NewXLSXWriter().Format() != "xlsx" {
		t.Error("unexpected writer formats")
	}
}
