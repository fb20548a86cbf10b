package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
)

const (
	historySheet    = "History"
	categoriesSheet = "Top Categories"
)

// XLSXWriter writes the history report as an Excel workbook with a history and a categories sheet.
type XLSXWriter struct{}

var _ adapter.HistoryReportWriter = XLSXWriter{}

// NewXLSXWriter creates a new XLSX report writer.
func NewXLSXWriter() XLSXWriter {
	return XLSXWriter{}
}

// Format implements adapter.HistoryReportWriter.
func (XLSXWriter) Format() adapter.ReportFormat {
	return adapter.ReportFormatXLSX
}

// ContentType implements adapter.HistoryReportWriter.
func (XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write implements adapter.HistoryReportWriter.
func (XLSXWriter) Write(w io.Writer, summary analysis.HistorySummary, top []analysis.CategoryShare) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	if err := writeRow(f, historySheet, 1, toCells(historyHeader)); err != nil {
		return err
	}
	if err := f.SetCellStyle(historySheet, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for _, m := range summary.Months {
		topCategory := ""
		if m.TopCategory != nil {
			topCategory = m.TopCategory.Category.Label()
		}
		cells := []any{
			m.Bucket.Label(),
			m.Bucket.Year(),
			m.Bucket.RecordCount,
			m.Bucket.TotalExpense.InexactFloat64(),
			m.EstimatedIncome.InexactFloat64(),
			m.NetFlow.InexactFloat64(),
			topCategory,
		}
		if err := writeRow(f, historySheet, row, cells); err != nil {
			return err
		}
		row++
	}
	if row > 2 {
		if err := f.SetCellStyle(historySheet, "D2", fmt.Sprintf("F%d", row-1), moneyStyle); err != nil {
			return fmt.Errorf("failed to style amounts: %w", err)
		}
	}

	row++
	for _, line := range summaryLines(summary) {
		if err := writeRow(f, historySheet, row, []any{line.label, line.value}); err != nil {
			return err
		}
		row++
	}
	if err := f.SetColWidth(historySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(historySheet, "B", "G", 16); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return fmt.Errorf("failed to create categories sheet: %w", err)
	}
	if err := writeRow(f, categoriesSheet, 1, []any{"Rank", "Category", "Amount", "Share %"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(categoriesSheet, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	for i, c := range top {
		cells := []any{i + 1, c.Category.Label(), c.Amount.InexactFloat64(), c.Percent.InexactFloat64()}
		if err := writeRow(f, categoriesSheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx report: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
