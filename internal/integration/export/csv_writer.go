// Package export writes history reports as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
)

var historyHeader = []string{"Month", "Year", "Records", "Expenses", "Estimated Income", "Net Flow", "Top Category"}

// CSVWriter writes the history report as CSV.
type CSVWriter struct{}

var _ adapter.HistoryReportWriter = CSVWriter{}

// NewCSVWriter creates a new CSV report writer.
func NewCSVWriter() CSVWriter {
	return CSVWriter{}
}

// Format implements adapter.HistoryReportWriter.
func (CSVWriter) Format() adapter.ReportFormat {
	return adapter.ReportFormatCSV
}

// ContentType implements adapter.HistoryReportWriter.
func (CSVWriter) ContentType() string {
	return "text/csv"
}

// Write writes one row per month followed by the summary and top category sections.
func (CSVWriter) Write(w io.Writer, summary analysis.HistorySummary, top []analysis.CategoryShare) error {
	cw := csv.NewWriter(w)

	rows := [][]string{historyHeader}
	for _, m := range summary.Months {
		rows = append(rows, monthRow(m))
	}

	rows = append(rows, []string{})
	for _, line := range summaryLines(summary) {
		rows = append(rows, []string{line.label, line.value})
	}

	if len(top) > 0 {
		rows = append(rows, []string{}, []string{"Top Category", "Amount", "Share %"})
		for _, c := range top {
			rows = append(rows, []string{c.Category.Label(), c.Amount.StringFixed(2), c.Percent.StringFixed(1)})
		}
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv report: %w", err)
	}
	return nil
}

func monthRow(m analysis.MonthFlow) []string {
	topCategory := ""
	if m.TopCategory != nil {
		topCategory = m.TopCategory.Category.Label()
	}
	return []string{
		m.Bucket.Label(),
		fmt.Sprint(m.Bucket.Year()),
		fmt.Sprint(m.Bucket.RecordCount),
		m.Bucket.TotalExpense.StringFixed(2),
		m.EstimatedIncome.StringFixed(2),
		m.NetFlow.StringFixed(2),
		topCategory,
	}
}

type summaryLine struct {
	label string
	value string
}

func summaryLines(summary analysis.HistorySummary) []summaryLine {
	highest := ""
	if summary.HighestExpenseMonth != nil {
		highest = summary.HighestExpenseMonth.Key.LongLabel()
	}
	incomeLabel := "Total Income"
	if summary.IncomeIsSynthetic {
		incomeLabel = "Total Estimated Income"
	}
	return []summaryLine{
		{"Total Expenses", summary.TotalExpense.StringFixed(2)},
		{incomeLabel, summary.TotalEstimatedIncome.StringFixed(2)},
		{"Total Saved", summary.TotalSaved.StringFixed(2)},
		{"Average Monthly Spend", summary.AverageMonthlySpend.StringFixed(2)},
		{"Highest Expense Month", highest},
	}
}
