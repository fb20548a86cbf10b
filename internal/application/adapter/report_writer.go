package adapter

import (
	"io"

	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
)

// ReportFormat is a downloadable report file type.
type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// HistoryReportWriter serialises a history summary into a report file.
type HistoryReportWriter interface {
	Format() ReportFormat
	ContentType() string
	Write(w io.Writer, summary analysis.HistorySummary, top []analysis.CategoryShare) error
}
