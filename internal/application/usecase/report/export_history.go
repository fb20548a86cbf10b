// Package report contains the history report use cases.
package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/dashboard"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// ExportHistoryInput represents the input for a history report download.
type ExportHistoryInput struct {
	Anchor *entity.MonthKey
	Format adapter.ReportFormat
}

// ExportHistoryOutput is a ready-to-download report file.
type ExportHistoryOutput struct {
	Filename    string
	ContentType string
	Data        []byte
	History     *dashboard.GetHistoryOutput
}

// ExportHistoryUseCase renders the 6-month history into a report file.
type ExportHistoryUseCase struct {
	history *dashboard.GetHistoryUseCase
	writers map[adapter.ReportFormat]adapter.HistoryReportWriter
}

// NewExportHistoryUseCase creates a new ExportHistoryUseCase instance.
func NewExportHistoryUseCase(history *dashboard.GetHistoryUseCase, writers ...adapter.HistoryReportWriter) *ExportHistoryUseCase {
	byFormat := make(map[adapter.ReportFormat]adapter.HistoryReportWriter, len(writers))
	for _, w := range writers {
		byFormat[w.Format()] = w
	}
	return &ExportHistoryUseCase{
		history: history,
		writers: byFormat,
	}
}

// Execute builds the history and serialises it in the requested format.
func (uc *ExportHistoryUseCase) Execute(ctx context.Context, input ExportHistoryInput) (*ExportHistoryOutput, error) {
	format := input.Format
	if format == "" {
		format = adapter.ReportFormatCSV
	}
	writer, ok := uc.writers[format]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedReportFormat,
			fmt.Sprintf("unsupported report format %q", format),
			domainerror.ErrUnsupportedReportFormat,
		)
	}

	history, err := uc.history.Execute(ctx, dashboard.GetHistoryInput{Anchor: input.Anchor})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to build history",
			err,
		)
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf, history.Summary, history.TopCategories); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportRenderFailed,
			"failed to render report",
			err,
		)
	}

	return &ExportHistoryOutput{
		Filename:    fmt.Sprintf("spending_history_%s.%s", history.Anchor.String(), format),
		ContentType: writer.ContentType(),
		Data:        buf.Bytes(),
		History:     history,
	}, nil
}
