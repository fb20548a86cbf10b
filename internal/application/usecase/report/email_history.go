package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// HistoryReportTemplate is the email template used for history reports.
const HistoryReportTemplate = "history_report"

// HistoryReportRow is one month of the emailed report.
type HistoryReportRow struct {
	Label       string
	Income      string
	Expense     string
	NetFlow     string
	TopCategory string
}

// HistoryReportData is the template data of the history report email.
type HistoryReportData struct {
	Anchor          string
	Rows            []HistoryReportRow
	TotalExpense    string
	AverageMonthly  string
	HighestMonth    string
	TotalSaved      string
	IncomeSynthetic bool
	TopCategories   []string
}

// EmailHistoryInput represents the input for emailing a history report.
type EmailHistoryInput struct {
	Anchor *entity.MonthKey
	// To defaults to the configured recipient.
	To     string
	Format adapter.ReportFormat
}

// EmailHistoryOutput reports the provider message ID.
type EmailHistoryOutput struct {
	MessageID string
	To        string
}

// EmailHistoryUseCase emails the history report as an attachment.
type EmailHistoryUseCase struct {
	export           *ExportHistoryUseCase
	sender           adapter.EmailSender
	renderer         adapter.EmailRenderer
	defaultRecipient string
}

// NewEmailHistoryUseCase creates a new EmailHistoryUseCase instance.
func NewEmailHistoryUseCase(export *ExportHistoryUseCase, sender adapter.EmailSender, renderer adapter.EmailRenderer, defaultRecipient string) *EmailHistoryUseCase {
	return &EmailHistoryUseCase{
		export:           export,
		sender:           sender,
		renderer:         renderer,
		defaultRecipient: defaultRecipient,
	}
}

// Execute renders the report and sends it.
func (uc *EmailHistoryUseCase) Execute(ctx context.Context, input EmailHistoryInput) (*EmailHistoryOutput, error) {
	to := strings.TrimSpace(input.To)
	if to == "" {
		to = uc.defaultRecipient
	}
	if to == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingReportRecipient,
			"report recipient is required",
			domainerror.ErrMissingReportRecipient,
		)
	}

	file, err := uc.export.Execute(ctx, ExportHistoryInput{Anchor: input.Anchor, Format: input.Format})
	if err != nil {
		return nil, err
	}

	html, text, err := uc.renderer.Render(HistoryReportTemplate, NewHistoryReportData(file.History.Anchor, file.History.Summary, file.History.TopCategories))
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportRenderFailed,
			"failed to render report email",
			err,
		)
	}

	result, err := uc.sender.Send(ctx, adapter.SendEmailInput{
		To:      to,
		Subject: "Spending history up to " + file.History.Anchor.LongLabel(),
		HTML:    html,
		Text:    text,
		Attachments: []adapter.Attachment{{
			Filename:    file.Filename,
			ContentType: file.ContentType,
			Content:     file.Data,
		}},
	})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportSendFailed,
			"failed to send report",
			err,
		)
	}

	slog.Info("History report sent", "anchor", file.History.Anchor.String(), "resend_id", result.ResendID)
	return &EmailHistoryOutput{MessageID: result.ResendID, To: to}, nil
}

// NewHistoryReportData formats a history summary for the email template.
func NewHistoryReportData(anchor entity.MonthKey, summary analysis.HistorySummary, top []analysis.CategoryShare) HistoryReportData {
	data := HistoryReportData{
		Anchor:          anchor.LongLabel(),
		TotalExpense:    summary.TotalExpense.StringFixed(2),
		AverageMonthly:  summary.AverageMonthlySpend.StringFixed(2),
		TotalSaved:      summary.TotalSaved.StringFixed(2),
		IncomeSynthetic: summary.IncomeIsSynthetic,
	}
	if summary.HighestExpenseMonth != nil {
		data.HighestMonth = summary.HighestExpenseMonth.Key.LongLabel()
	}
	for _, m := range summary.Months {
		topCategory := "N/A"
		if m.TopCategory != nil {
			topCategory = m.TopCategory.Category.Label()
		}
		data.Rows = append(data.Rows, HistoryReportRow{
			Label:       fmt.Sprintf("%s %d", m.Bucket.Label(), m.Bucket.Year()),
			Income:      m.EstimatedIncome.StringFixed(2),
			Expense:     m.Bucket.TotalExpense.StringFixed(2),
			NetFlow:     m.NetFlow.StringFixed(2),
			TopCategory: topCategory,
		})
	}
	for _, c := range top {
		data.TopCategories = append(data.TopCategories, c.Category.Label()+" ("+c.Percent.StringFixed(1)+"%)")
	}
	return data
}
