package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/application/usecase/dashboard"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubExpenses struct{ records []entity.ExpenseRecord }

func (s stubExpenses) ListExpenses(context.Context, entity.ExpenseFilter) ([]entity.ExpenseRecord, error) {
	return s.records, nil
}
func (stubExpenses) CreateExpense(context.Context, entity.ExpenseInput) error         { return nil }
func (stubExpenses) UpdateExpense(context.Context, string, entity.ExpenseInput) error { return nil }
func (stubExpenses) DeleteExpense(context.Context, string) error                      { return nil }
func (stubExpenses) ExportCSV(context.Context) ([]byte, error)                        { return nil, nil }

type lineWriter struct{}

func (lineWriter) Format() adapter.ReportFormat { return adapter.ReportFormatCSV }
func (lineWriter) ContentType() string          { return "text/csv" }
func (lineWriter) Write(w io.Writer, summary analysis.HistorySummary, _ []analysis.CategoryShare) error {
	for _, m := range summary.Months {
		if _, err := io.WriteString(w, m.Bucket.Key.String()+"="+m.Bucket.TotalExpense.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type captureSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (c *captureSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.sent = append(c.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_123"}, nil
}

type stubRenderer struct{ data any }

func (s *stubRenderer) Render(name string, data any) (string, string, error) {
	s.data = data
	return "<p>" + name + "</p>", name, nil
}

func newExport() *ExportHistoryUseCase {
	march := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	history := dashboard.NewGetHistoryUseCase(
		stubExpenses{records: []entity.ExpenseRecord{{ID: "1", Amount: decimal.NewFromInt(40), Category: entity.KnownCategory("Food"), Date: march}}},
		fixedClock{now: march},
		analysis.NewMultiplierIncomeModel(1.3),
		3,
	)
	return NewExportHistoryUseCase(history, lineWriter{})
}

func TestExportHistoryUseCase(t *testing.T) {
	uc := newExport()

	out, err := uc.Execute(context.Background(), ExportHistoryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Filename != "spending_history_2024-03.csv" || out.ContentType != "text/csv" {
		t.Errorf("unexpected file %s %s", out.Filename, out.ContentType)
	}
	lines := strings.Split(strings.TrimSpace(string(out.Data)), "\n")
	if len(lines) != analysis.WindowSize || lines[5] != "2024-03=40" {
		t.Errorf("unexpected report %q", out.Data)
	}

	_, err = uc.Execute(context.Background(), ExportHistoryInput{Format: "pdf"})
	if !errors.Is(err, domainerror.ErrUnsupportedReportFormat) {
		t.Errorf("expected unsupported format, got %v", err)
	}
}

func TestEmailHistoryUseCase(t *testing.T) {
	t.Run("sends the report to the default recipient", func(t *testing.T) {
		sender := &captureSender{}
		renderer := &stubRenderer{}
		uc := NewEmailHistoryUseCase(newExport(), sender, renderer, "me@example.com")

		out, err := uc.Execute(context.Background(), EmailHistoryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.MessageID != "re_123" || out.To != "me@example.com" {
			t.Errorf("unexpected output %+v", out)
		}
		if len(sender.sent) != 1 || len(sender.sent[0].Attachments) != 1 {
			t.Fatalf("expected one email with one attachment")
		}
		if sender.sent[0].Subject != "Spending history up to March 2024" {
			t.Errorf("unexpected subject %q", sender.sent[0].Subject)
		}
		data, ok := renderer.data.(HistoryReportData)
		if !ok || len(data.Rows) != analysis.WindowSize || data.Rows[5].TopCategory != "Food" || data.Rows[0].TopCategory != "N/A" {
			t.Errorf("unexpected template data %+v", renderer.data)
		}
		if !data.IncomeSynthetic || data.TotalSaved != "12.00" {
			t.Errorf("unexpected totals %+v", data)
		}
	})

	t.Run("requires a recipient", func(t *testing.T) {
		uc := NewEmailHistoryUseCase(newExport(), &captureSender{}, &stubRenderer{}, "")
		if _, err := uc.Execute(context.Background(), EmailHistoryInput{To: " "}); !errors.Is(err, domainerror.ErrMissingReportRecipient) {
			t.Errorf("expected missing recipient, got %v", err)
		}
	})

	t.Run("send failure", func(t *testing.T) {
		uc := NewEmailHistoryUseCase(newExport(), &captureSender{err: domainerror.ErrEmailSendFailed}, &stubRenderer{}, "me@example.com")
		_, err := uc.Execute(context.Background(), EmailHistoryInput{})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeReportSendFailed {
			t.Errorf("expected send failure, got %v", err)
		}
	})
}
