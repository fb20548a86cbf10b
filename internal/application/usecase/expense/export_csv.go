package expense

import (
	"context"
	"fmt"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// ExportCSVOutput is a ready-to-download CSV file.
type ExportCSVOutput struct {
	Filename string
	Data     []byte
}

// ExportCSVUseCase passes the backend CSV export through.
type ExportCSVUseCase struct {
	expenses adapter.ExpenseGateway
	clock    adapter.Clock
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(expenses adapter.ExpenseGateway, clock adapter.Clock) *ExportCSVUseCase {
	return &ExportCSVUseCase{expenses: expenses, clock: clock}
}

// Execute downloads the export.
func (uc *ExportCSVUseCase) Execute(ctx context.Context) (*ExportCSVOutput, error) {
	data, err := uc.expenses.ExportCSV(ctx)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExportFailed,
			"failed to export expenses",
			err,
		)
	}
	return &ExportCSVOutput{
		Filename: fmt.Sprintf("expenses_%s.csv", uc.clock.Now().Format("20060102")),
		Data:     data,
	}, nil
}
