package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/domain/valueobject"
)

// GetBudgetAnalysisInput represents the input for the budget view.
type GetBudgetAnalysisInput struct {
	Month entity.MonthKey
}

// GetBudgetAnalysisOutput pairs the client-side analysis with the backend's.
type GetBudgetAnalysisOutput struct {
	Analysis      entity.BudgetAnalysis
	Remote        entity.BudgetAnalysis
	Discrepancies []analysis.Discrepancy
}

// GetBudgetAnalysisUseCase recomputes the month's budget analysis from the
// raw records and cross-checks it against the backend.
type GetBudgetAnalysisUseCase struct {
	expenses  adapter.ExpenseGateway
	budgets   adapter.BudgetGateway
	tolerance valueobject.Tolerance
}

// NewGetBudgetAnalysisUseCase creates a new GetBudgetAnalysisUseCase instance.
func NewGetBudgetAnalysisUseCase(expenses adapter.ExpenseGateway, budgets adapter.BudgetGateway, tolerance valueobject.Tolerance) *GetBudgetAnalysisUseCase {
	return &GetBudgetAnalysisUseCase{
		expenses:  expenses,
		budgets:   budgets,
		tolerance: tolerance,
	}
}

// Execute fetches the records and the backend analysis concurrently.
func (uc *GetBudgetAnalysisUseCase) Execute(ctx context.Context, input GetBudgetAnalysisInput) (*GetBudgetAnalysisOutput, error) {
	if !input.Month.Valid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 01 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	var (
		records []entity.ExpenseRecord
		remote  *entity.BudgetAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.expenses.ListExpenses(gctx, entity.ExpenseFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		remote, err = uc.budgets.GetBudgetAnalysis(gctx, input.Month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAnalysisFailed,
			"failed to load budget analysis",
			err,
		)
	}

	remote.Month = input.Month
	local := analysis.AnalyzeMonth(analysis.BudgetsFromAnalysis(*remote), records, input.Month)
	discrepancies := analysis.Reconcile(local, *remote, uc.tolerance)
	for _, d := range discrepancies {
		slog.Warn("Budget analysis differs from backend",
			"month", input.Month.String(),
			"category", d.Category.Label(),
			"field", d.Field,
			"local", d.Local,
			"remote", d.Remote,
		)
	}

	return &GetBudgetAnalysisOutput{
		Analysis:      local,
		Remote:        *remote,
		Discrepancies: discrepancies,
	}, nil
}
