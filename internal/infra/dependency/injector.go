// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/config"
	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/application/usecase/budget"
	"github.com/finance-tracker/webapp/internal/application/usecase/dashboard"
	"github.com/finance-tracker/webapp/internal/application/usecase/expense"
	"github.com/finance-tracker/webapp/internal/application/usecase/goal"
	"github.com/finance-tracker/webapp/internal/application/usecase/report"
	"github.com/finance-tracker/webapp/internal/domain/valueobject"
	"github.com/finance-tracker/webapp/internal/infra/server/router"
	"github.com/finance-tracker/webapp/internal/integration/backend"
	"github.com/finance-tracker/webapp/internal/integration/email"
	"github.com/finance-tracker/webapp/internal/integration/email/templates"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/webapp/internal/integration/export"
	"github.com/finance-tracker/webapp/internal/integration/persistence"
)

// Externals are the collaborators created outside the injector.
// Nil fields fall back to the production implementations.
type Externals struct {
	Store       adapter.KeyValueStore
	EmailSender adapter.EmailSender
	Clock       adapter.Clock
	HTTPClient  *http.Client
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  adapter.KeyValueStore
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, ext Externals) (*Injector, error) {
	if ext.Store == nil {
		return nil, fmt.Errorf("goal store is required")
	}
	clock := ext.Clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	sender := ext.EmailSender
	if sender == nil {
		if cfg.Email.ResendAPIKey != "" {
			sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		} else {
			sender = email.DisabledSender{}
		}
	}

	// Create gateways and repositories
	backendCfg := backend.Config{
		BaseURL:      cfg.Backend.BaseURL,
		Timeout:      cfg.Backend.Timeout,
		MaxRetries:   cfg.Backend.MaxRetries,
		RetryBackoff: cfg.Backend.RetryBackoff,
	}
	var backendClient *backend.Client
	if ext.HTTPClient != nil {
		backendClient = backend.NewClientWithHTTP(backendCfg, ext.HTTPClient)
	} else {
		backendClient = backend.NewClient(backendCfg)
	}
	goalRepo := persistence.NewGoalRepository(ext.Store)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	incomeModel := analysis.NewMultiplierIncomeModel(cfg.Insights.IncomeMultiplier)
	tolerance := valueobject.Tolerance{
		Amount:     decimal.NewFromFloat(cfg.Insights.AmountTolerance),
		Percentage: decimal.NewFromFloat(cfg.Insights.PercentTolerance),
	}

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetMonthSummaryUseCase(backendClient, clock, cfg.Insights.BreakdownSize)
	historyUseCase := dashboard.NewGetHistoryUseCase(backendClient, clock, incomeModel, cfg.Insights.HistoryTopCategories)
	budgetAnalysisUseCase := dashboard.NewGetBudgetAnalysisUseCase(backendClient, backendClient, tolerance)
	chartUseCase := dashboard.NewGetChartUseCase(backendClient, clock)

	// Create expense and budget use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(backendClient)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(backendClient)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(backendClient)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(backendClient)
	resetMonthUseCase := expense.NewResetMonthUseCase(backendClient)
	exportCSVUseCase := expense.NewExportCSVUseCase(backendClient, clock)
	setBudgetUseCase := budget.NewSetBudgetUseCase(backendClient)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, clock)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, clock)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, clock)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	addContributionUseCase := goal.NewAddContributionUseCase(goalRepo, clock)
	completeGoalUseCase := goal.NewCompleteGoalUseCase(goalRepo, clock)

	// Create report use cases
	exportHistoryUseCase := report.NewExportHistoryUseCase(historyUseCase, export.NewCSVWriter(), export.NewXLSXWriter())
	emailHistoryUseCase := report.NewEmailHistoryUseCase(exportHistoryUseCase, sender, renderer, cfg.Email.ReportRecipient)

	// Create controllers
	healthController := controller.NewHealthController(ext.Store.Ping)
	dashboardController := controller.NewDashboardController(summaryUseCase, historyUseCase)
	budgetController := controller.NewBudgetController(budgetAnalysisUseCase, setBudgetUseCase)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		resetMonthUseCase,
		exportCSVUseCase,
	)
	chartController := controller.NewChartController(chartUseCase)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		addContributionUseCase,
		completeGoalUseCase,
	)
	reportController := controller.NewReportController(exportHistoryUseCase, emailHistoryUseCase)

	// Create middleware
	reportRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.ReportEmailAttempts, cfg.RateLimit.ReportEmailWindow)
	writeSerializer := middleware.NewWriteSerializer()

	r := router.NewRouter(
		healthController,
		dashboardController,
		budgetController,
		expenseController,
		chartController,
		goalController,
		reportController,
		reportRateLimiter,
		writeSerializer,
	)

	return &Injector{
		Config: cfg,
		Store:  ext.Store,
		Router: r,
	}, nil
}
