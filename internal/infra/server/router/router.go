// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	budgetController    *controller.BudgetController
	expenseController   *controller.ExpenseController
	chartController     *controller.ChartController
	goalController      *controller.GoalController
	reportController    *controller.ReportController
	reportRateLimiter   *middleware.RateLimiter
	writeSerializer     *middleware.WriteSerializer
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	budgetController *controller.BudgetController,
	expenseController *controller.ExpenseController,
	chartController *controller.ChartController,
	goalController *controller.GoalController,
	reportController *controller.ReportController,
	reportRateLimiter *middleware.RateLimiter,
	writeSerializer *middleware.WriteSerializer,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		budgetController:    budgetController,
		expenseController:   expenseController,
		chartController:     chartController,
		goalController:      goalController,
		reportController:    reportController,
		reportRateLimiter:   reportRateLimiter,
		writeSerializer:     writeSerializer,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	// Mutating routes below run one at a time.
	api := v1.Group("")
	api.Use(r.writeSerializer.Middleware())
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
			dashboard.GET("/history", r.dashboardController.History)
		}

		budgets := api.Group("/budgets")
		{
			budgets.GET("/analysis/:month", r.budgetController.Analysis)
			budgets.POST("", r.budgetController.Set)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
			expenses.POST("/reset", r.expenseController.ResetMonth)
			expenses.GET("/export/csv", r.expenseController.ExportCSV)
		}

		charts := api.Group("/charts")
		{
			charts.GET("/category", r.chartController.Category)
			charts.GET("/budget/:month", r.chartController.Budget)
			charts.GET("/monthly-trend", r.chartController.MonthlyTrend)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PUT("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/contributions", r.goalController.Contribute)
			goals.POST("/:id/complete", r.goalController.Complete)
		}
	}

	// Reports never write to the backend and are not serialized.
	reports := v1.Group("/reports")
	{
		reports.GET("/history", r.reportController.Download)
		reports.POST("/history/email", r.reportRateLimiter.Middleware(), r.reportController.Email)
	}
}
