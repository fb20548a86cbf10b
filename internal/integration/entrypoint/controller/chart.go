package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/application/usecase/dashboard"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// ChartController proxies the backend chart images.
type ChartController struct {
	chartUseCase *dashboard.GetChartUseCase
}

// NewChartController creates a new chart controller instance.
func NewChartController(chartUseCase *dashboard.GetChartUseCase) *ChartController {
	return &ChartController{
		chartUseCase: chartUseCase,
	}
}

// Category handles GET /charts/category requests.
func (c *ChartController) Category(ctx *gin.Context) {
	c.serve(ctx, dashboard.ChartCategory, ctx.Query("month"))
}

// Budget handles GET /charts/budget/:month requests.
func (c *ChartController) Budget(ctx *gin.Context) {
	c.serve(ctx, dashboard.ChartBudget, ctx.Param("month"))
}

// MonthlyTrend handles GET /charts/monthly-trend requests.
func (c *ChartController) MonthlyTrend(ctx *gin.Context) {
	c.serve(ctx, dashboard.ChartMonthlyTrend, "")
}

func (c *ChartController) serve(ctx *gin.Context, kind dashboard.ChartKind, rawMonth string) {
	month, err := optionalMonth(rawMonth)
	if err != nil {
		handleError(ctx, domainerror.NewDashboardError(domainerror.ErrCodeInvalidMonth, "invalid month, expected YYYY-MM", domainerror.ErrInvalidMonth))
		return
	}

	image, err := c.chartUseCase.Execute(ctx.Request.Context(), dashboard.GetChartInput{Kind: kind, Month: month})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, image.ContentType, image.Data)
}
