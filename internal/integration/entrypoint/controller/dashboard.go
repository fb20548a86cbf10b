package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/application/usecase/dashboard"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetMonthSummaryUseCase
	historyUseCase *dashboard.GetHistoryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetMonthSummaryUseCase,
	historyUseCase *dashboard.GetHistoryUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		historyUseCase: historyUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	month, err := optionalMonth(ctx.Query("month"))
	if err != nil {
		handleError(ctx, domainerror.NewDashboardError(domainerror.ErrCodeInvalidMonth, "invalid month, expected YYYY-MM", domainerror.ErrInvalidMonth))
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthSummaryInput{Month: month})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(output))
}

// History handles GET /dashboard/history requests.
func (c *DashboardController) History(ctx *gin.Context) {
	anchor, err := optionalMonth(ctx.Query("anchor"))
	if err != nil {
		handleError(ctx, domainerror.NewDashboardError(domainerror.ErrCodeInvalidAnchor, "invalid anchor, expected YYYY-MM", domainerror.ErrInvalidAnchor))
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), dashboard.GetHistoryInput{Anchor: anchor})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryResponse(output))
}
