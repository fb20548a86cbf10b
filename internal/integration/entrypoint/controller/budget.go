package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/application/usecase/budget"
	"github.com/finance-tracker/webapp/internal/application/usecase/dashboard"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	analysisUseCase *dashboard.GetBudgetAnalysisUseCase
	setUseCase      *budget.SetBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	analysisUseCase *dashboard.GetBudgetAnalysisUseCase,
	setUseCase *budget.SetBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		analysisUseCase: analysisUseCase,
		setUseCase:      setUseCase,
	}
}

// Analysis handles GET /budgets/analysis/:month requests.
func (c *BudgetController) Analysis(ctx *gin.Context) {
	month, err := entity.ParseMonthKey(ctx.Param("month"))
	if err != nil {
		handleError(ctx, domainerror.NewBudgetError(domainerror.ErrCodeInvalidBudgetMonth, "invalid month, expected YYYY-MM", domainerror.ErrInvalidBudgetMonth))
		return
	}

	output, err := c.analysisUseCase.Execute(ctx.Request.Context(), dashboard.GetBudgetAnalysisInput{Month: month})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAnalysisResponse(output.Analysis, output.Discrepancies))
}

// Set handles POST /budgets requests.
func (c *BudgetController) Set(ctx *gin.Context) {
	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	month, err := entity.ParseMonthKey(req.Month)
	if err != nil {
		handleError(ctx, domainerror.NewBudgetError(domainerror.ErrCodeInvalidBudgetMonth, "invalid month, expected YYYY-MM", domainerror.ErrInvalidBudgetMonth))
		return
	}

	input := entity.BudgetInput{Amount: req.Amount, Month: month}
	if req.Category != nil {
		input.Category = entity.KnownCategory(*req.Category)
	}

	if err := c.setUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Budget set successfully"})
}
