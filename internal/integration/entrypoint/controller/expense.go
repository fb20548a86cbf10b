package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/application/usecase/expense"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	resetUseCase  *expense.ResetMonthUseCase
	exportUseCase *expense.ExportCSVUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	resetUseCase *expense.ResetMonthUseCase,
	exportUseCase *expense.ExportCSVUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		resetUseCase:  resetUseCase,
		exportUseCase: exportUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	month, err := optionalMonth(ctx.Query("month"))
	if err != nil {
		handleError(ctx, invalidExpenseMonth())
		return
	}

	input := expense.ListExpensesInput{
		Filter: entity.ExpenseFilter{
			Category: ctx.Query("category"),
			Tag:      ctx.Query("tag"),
		},
		Month: month,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	input, ok := bindExpense(ctx)
	if !ok {
		return
	}

	if err := c.createUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Expense created successfully"})
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	input, ok := bindExpense(ctx)
	if !ok {
		return
	}

	err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ID:     ctx.Param("id"),
		Fields: input,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense updated successfully"})
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ResetMonth handles POST /expenses/reset requests.
func (c *ExpenseController) ResetMonth(ctx *gin.Context) {
	month, err := entity.ParseMonthKey(ctx.Query("month"))
	if err != nil {
		handleError(ctx, invalidExpenseMonth())
		return
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), expense.ResetMonthInput{Month: month})
	if err != nil && output != nil {
		status, code, message := classify(err)
		response := dto.ToResetMonthResponse(output)
		response.Error = message
		response.Code = code
		ctx.JSON(status, response)
		return
	}
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResetMonthResponse(output))
}

// ExportCSV handles GET /expenses/export/csv requests.
func (c *ExpenseController) ExportCSV(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "text/csv", output.Data)
}

// bindExpense parses the request body into an ExpenseInput. It writes the error response itself.
func bindExpense(ctx *gin.Context) (entity.ExpenseInput, bool) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return entity.ExpenseInput{}, false
	}

	input := entity.ExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			handleError(ctx, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"invalid date, expected YYYY-MM-DD",
				domainerror.ErrInvalidExpenseDate,
			))
			return entity.ExpenseInput{}, false
		}
		input.Date = &date
	}
	return input, true
}

func invalidExpenseMonth() error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeInvalidExpenseMonth,
		"invalid month, expected YYYY-MM",
		domainerror.ErrInvalidExpenseMonth,
	)
}
