package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/application/usecase/goal"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase       *goal.ListGoalsUseCase
	createUseCase     *goal.CreateGoalUseCase
	updateUseCase     *goal.UpdateGoalUseCase
	deleteUseCase     *goal.DeleteGoalUseCase
	contributeUseCase *goal.AddContributionUseCase
	completeUseCase   *goal.CompleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	contributeUseCase *goal.AddContributionUseCase,
	completeUseCase *goal.CompleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
		completeUseCase:   completeUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		handleError(ctx, invalidDeadline())
		return
	}

	view, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		Name:     req.Name,
		Target:   req.Target,
		Current:  req.Current,
		Deadline: deadline,
		Icon:     req.Icon,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(*view))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	input := goal.UpdateGoalInput{
		ID:      ctx.Param("id"),
		Name:    req.Name,
		Target:  req.Target,
		Current: req.Current,
		Icon:    req.Icon,
	}
	if req.Deadline != nil {
		deadline, err := parseDate(*req.Deadline)
		if err != nil {
			handleError(ctx, invalidDeadline())
			return
		}
		input.Deadline = &deadline
	}

	view, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(*view))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Contribute handles POST /goals/:id/contributions requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	var req dto.ContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleError(ctx, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution must be a non-zero number",
			domainerror.ErrInvalidContribution,
		))
		return
	}

	view, err := c.contributeUseCase.Execute(ctx.Request.Context(), goal.AddContributionInput{
		ID:     ctx.Param("id"),
		Amount: req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(*view))
}

// Complete handles POST /goals/:id/complete requests.
func (c *GoalController) Complete(ctx *gin.Context) {
	view, err := c.completeUseCase.Execute(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(*view))
}

func invalidDeadline() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInvalidGoalDeadline,
		"invalid deadline, expected YYYY-MM-DD",
		domainerror.ErrInvalidGoalDeadline,
	)
}
