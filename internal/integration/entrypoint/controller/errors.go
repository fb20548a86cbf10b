// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/dto"
)

// handleError maps a use case error to an HTTP response.
// Outer error types are matched first so the area code wins over a wrapped backend code.
func handleError(ctx *gin.Context, err error) {
	status, code, message := classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"code", code,
			"error", err,
		)
	}
	response := dto.ErrorResponse{Error: message, Code: code}
	if status != http.StatusInternalServerError {
		response.Details = detailOf(err)
	}
	ctx.JSON(status, response)
}

func classify(err error) (int, string, string) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		return reportStatus(reportErr), string(reportErr.Code), reportErr.Message
	}

	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		return dashboardStatus(dashboardErr), string(dashboardErr.Code), dashboardErr.Message
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		return expenseStatus(expenseErr), string(expenseErr.Code), expenseErr.Message
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		return budgetStatus(budgetErr), string(budgetErr.Code), budgetErr.Message
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		return goalStatus(goalErr.Code), string(goalErr.Code), goalErr.Message
	}

	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		return emailStatus(emailErr.Code), string(emailErr.Code), emailErr.Message
	}

	var backendErr *domainerror.BackendError
	if errors.As(err, &backendErr) {
		return backendStatus(backendErr.Code), string(backendErr.Code), "Expense backend request failed"
	}

	return http.StatusInternalServerError, "", "An internal error occurred"
}

// upstreamStatus resolves the status of a failure in a collaborator.
func upstreamStatus(err error) int {
	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		return emailStatus(emailErr.Code)
	}
	var backendErr *domainerror.BackendError
	if errors.As(err, &backendErr) {
		return backendStatus(backendErr.Code)
	}
	return http.StatusBadGateway
}

func backendStatus(code domainerror.BackendErrorCode) int {
	switch code {
	case domainerror.ErrCodeBackendNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBackendRejected:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func emailStatus(code domainerror.EmailErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailNotConfigured, domainerror.ErrCodeTemporaryEmailFailure:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeEmailRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInvalidTemplate, domainerror.ErrCodeTemplateRenderFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

func reportStatus(err *domainerror.ReportError) int {
	switch err.Code {
	case domainerror.ErrCodeUnsupportedReportFormat,
		domainerror.ErrCodeMissingReportRecipient,
		domainerror.ErrCodeInvalidReportAnchor:
		return http.StatusBadRequest
	case domainerror.ErrCodeReportRenderFailed:
		return http.StatusInternalServerError
	default:
		return upstreamStatus(err.Err)
	}
}

func dashboardStatus(err *domainerror.DashboardError) int {
	switch err.Code {
	case domainerror.ErrCodeInvalidMonth, domainerror.ErrCodeInvalidAnchor:
		return http.StatusBadRequest
	case domainerror.ErrCodeDashboardFetchFailed, domainerror.ErrCodeChartUnavailable:
		return upstreamStatus(err.Err)
	default:
		return http.StatusInternalServerError
	}
}

func expenseStatus(err *domainerror.ExpenseError) int {
	switch err.Code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseCategory,
		domainerror.ErrCodeMissingExpenseID,
		domainerror.ErrCodeInvalidExpenseMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeResetInterrupted:
		return http.StatusServiceUnavailable
	default:
		return upstreamStatus(err.Err)
	}
}

func budgetStatus(err *domainerror.BudgetError) int {
	switch err.Code {
	case domainerror.ErrCodeInvalidBudgetAmount, domainerror.ErrCodeInvalidBudgetMonth:
		return http.StatusBadRequest
	default:
		return upstreamStatus(err.Err)
	}
}

func goalStatus(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalAlreadyCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeMissingGoalName,
		domainerror.ErrCodeInvalidGoalTarget,
		domainerror.ErrCodeInvalidGoalCurrent,
		domainerror.ErrCodeInvalidGoalDeadline,
		domainerror.ErrCodeInvalidContribution:
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

// detailOf returns the backend's own message when the failure came from the backend.
func detailOf(err error) string {
	var backendErr *domainerror.BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Message
	}
	return ""
}

// badRequest answers a request that could not be bound.
func badRequest(ctx *gin.Context, message string, err error) {
	response := dto.ErrorResponse{Error: message}
	if err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, response)
}
