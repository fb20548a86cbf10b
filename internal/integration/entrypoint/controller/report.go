package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/report"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
	"github.com/finance-tracker/webapp/internal/integration/entrypoint/dto"
)

// ReportController handles history report endpoints.
type ReportController struct {
	exportUseCase *report.ExportHistoryUseCase
	emailUseCase  *report.EmailHistoryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	exportUseCase *report.ExportHistoryUseCase,
	emailUseCase *report.EmailHistoryUseCase,
) *ReportController {
	return &ReportController{
		exportUseCase: exportUseCase,
		emailUseCase:  emailUseCase,
	}
}

// Download handles GET /reports/history requests.
func (c *ReportController) Download(ctx *gin.Context) {
	anchor, err := optionalMonth(ctx.Query("anchor"))
	if err != nil {
		handleError(ctx, invalidReportAnchor())
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportHistoryInput{
		Anchor: anchor,
		Format: adapter.ReportFormat(ctx.DefaultQuery("format", string(adapter.ReportFormatCSV))),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// Email handles POST /reports/history/email requests. An empty body sends the
// current history as CSV to the configured recipient.
func (c *ReportController) Email(ctx *gin.Context) {
	var req dto.EmailReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	anchor, err := optionalMonth(req.Anchor)
	if err != nil {
		handleError(ctx, invalidReportAnchor())
		return
	}

	output, err := c.emailUseCase.Execute(ctx.Request.Context(), report.EmailHistoryInput{
		Anchor: anchor,
		To:     req.To,
		Format: adapter.ReportFormat(req.Format),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.EmailReportResponse{MessageID: output.MessageID, To: output.To})
}

func invalidReportAnchor() error {
	return domainerror.NewReportError(
		domainerror.ErrCodeInvalidReportAnchor,
		"invalid anchor, expected YYYY-MM",
		domainerror.ErrInvalidAnchor,
	)
}
