package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/internal/integration/entrypoint/dto"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeChecker func(ctx context.Context) error
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeChecker func(ctx context.Context) error) *HealthController {
	return &HealthController{
		storeChecker: storeChecker,
	}
}

// Check handles GET /health requests.
// The API stays up when the goal store is down; only the goal endpoints fail.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.storeChecker != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.storeChecker(ctx); err == nil {
			storeStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		GoalStore: storeStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
