package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/middleware"
)

// reportingHandler serves the dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes under a store group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.dashboardSummary)
	}
}

// dashboardSummary godoc
// @Summary Dashboard summary
// @Description Returns today's sales total, the catalogue size, products at or below their reorder point and the seven-day sales trend
// @Tags reports
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Security BearerAuth
// @Router /stores/{store_id}/reports/dashboard [get]
func (h *reportingHandler) dashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), storeID)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
