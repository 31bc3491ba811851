package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/bukuusaha/bukuusaha_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler serves the analytics, dashboard and report endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers analytics, dashboard and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/monthly", h.monthlySummaries)
		analytics.GET("/categories", h.categorySummaries)
	}
	rg.GET("/dashboard/summary", h.dashboardSummary)
	reports := rg.Group("/reports")
	{
		reports.GET("/period", h.periodReport)
		reports.GET("/period/export", h.exportPeriodReport)
	}
}

// monthlySummaries godoc
// @Summary Monthly income and expense rollup
// @Description Returns per-month totals over the logged-in user's full history, month ascending
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.MonthlySummariesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/monthly [get]
func (h *reportingHandler) monthlySummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summaries, err := h.reportingService.MonthlySummaries(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build monthly rollup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build monthly summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummariesResponse(summaries))
}

// categorySummaries godoc
// @Summary Top categories rollup
// @Description Returns the top categories by total amount over the logged-in user's full history
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.CategorySummariesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/categories [get]
func (h *reportingHandler) categorySummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summaries, err := h.reportingService.CategorySummaries(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build category rollup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build category summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCategorySummariesResponse(summaries))
}

// dashboardSummary godoc
// @Summary Dashboard headline figures
// @Description Returns total income, total expense, balance and outstanding debt/receivable totals
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *reportingHandler) dashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}

// periodReport godoc
// @Summary Period report
// @Description Aggregates the logged-in user's transactions over an inclusive date range
// @Tags reports
// @Produce json
// @Param start query string true "Inclusive start date (YYYY-MM-DD)"
// @Param end query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/period [get]
func (h *reportingHandler) periodReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.PeriodReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	start, end, err := params.Range()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range: " + err.Error()})
		return
	}

	report, err := h.reportingService.PeriodReport(c.Request.Context(), userID, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build period report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build period report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodReportResponse(report, start, end))
}

// exportPeriodReport godoc
// @Summary Export period report as CSV
// @Description Streams the period report as a CSV download
// @Tags reports
// @Produce text/csv
// @Param start query string true "Inclusive start date (YYYY-MM-DD)"
// @Param end query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/period/export [get]
func (h *reportingHandler) exportPeriodReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.PeriodReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	start, end, err := params.Range()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range: " + err.Error()})
		return
	}

	// Build the CSV in memory first so an aggregation error can still return
	// a JSON error response instead of a truncated download.
	var buf bytes.Buffer
	filename, err := h.reportingService.ExportPeriodReportCSV(c.Request.Context(), userID, start, end, &buf)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to export period report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export period report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
