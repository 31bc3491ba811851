package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/bukuusaha/bukuusaha_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// cashFlowHandler handles HTTP requests related to cash-flow periods.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvcFacade
}

// newCashFlowHandler creates a new cashFlowHandler.
func newCashFlowHandler(cs portssvc.CashFlowSvcFacade) *cashFlowHandler {
	return &cashFlowHandler{
		cashFlowService: cs,
	}
}

// registerCashFlowRoutes registers routes related to cash-flow periods.
func registerCashFlowRoutes(rg *gin.RouterGroup, cashFlowService portssvc.CashFlowSvcFacade) {
	h := newCashFlowHandler(cashFlowService)

	periods := rg.Group("/cashflow-periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.PUT("/:id/close", h.closePeriod)
	}
}

// createPeriod godoc
// @Summary Open a cash-flow period
// @Description Opens a new accounting period with an opening balance
// @Tags cashflow-periods
// @Accept json
// @Produce json
// @Param period body dto.CreateCashFlowPeriodRequest true "Period details"
// @Success 201 {object} dto.CashFlowPeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow-periods [post]
func (h *cashFlowHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashFlowPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := h.cashFlowService.CreatePeriod(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create cash-flow period", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create period"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashFlowPeriodResponse(period))
}

// listPeriods godoc
// @Summary List cash-flow periods
// @Description Lists the logged-in user's periods, newest first
// @Tags cashflow-periods
// @Produce json
// @Success 200 {object} dto.ListCashFlowPeriodsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow-periods [get]
func (h *cashFlowHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	periods, err := h.cashFlowService.ListPeriods(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list cash-flow periods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list periods"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashFlowPeriodsResponse(periods))
}

// closePeriod godoc
// @Summary Close a cash-flow period
// @Description Sets the end date of an open period
// @Tags cashflow-periods
// @Accept json
// @Produce json
// @Param id path string true "Period ID"
// @Param period body dto.CloseCashFlowPeriodRequest true "Period end date"
// @Success 200 {object} dto.CashFlowPeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow-periods/{id}/close [put]
func (h *cashFlowHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CloseCashFlowPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.cashFlowService.ClosePeriod(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		default:
			logger.Error("Failed to close cash-flow period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close period"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowPeriodResponse(period))
}
