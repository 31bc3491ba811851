package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/bukuusaha/bukuusaha_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests related to debts and receivables.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

// newDebtHandler creates a new debtHandler.
func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{
		debtService: ds,
	}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebt)
		debts.PUT("/:id", h.updateDebt)
		debts.POST("/:id/payments", h.recordPayment)
		debts.DELETE("/:id", h.deleteDebt)
	}
}

// createDebt godoc
// @Summary Record a debt or receivable
// @Description Creates a new debt (money owed) or receivable (money due) for the logged-in user
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create debt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create debt"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt, time.Now()))
}

// listDebts godoc
// @Summary List debts and receivables
// @Description Lists the logged-in user's debts due date ascending, with optional filters
// @Tags debts
// @Produce json
// @Param type query string false "Filter by type" Enums(debt, receivable)
// @Param status query string false "Filter by status" Enums(pending, partial, paid)
// @Param overdue query bool false "Filter by overdue state"
// @Success 200 {object} dto.ListDebtsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list debts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list debts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebtsResponse(debts, time.Now()))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Description Retrieves one of the logged-in user's debts
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
			return
		}
		logger.Error("Failed to get debt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve debt"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now()))
}

// updateDebt godoc
// @Summary Update a debt
// @Description Applies a patch to one of the logged-in user's debts; status is re-derived from the paid amount
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
		default:
			logger.Error("Failed to update debt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update debt"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now()))
}

// recordPayment godoc
// @Summary Record a payment against a debt
// @Description Adds to the paid amount of a debt; status is re-derived
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param payment body dto.RecordDebtPaymentRequest true "Payment amount"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id}/payments [post]
func (h *debtHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordDebtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.RecordPayment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
		default:
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now()))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Description Removes one of the logged-in user's debts
// @Tags debts
// @Param id path string true "Debt ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
			return
		}
		logger.Error("Failed to delete debt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete debt"})
		return
	}
	c.Status(http.StatusNoContent)
}
