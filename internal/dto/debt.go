package dto

import (
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/bukuusaha/bukuusaha_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to record a debt or receivable.
type CreateDebtRequest struct {
	Type       domain.DebtType  `json:"type" binding:"required,oneof=debt receivable"`
	PartyName  string           `json:"partyName" binding:"required,max=150"`
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	PaidAmount *decimal.Decimal `json:"paidAmount"`
	DueDate    string           `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

// Due parses the due date field.
func (r CreateDebtRequest) Due() (time.Time, error) {
	return time.Parse(dateLayout, r.DueDate)
}

// UpdateDebtRequest defines the fields a debt patch may carry. Status is
// never accepted from the client; it is derived from the paid amount.
type UpdateDebtRequest struct {
	PartyName  *string          `json:"partyName"`
	Amount     *decimal.Decimal `json:"amount"`
	PaidAmount *decimal.Decimal `json:"paidAmount"`
	DueDate    *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// RecordDebtPaymentRequest adds a payment to a debt.
type RecordDebtPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ListDebtsParams defines query parameters for listing debts.
type ListDebtsParams struct {
	Type    *string `form:"type" binding:"omitempty,oneof=debt receivable"`
	Status  *string `form:"status" binding:"omitempty,oneof=pending partial paid"`
	Overdue *bool   `form:"overdue"`
}

// DebtResponse defines the data returned for a debt, including the derived
// progress figures the debts page renders.
type DebtResponse struct {
	DebtID          string            `json:"debtID"`
	Type            domain.DebtType   `json:"type"`
	PartyName       string            `json:"partyName"`
	Amount          decimal.Decimal   `json:"amount"`
	AmountDisplay   string            `json:"amountDisplay"`
	PaidAmount      decimal.Decimal   `json:"paidAmount"`
	Remaining       decimal.Decimal   `json:"remaining"`
	ProgressPercent decimal.Decimal   `json:"progressPercent"`
	DueDate         string            `json:"dueDate"`
	Status          domain.DebtStatus `json:"status"`
	Overdue         bool              `json:"overdue"`
}

// ToDebtResponse converts a domain.Debt to its response DTO, computing the
// derived fields against the supplied clock.
func ToDebtResponse(debt *domain.Debt, now time.Time) DebtResponse {
	return DebtResponse{
		DebtID:          debt.DebtID,
		Type:            debt.Type,
		PartyName:       debt.PartyName,
		Amount:          debt.Amount,
		AmountDisplay:   utils.FormatIDR(debt.Amount),
		PaidAmount:      debt.PaidAmount,
		Remaining:       debt.Remaining(),
		ProgressPercent: debt.ProgressPercent(),
		DueDate:         debt.DueDate.Format(dateLayout),
		Status:          debt.Status,
		Overdue:         debt.IsOverdue(now),
	}
}

// ListDebtsResponse wraps the list of debts.
type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToListDebtsResponse converts domain debts to the list DTO.
func ToListDebtsResponse(debts []domain.Debt, now time.Time) ListDebtsResponse {
	responses := make([]DebtResponse, len(debts))
	for i := range debts {
		responses[i] = ToDebtResponse(&debts[i], now)
	}
	return ListDebtsResponse{Debts: responses}
}
