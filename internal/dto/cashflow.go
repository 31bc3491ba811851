package dto

import (
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashFlowPeriodRequest opens a new accounting period.
type CreateCashFlowPeriodRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"required"`
	PeriodStart    string          `json:"periodStart" binding:"required,datetime=2006-01-02"`
}

// Start parses the period start field.
func (r CreateCashFlowPeriodRequest) Start() (time.Time, error) {
	return time.Parse(dateLayout, r.PeriodStart)
}

// CloseCashFlowPeriodRequest sets the end date of an open period.
type CloseCashFlowPeriodRequest struct {
	PeriodEnd string `json:"periodEnd" binding:"required,datetime=2006-01-02"`
}

// End parses the period end field.
func (r CloseCashFlowPeriodRequest) End() (time.Time, error) {
	return time.Parse(dateLayout, r.PeriodEnd)
}

// CashFlowPeriodResponse defines the data returned for a period.
type CashFlowPeriodResponse struct {
	PeriodID       string          `json:"periodID"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	PeriodStart    string          `json:"periodStart"`
	PeriodEnd      *string         `json:"periodEnd,omitempty"`
}

// ToCashFlowPeriodResponse converts a domain period to its response DTO.
func ToCashFlowPeriodResponse(period *domain.CashFlowPeriod) CashFlowPeriodResponse {
	resp := CashFlowPeriodResponse{
		PeriodID:       period.PeriodID,
		OpeningBalance: period.OpeningBalance,
		PeriodStart:    period.PeriodStart.Format(dateLayout),
	}
	if period.PeriodEnd != nil {
		end := period.PeriodEnd.Format(dateLayout)
		resp.PeriodEnd = &end
	}
	return resp
}

// ListCashFlowPeriodsResponse wraps the list of periods.
type ListCashFlowPeriodsResponse struct {
	Periods []CashFlowPeriodResponse `json:"periods"`
}

// ToListCashFlowPeriodsResponse converts domain periods to the list DTO.
func ToListCashFlowPeriodsResponse(periods []domain.CashFlowPeriod) ListCashFlowPeriodsResponse {
	responses := make([]CashFlowPeriodResponse, len(periods))
	for i := range periods {
		responses[i] = ToCashFlowPeriodResponse(&periods[i])
	}
	return ListCashFlowPeriodsResponse{Periods: responses}
}
