package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowPeriod marks an accounting period with its opening balance. A nil
// PeriodEnd means the period is still open.
type CashFlowPeriod struct {
	PeriodID       string          `json:"periodID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`   // Owning user
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      *time.Time      `json:"periodEnd,omitempty"`
	AuditFields
}
