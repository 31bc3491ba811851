package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is the database row for a debt or receivable.
type Debt struct {
	DebtID     string          `db:"debt_id"`
	UserID     string          `db:"user_id"`
	Type       string          `db:"type"`
	PartyName  string          `db:"party_name"`
	Amount     decimal.Decimal `db:"amount"`
	PaidAmount decimal.Decimal `db:"paid_amount"`
	DueDate    time.Time       `db:"due_date"`
	Status     string          `db:"status"`
	AuditFields
}
