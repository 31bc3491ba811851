package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType distinguishes money the owner owes (debt) from money owed to the
// owner (receivable).
type DebtType string

const (
	DebtOwed       DebtType = "debt"
	DebtReceivable DebtType = "receivable"
)

// Valid reports whether the type is one of the known values.
func (t DebtType) Valid() bool {
	return t == DebtOwed || t == DebtReceivable
}

// DebtStatus is derived from the paid amount and never set directly.
type DebtStatus string

const (
	StatusPending DebtStatus = "pending"
	StatusPartial DebtStatus = "partial"
	StatusPaid    DebtStatus = "paid"
)

// Debt tracks one debt or receivable against a named party.
type Debt struct {
	DebtID     string          `json:"debtID"` // Primary Key (UUID)
	UserID     string          `json:"userID"` // Owning user
	Type       DebtType        `json:"type"`
	PartyName  string          `json:"partyName"`
	Amount     decimal.Decimal `json:"amount"`     // Positive
	PaidAmount decimal.Decimal `json:"paidAmount"` // Non-negative
	DueDate    time.Time       `json:"dueDate"`
	Status     DebtStatus      `json:"status"`
	AuditFields
}

// DeriveStatus recomputes Status from Amount and PaidAmount. Callers must
// invoke it on every write path.
func (d *Debt) DeriveStatus() {
	switch {
	case d.PaidAmount.GreaterThanOrEqual(d.Amount):
		d.Status = StatusPaid
	case d.PaidAmount.IsPositive():
		d.Status = StatusPartial
	default:
		d.Status = StatusPending
	}
}

// Remaining returns the unpaid portion, never negative.
func (d Debt) Remaining() decimal.Decimal {
	remaining := d.Amount.Sub(d.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ProgressPercent returns paid/amount*100. Amount is guaranteed positive by
// the schema, but a zero amount still yields 0 rather than a division error.
func (d Debt) ProgressPercent() decimal.Decimal {
	if !d.Amount.IsPositive() {
		return decimal.Zero
	}
	return d.PaidAmount.Div(d.Amount).Mul(decimal.NewFromInt(100))
}

// IsOverdue reports whether the due date has passed without full payment.
func (d Debt) IsOverdue(now time.Time) bool {
	return d.DueDate.Before(now.Truncate(24*time.Hour)) && d.Status != StatusPaid
}

// Validate checks the invariants the database also enforces.
func (d Debt) Validate() error {
	if !d.Type.Valid() {
		return ErrInvalidDebtType
	}
	if !d.Amount.IsPositive() {
		return ErrNonPositiveDebtAmount
	}
	if d.PaidAmount.IsNegative() {
		return ErrNegativePaidAmount
	}
	return nil
}
