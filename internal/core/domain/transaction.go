package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry in the owner's book.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`        // Owning user
	CategoryID      *string         `json:"categoryID,omitempty"`
	CategoryName    *string         `json:"categoryName,omitempty"` // Joined at read time, nil when uncategorized
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"` // Non-negative
	Description     *string         `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}

// Validate checks the invariants the database also enforces, so a bad entry
// fails before any network round trip.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.TransactionDate.IsZero() {
		return ErrMissingTransactionDate
	}
	return nil
}
