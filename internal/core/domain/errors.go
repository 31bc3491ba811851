package domain

import "errors"

var (
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrNegativeAmount         = errors.New("amount must be non-negative")
	ErrMissingTransactionDate = errors.New("transaction date is required")
	ErrInvalidDebtType        = errors.New("type must be debt or receivable")
	ErrNonPositiveDebtAmount  = errors.New("debt amount must be positive")
	ErrNegativePaidAmount     = errors.New("paid amount must be non-negative")
)
