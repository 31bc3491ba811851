package domain

import "time"

// TransactionType classifies money movement as income or expense. Categories
// carry the same type: a category only ever groups transactions of its kind.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is an owner-scoped label for transactions.
// (user_id, name, type) is unique among non-deleted categories.
type Category struct {
	CategoryID string          `json:"categoryID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`     // Owning user
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
