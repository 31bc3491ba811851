package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row for an income or expense entry.
// CategoryName is populated only by reads that join categories.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	CategoryID      sql.NullString  `db:"category_id"`
	CategoryName    sql.NullString  `db:"category_name"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     sql.NullString  `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}
