package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowPeriod is the database row for an accounting period.
type CashFlowPeriod struct {
	PeriodID       string          `db:"period_id"`
	UserID         string          `db:"user_id"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	PeriodStart    time.Time       `db:"period_start"`
	PeriodEnd      sql.NullTime    `db:"period_end"`
	AuditFields
}
