package models

import "time"

// Category is the database row for an owner-scoped transaction category.
type Category struct {
	CategoryID string `db:"category_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
