package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	"github.com/bukuusaha/bukuusaha_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		UserID:     d.UserID,
		Name:       d.Name,
		Type:       string(d.Type),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		UserID:     m.UserID,
		Name:       m.Name,
		Type:       domain.TransactionType(m.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.Type,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

const categoryColumns = `category_id, user_id, name, type,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)
	query := `
        INSERT INTO categories (category_id, user_id, name, type,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.Type,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (user_id, name, type)
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories
		WHERE category_id = $1 AND user_id = $2 AND deleted_at IS NULL;`

	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	d := toDomainCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context, userID string, categoryType *domain.TransactionType) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories
		WHERE user_id = $1 AND deleted_at IS NULL`
	args := []interface{}{userID}
	if categoryType != nil {
		query += ` AND type = $2`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY name ASC, type ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)
	query := `
        UPDATE categories
        SET name = $3, last_updated_at = $4, last_updated_by = $5
        WHERE category_id = $1 AND user_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkCategoryDeleted soft-deletes the category and detaches it from the
// owner's transactions in one database transaction, so history rows read back
// as uncategorized rather than pointing at a deleted row.
func (r *PgxCategoryRepository) MarkCategoryDeleted(ctx context.Context, userID, categoryID string, deletedAt time.Time, deletedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `
        UPDATE categories
        SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
        WHERE category_id = $1 AND user_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query, categoryID, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark category deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	detach := `
        UPDATE transactions
        SET category_id = NULL, last_updated_at = $3, last_updated_by = $4
        WHERE category_id = $1 AND user_id = $2;
    `
	if _, err := tx.Exec(ctx, detach, categoryID, userID, deletedAt, deletedBy); err != nil {
		return fmt.Errorf("failed to detach transactions from category: %w", err)
	}

	return r.Commit(ctx, tx)
}
