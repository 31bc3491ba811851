package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	"github.com/bukuusaha/bukuusaha_backend/internal/models"
	"github.com/bukuusaha/bukuusaha_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTransactionPageSize = 20

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		Type:            string(d.Type),
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.CategoryID != nil {
		m.CategoryID = sql.NullString{String: *d.CategoryID, Valid: true}
	}
	if d.Description != nil {
		m.Description = sql.NullString{String: *d.Description, Valid: true}
	}
	return m
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		Type:            domain.TransactionType(m.Type),
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.CategoryID.Valid {
		d.CategoryID = &m.CategoryID.String
	}
	if m.CategoryName.Valid {
		d.CategoryName = &m.CategoryName.String
	}
	if m.Description.Valid {
		d.Description = &m.Description.String
	}
	return d
}

// transactionColumns joins categories so reads carry the display name. The
// join is LEFT so uncategorized entries and entries pointing at a deleted
// category still load.
const transactionColumns = `t.transaction_id, t.user_id, t.category_id, c.name AS category_name,
	t.type, t.amount, t.description, t.transaction_date,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`

const transactionFrom = ` FROM transactions t
	LEFT JOIN categories c ON c.category_id = t.category_id AND c.deleted_at IS NULL`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.CategoryID,
		&m.CategoryName,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, category_id, type, amount, description,
            transaction_date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.CategoryID,
		m.Type,
		m.Amount,
		m.Description,
		m.TransactionDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionFrom + `
		WHERE t.transaction_id = $1 AND t.user_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + transactionFrom + ` WHERE t.user_id = $1`)
	args := []interface{}{userID}

	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		sb.WriteString(" AND " + clause + "$" + strconv.Itoa(len(args)))
	}

	if filter.Type != nil {
		addArg("t.type = ", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		addArg("t.category_id = ", *filter.CategoryID)
	}
	if filter.DateFrom != nil {
		addArg("t.transaction_date >= ", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addArg("t.transaction_date <= ", *filter.DateTo)
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		tokenDate, tokenID, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		// Keyset condition for descending (transaction_date, transaction_id).
		args = append(args, tokenDate, tokenID)
		sb.WriteString(fmt.Sprintf(" AND (t.transaction_date, t.transaction_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	args = append(args, limit+1) // one extra row to detect a further page
	sb.WriteString(fmt.Sprintf(" ORDER BY t.transaction_date DESC, t.transaction_id DESC LIMIT $%d;", len(args)))

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.TransactionID)
		nextToken = &token
	}
	return txns, nextToken, nil
}

func (r *PgxTransactionRepository) FindTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionFrom + `
		WHERE t.user_id = $1 AND t.transaction_date >= $2 AND t.transaction_date <= $3
		ORDER BY t.transaction_date ASC, t.transaction_id ASC;`
	return r.queryTransactions(ctx, query, userID, from, to)
}

func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionFrom + `
		WHERE t.user_id = $1
		ORDER BY t.transaction_date ASC, t.transaction_id ASC;`
	return r.queryTransactions(ctx, query, userID)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE transactions
        SET category_id = $3, type = $4, amount = $5, description = $6,
            transaction_date = $7, last_updated_at = $8, last_updated_by = $9
        WHERE transaction_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.CategoryID,
		m.Type,
		m.Amount,
		m.Description,
		m.TransactionDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
