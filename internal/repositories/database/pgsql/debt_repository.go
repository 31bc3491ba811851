package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	"github.com/bukuusaha/bukuusaha_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(db *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

func toModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:     d.DebtID,
		UserID:     d.UserID,
		Type:       string(d.Type),
		PartyName:  d.PartyName,
		Amount:     d.Amount,
		PaidAmount: d.PaidAmount,
		DueDate:    d.DueDate,
		Status:     string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:     m.DebtID,
		UserID:     m.UserID,
		Type:       domain.DebtType(m.Type),
		PartyName:  m.PartyName,
		Amount:     m.Amount,
		PaidAmount: m.PaidAmount,
		DueDate:    m.DueDate,
		Status:     domain.DebtStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const debtColumns = `debt_id, user_id, type, party_name, amount, paid_amount, due_date, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.UserID,
		&m.Type,
		&m.PartyName,
		&m.Amount,
		&m.PaidAmount,
		&m.DueDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := toModelDebt(debt)
	query := `
        INSERT INTO debts (debt_id, user_id, type, party_name, amount, paid_amount, due_date, status,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.UserID,
		m.Type,
		m.PartyName,
		m.Amount,
		m.PaidAmount,
		m.DueDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt: %w", err)
	}
	return nil
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1 AND user_id = $2;`

	m, err := scanDebt(r.Pool.QueryRow(ctx, query, debtID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}

	d := toDomainDebt(m)
	return &d, nil
}

func (r *PgxDebtRepository) FindDebts(ctx context.Context, userID string, filter portsrepo.DebtFilter) ([]domain.Debt, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1`)
	args := []interface{}{userID}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		sb.WriteString(" AND type = $" + strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		sb.WriteString(" AND status = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY due_date ASC, debt_id ASC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, toDomainDebt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}
	return debts, nil
}

func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	m := toModelDebt(debt)
	query := `
        UPDATE debts
        SET party_name = $3, amount = $4, paid_amount = $5, due_date = $6, status = $7,
            last_updated_at = $8, last_updated_by = $9
        WHERE debt_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.UserID,
		m.PartyName,
		m.Amount,
		m.PaidAmount,
		m.DueDate,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	query := `DELETE FROM debts WHERE debt_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, debtID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
