package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	"github.com/bukuusaha/bukuusaha_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashFlowRepository struct {
	BaseRepository
}

func newPgxCashFlowRepository(db *pgxpool.Pool) portsrepo.CashFlowPeriodRepositoryFacade {
	return &PgxCashFlowRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CashFlowPeriodRepositoryFacade = (*PgxCashFlowRepository)(nil)

func toModelCashFlowPeriod(d domain.CashFlowPeriod) models.CashFlowPeriod {
	m := models.CashFlowPeriod{
		PeriodID:       d.PeriodID,
		UserID:         d.UserID,
		OpeningBalance: d.OpeningBalance,
		PeriodStart:    d.PeriodStart,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.PeriodEnd != nil {
		m.PeriodEnd = sql.NullTime{Time: *d.PeriodEnd, Valid: true}
	}
	return m
}

func toDomainCashFlowPeriod(m models.CashFlowPeriod) domain.CashFlowPeriod {
	d := domain.CashFlowPeriod{
		PeriodID:       m.PeriodID,
		UserID:         m.UserID,
		OpeningBalance: m.OpeningBalance,
		PeriodStart:    m.PeriodStart,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.PeriodEnd.Valid {
		d.PeriodEnd = &m.PeriodEnd.Time
	}
	return d
}

const cashFlowColumns = `period_id, user_id, opening_balance, period_start, period_end,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCashFlowPeriod(row pgx.Row) (models.CashFlowPeriod, error) {
	var m models.CashFlowPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.UserID,
		&m.OpeningBalance,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCashFlowRepository) SavePeriod(ctx context.Context, period domain.CashFlowPeriod) error {
	m := toModelCashFlowPeriod(period)
	query := `
        INSERT INTO cash_flow_periods (period_id, user_id, opening_balance, period_start, period_end,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID,
		m.UserID,
		m.OpeningBalance,
		m.PeriodStart,
		m.PeriodEnd,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash-flow period: %w", err)
	}
	return nil
}

func (r *PgxCashFlowRepository) FindPeriodByID(ctx context.Context, userID, periodID string) (*domain.CashFlowPeriod, error) {
	query := `SELECT ` + cashFlowColumns + ` FROM cash_flow_periods
		WHERE period_id = $1 AND user_id = $2;`

	m, err := scanCashFlowPeriod(r.Pool.QueryRow(ctx, query, periodID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash-flow period by ID %s: %w", periodID, err)
	}

	d := toDomainCashFlowPeriod(m)
	return &d, nil
}

func (r *PgxCashFlowRepository) FindPeriods(ctx context.Context, userID string) ([]domain.CashFlowPeriod, error) {
	query := `SELECT ` + cashFlowColumns + ` FROM cash_flow_periods
		WHERE user_id = $1
		ORDER BY period_start DESC, period_id DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash-flow periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.CashFlowPeriod
	for rows.Next() {
		m, err := scanCashFlowPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash-flow period row: %w", err)
		}
		periods = append(periods, toDomainCashFlowPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash-flow period rows: %w", err)
	}
	return periods, nil
}

func (r *PgxCashFlowRepository) ClosePeriod(ctx context.Context, userID, periodID string, periodEnd time.Time, updatedBy string) error {
	query := `
        UPDATE cash_flow_periods
        SET period_end = $3, last_updated_at = NOW(), last_updated_by = $4
        WHERE period_id = $1 AND user_id = $2 AND period_end IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, periodID, userID, periodEnd, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to close cash-flow period: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
