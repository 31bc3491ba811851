package repositories

import (
	"context"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
)

// CashFlowPeriodRepositoryFacade defines operations for cash-flow periods.
type CashFlowPeriodRepositoryFacade interface {
	// SavePeriod persists a new cash-flow period.
	SavePeriod(ctx context.Context, period domain.CashFlowPeriod) error

	// FindPeriodByID retrieves a period owned by userID.
	FindPeriodByID(ctx context.Context, userID, periodID string) (*domain.CashFlowPeriod, error)

	// FindPeriods lists the user's periods, newest first.
	FindPeriods(ctx context.Context, userID string) ([]domain.CashFlowPeriod, error)

	// ClosePeriod sets the period end date.
	ClosePeriod(ctx context.Context, userID, periodID string, periodEnd time.Time, updatedBy string) error
}
