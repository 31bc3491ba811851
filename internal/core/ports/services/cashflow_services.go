package services

import (
	"context"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
)

// CashFlowSvcFacade defines operations on cash-flow periods.
type CashFlowSvcFacade interface {
	// CreatePeriod opens a new cash-flow period with an opening balance.
	CreatePeriod(ctx context.Context, userID string, req dto.CreateCashFlowPeriodRequest) (*domain.CashFlowPeriod, error)

	// ListPeriods lists the user's periods, newest first.
	ListPeriods(ctx context.Context, userID string) ([]domain.CashFlowPeriod, error)

	// ClosePeriod sets the end date of an open period.
	ClosePeriod(ctx context.Context, userID, periodID string, req dto.CloseCashFlowPeriodRequest) (*domain.CashFlowPeriod, error)
}
