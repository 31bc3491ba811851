package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/google/uuid"
)

// cashFlowService implements CashFlowSvcFacade over the period repository.
type cashFlowService struct {
	BaseService
	cashFlowRepo portsrepo.CashFlowPeriodRepositoryFacade
}

// NewCashFlowService creates a new cash-flow period service.
func NewCashFlowService(cashFlowRepo portsrepo.CashFlowPeriodRepositoryFacade) portssvc.CashFlowSvcFacade {
	return &cashFlowService{cashFlowRepo: cashFlowRepo}
}

var _ portssvc.CashFlowSvcFacade = (*cashFlowService)(nil)

func (s *cashFlowService) CreatePeriod(ctx context.Context, userID string, req dto.CreateCashFlowPeriodRequest) (*domain.CashFlowPeriod, error) {
	periodStart, err := req.Start()
	if err != nil {
		return nil, fmt.Errorf("invalid period start: %w", apperrors.ErrValidation)
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("opening balance must be non-negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	period := domain.CashFlowPeriod{
		PeriodID:       uuid.NewString(),
		UserID:         userID,
		OpeningBalance: req.OpeningBalance,
		PeriodStart:    periodStart,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cashFlowRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save cash-flow period", slog.String("period_id", period.PeriodID))
		return nil, fmt.Errorf("failed to create cash-flow period: %w", err)
	}
	return &period, nil
}

func (s *cashFlowService) ListPeriods(ctx context.Context, userID string) ([]domain.CashFlowPeriod, error) {
	periods, err := s.cashFlowRepo.FindPeriods(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-flow periods: %w", err)
	}
	if periods == nil {
		periods = []domain.CashFlowPeriod{}
	}
	return periods, nil
}

func (s *cashFlowService) ClosePeriod(ctx context.Context, userID, periodID string, req dto.CloseCashFlowPeriodRequest) (*domain.CashFlowPeriod, error) {
	periodEnd, err := req.End()
	if err != nil {
		return nil, fmt.Errorf("invalid period end: %w", apperrors.ErrValidation)
	}

	period, err := s.cashFlowRepo.FindPeriodByID(ctx, userID, periodID)
	if err != nil {
		return nil, err
	}
	if period.PeriodEnd != nil {
		return nil, fmt.Errorf("period is already closed: %w", apperrors.ErrValidation)
	}
	if periodEnd.Before(period.PeriodStart) {
		return nil, fmt.Errorf("period end cannot precede period start: %w", apperrors.ErrValidation)
	}

	if err := s.cashFlowRepo.ClosePeriod(ctx, userID, periodID, periodEnd, userID); err != nil {
		s.LogError(ctx, err, "Failed to close cash-flow period", slog.String("period_id", periodID))
		return nil, err
	}
	period.PeriodEnd = &periodEnd
	period.LastUpdatedAt = time.Now()
	period.LastUpdatedBy = userID
	return period, nil
}
