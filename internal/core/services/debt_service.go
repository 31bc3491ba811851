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

// debtService implements DebtSvcFacade. Status is recomputed from the paid
// amount on every write; it is never taken from the request.
type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	dueDate, err := req.Due()
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	debt := domain.Debt{
		DebtID:    uuid.NewString(),
		UserID:    userID,
		Type:      req.Type,
		PartyName: req.PartyName,
		Amount:    req.Amount,
		DueDate:   dueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.PaidAmount != nil {
		debt.PaidAmount = *req.PaidAmount
	}
	if err := debt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	debt.DeriveStatus()

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt", slog.String("debt_id", debt.DebtID))
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}
	return &debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return debt, nil
}

func (s *debtService) ListDebts(ctx context.Context, userID string, params dto.ListDebtsParams) ([]domain.Debt, error) {
	filter := portsrepo.DebtFilter{}
	if params.Type != nil {
		debtType := domain.DebtType(*params.Type)
		filter.Type = &debtType
	}
	if params.Status != nil {
		status := domain.DebtStatus(*params.Status)
		filter.Status = &status
	}

	debts, err := s.debtRepo.FindDebts(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	// Overdue is derived, so it filters in memory rather than in SQL.
	if params.Overdue != nil {
		now := time.Now()
		filtered := make([]domain.Debt, 0, len(debts))
		for _, d := range debts {
			if d.IsOverdue(now) == *params.Overdue {
				filtered = append(filtered, d)
			}
		}
		debts = filtered
	}
	if debts == nil {
		debts = []domain.Debt{}
	}
	return debts, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.PartyName != nil && *req.PartyName != debt.PartyName {
		debt.PartyName = *req.PartyName
		changed = true
	}
	if req.Amount != nil && !req.Amount.Equal(debt.Amount) {
		debt.Amount = *req.Amount
		changed = true
	}
	if req.PaidAmount != nil && !req.PaidAmount.Equal(debt.PaidAmount) {
		debt.PaidAmount = *req.PaidAmount
		changed = true
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date: %w", apperrors.ErrValidation)
		}
		if !dueDate.Equal(debt.DueDate) {
			debt.DueDate = dueDate
			changed = true
		}
	}
	if !changed {
		return debt, nil
	}

	if err := debt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	debt.DeriveStatus()
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, err
	}
	return debt, nil
}

func (s *debtService) RecordPayment(ctx context.Context, userID, debtID string, req dto.RecordDebtPaymentRequest) (*domain.Debt, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	debt.PaidAmount = debt.PaidAmount.Add(req.Amount)
	debt.DeriveStatus()
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to record debt payment", slog.String("debt_id", debtID))
		return nil, err
	}
	return debt, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	if _, err := s.debtRepo.FindDebtByID(ctx, userID, debtID); err != nil {
		return err
	}
	return s.debtRepo.DeleteDebt(ctx, userID, debtID)
}
