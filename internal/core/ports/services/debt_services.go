package services

import (
	"context"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
)

// DebtSvcFacade defines owner-scoped CRUD for debts and receivables. The
// service derives status from the paid amount on every write.
type DebtSvcFacade interface {
	// CreateDebt records a new debt or receivable.
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error)

	// GetDebtByID retrieves one of the user's debts.
	GetDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)

	// ListDebts lists the user's debts matching the filter.
	ListDebts(ctx context.Context, userID string, params dto.ListDebtsParams) ([]domain.Debt, error)

	// UpdateDebt applies a patch to one of the user's debts.
	UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// RecordPayment adds to the paid amount as a single combined write.
	RecordPayment(ctx context.Context, userID, debtID string, req dto.RecordDebtPaymentRequest) (*domain.Debt, error)

	// DeleteDebt removes one of the user's debts.
	DeleteDebt(ctx context.Context, userID, debtID string) error
}
