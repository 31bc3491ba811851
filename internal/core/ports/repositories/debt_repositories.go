package repositories

import (
	"context"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
)

// DebtFilter narrows a debt/receivable listing. Nil fields mean "no filter".
type DebtFilter struct {
	Type   *domain.DebtType
	Status *domain.DebtStatus
}

// DebtReader defines read operations for debt/receivable data.
type DebtReader interface {
	// FindDebtByID retrieves a debt owned by userID.
	FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)

	// FindDebts lists the user's debts matching the filter, due date ascending.
	FindDebts(ctx context.Context, userID string, filter DebtFilter) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debt/receivable data
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// UpdateDebt updates an existing debt, including its derived status,
	// as a single combined write.
	UpdateDebt(ctx context.Context, debt domain.Debt) error

	// DeleteDebt removes a debt owned by userID.
	DeleteDebt(ctx context.Context, userID, debtID string) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
