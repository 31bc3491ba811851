package pgsql

import (
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		DebtRepo:        newPgxDebtRepository(dbPool),
		CashFlowRepo:    newPgxCashFlowRepository(dbPool),
	}
}
