package services

import (
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	// Transactions validate category references, so the service takes both repos.
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Debt = NewDebtService(repos.DebtRepo)
	container.CashFlow = NewCashFlowService(repos.CashFlowRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.DebtRepo)

	// Token handling needs the user service for refresh token lookups.
	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
