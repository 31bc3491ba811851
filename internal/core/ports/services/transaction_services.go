package services

import (
	"context"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
)

// TransactionSvcFacade defines owner-scoped CRUD for transactions.
type TransactionSvcFacade interface {
	// CreateTransaction records a new income or expense entry.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves one of the user's transactions.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions lists the user's transactions newest first, with an
	// optional next-page token.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// UpdateTransaction applies a patch to one of the user's transactions.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one of the user's transactions.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
