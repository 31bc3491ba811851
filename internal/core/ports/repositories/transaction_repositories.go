package repositories

import (
	"context"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Nil fields mean "no
// filter". Pagination is keyset-based on (transaction_date, transaction_id)
// descending; NextToken comes from a previous page's response.
type TransactionFilter struct {
	Type       *domain.TransactionType
	CategoryID *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	NextToken  *string
}

// TransactionReader defines read operations for transaction data. All reads
// are scoped to the owning user; the category name is joined in.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// FindTransactions lists the user's transactions matching the filter,
	// newest first, returning a token for the next page when more rows exist.
	FindTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, *string, error)

	// FindTransactionsInRange returns every transaction in the inclusive
	// date range, unpaginated, for aggregation.
	FindTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error)

	// FindAllTransactions returns the user's full history for dashboards
	// and analytics rollups.
	FindAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by userID.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
