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

// transactionService implements TransactionSvcFacade. Category references
// are validated against the caller's own categories before any write.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveCategory checks that the referenced category belongs to the user
// and matches the transaction type.
func (s *transactionService) resolveCategory(ctx context.Context, userID, categoryID string, txnType domain.TransactionType) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != txnType {
		return nil, fmt.Errorf("category %q is of type %s: %w", category.Name, category.Type, apperrors.ErrValidation)
	}
	return category, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnDate, err := req.Date()
	if err != nil {
		return nil, fmt.Errorf("invalid transaction date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Type:            req.Type,
		Amount:          req.Amount,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if req.CategoryID != nil {
		category, err := s.resolveCategory(ctx, userID, *req.CategoryID, req.Type)
		if err != nil {
			return nil, err
		}
		txn.CategoryName = &category.Name
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	filter := portsrepo.TransactionFilter{
		CategoryID: params.CategoryID,
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	}
	if params.Type != nil {
		txnType := domain.TransactionType(*params.Type)
		filter.Type = &txnType
	}
	if params.From != nil {
		from, err := time.Parse("2006-01-02", *params.From)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from date: %w", apperrors.ErrValidation)
		}
		filter.DateFrom = &from
	}
	if params.To != nil {
		to, err := time.Parse("2006-01-02", *params.To)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to date: %w", apperrors.ErrValidation)
		}
		filter.DateTo = &to
	}

	txns, nextToken, err := s.transactionRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Type != nil && *req.Type != txn.Type {
		txn.Type = *req.Type
		changed = true
	}
	if req.Amount != nil && !req.Amount.Equal(txn.Amount) {
		txn.Amount = *req.Amount
		changed = true
	}
	if req.Description != nil {
		if txn.Description == nil || *req.Description != *txn.Description {
			txn.Description = req.Description
			changed = true
		}
	}
	if req.TransactionDate != nil {
		txnDate, err := time.Parse("2006-01-02", *req.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction date: %w", apperrors.ErrValidation)
		}
		if !txnDate.Equal(txn.TransactionDate) {
			txn.TransactionDate = txnDate
			changed = true
		}
	}
	switch {
	case req.ClearCategory:
		if txn.CategoryID != nil {
			txn.CategoryID = nil
			txn.CategoryName = nil
			changed = true
		}
	case req.CategoryID != nil:
		if txn.CategoryID == nil || *req.CategoryID != *txn.CategoryID {
			txn.CategoryID = req.CategoryID
			changed = true
		}
	}

	if !changed {
		return txn, nil
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	// Re-check the category after a type or category change.
	if txn.CategoryID != nil {
		category, err := s.resolveCategory(ctx, userID, *txn.CategoryID, txn.Type)
		if err != nil {
			return nil, err
		}
		txn.CategoryName = &category.Name
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID); err != nil {
		return err
	}
	return s.transactionRepo.DeleteTransaction(ctx, userID, transactionID)
}
