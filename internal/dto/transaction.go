package dto

import (
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for bare dates.
const dateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Type            domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	CategoryID      *string                `json:"categoryID"`
	Description     *string                `json:"description"`
	TransactionDate string                 `json:"transactionDate" binding:"required,datetime=2006-01-02"`
}

// Date parses the transaction date field.
func (r CreateTransactionRequest) Date() (time.Time, error) {
	return time.Parse(dateLayout, r.TransactionDate)
}

// UpdateTransactionRequest defines the fields a transaction patch may carry.
// Pointers distinguish omitted fields from zero-value updates; ClearCategory
// detaches the category explicitly.
type UpdateTransactionRequest struct {
	Type            *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal        `json:"amount"`
	CategoryID      *string                 `json:"categoryID"`
	ClearCategory   bool                    `json:"clearCategory"`
	Description     *string                 `json:"description"`
	TransactionDate *string                 `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type       *string `form:"type" binding:"omitempty,oneof=income expense"`
	CategoryID *string `form:"categoryID"`
	From       *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit      int     `form:"limit,default=20"`
	NextToken  *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Type            domain.TransactionType `json:"type"`
	Amount          decimal.Decimal        `json:"amount"`
	CategoryID      *string                `json:"categoryID,omitempty"`
	CategoryName    string                 `json:"categoryName"`
	Description     *string                `json:"description,omitempty"`
	TransactionDate string                 `json:"transactionDate"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
// A missing category resolves to the "Uncategorized" display name.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	categoryName := "Uncategorized"
	if txn.CategoryName != nil && *txn.CategoryName != "" {
		categoryName = *txn.CategoryName
	}
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Type:            txn.Type,
		Amount:          txn.Amount,
		CategoryID:      txn.CategoryID,
		CategoryName:    categoryName,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate.Format(dateLayout),
		CreatedAt:       txn.CreatedAt,
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses, NextToken: nextToken}
}
