package services

import (
	"context"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
)

// CategorySvcFacade defines owner-scoped CRUD for categories.
type CategorySvcFacade interface {
	// CreateCategory creates a category for the user.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves one of the user's categories.
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategories lists the user's categories, optionally filtered by type.
	ListCategories(ctx context.Context, userID string, categoryType *domain.TransactionType) ([]domain.Category, error)

	// UpdateCategory applies a patch to one of the user's categories.
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory soft-deletes a category; referencing transactions are
	// detached and read back as uncategorized.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
