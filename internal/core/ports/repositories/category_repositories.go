package repositories

import (
	"context"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data. All reads are
// scoped to the owning user.
type CategoryReader interface {
	// FindCategoryByID retrieves a category owned by userID.
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// FindCategories lists the user's categories, optionally filtered by type.
	FindCategories(ctx context.Context, userID string, categoryType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate
	// when (user, name, type) already exists.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// MarkCategoryDeleted soft-deletes a category and detaches it from the
	// owner's transactions atomically; those rows read back as uncategorized.
	MarkCategoryDeleted(ctx context.Context, userID, categoryID string, deletedAt time.Time, deletedBy string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
