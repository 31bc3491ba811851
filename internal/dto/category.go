package dto

import (
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string                 `json:"name" binding:"required,max=100"`
	Type domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
}

// UpdateCategoryRequest defines the fields a category patch may carry.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string                 `json:"categoryID"`
	Name       string                 `json:"name"`
	Type       domain.TransactionType `json:"type"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: category.CategoryID,
		Name:       category.Name,
		Type:       category.Type,
		CreatedAt:  category.CreatedAt,
	}
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts domain categories to the list DTO.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: responses}
}
