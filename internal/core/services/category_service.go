package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements CategorySvcFacade over the category repository.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Type:       req.Type,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string, categoryType *domain.TransactionType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx, userID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name == nil || *req.Name == category.Name {
		return category, nil
	}
	category.Name = *req.Name
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	// Ensure the category exists and is owned by the caller first.
	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.MarkCategoryDeleted(ctx, userID, categoryID, time.Now(), userID)
}
