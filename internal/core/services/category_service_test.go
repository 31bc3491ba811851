package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context, userID string, categoryType *domain.TransactionType) ([]domain.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) MarkCategoryDeleted(ctx context.Context, userID, categoryID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, categoryID, deletedAt, deletedBy)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CategorySvcFacade
	userID           string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
}

// --- CreateCategory Tests ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Penjualan", Type: domain.TypeIncome}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(category domain.Category) bool {
		return category.UserID == suite.userID &&
			category.Name == req.Name &&
			category.Type == domain.TypeIncome
	})).Return(nil).Once()

	created, err := suite.service.CreateCategory(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.CategoryID)
	suite.Equal(req.Name, created.Name)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateNameAndType() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Penjualan", Type: domain.TypeIncome}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateCategory(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- UpdateCategory Tests ---

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NoChangeSkipsWrite() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	sameName := "Penjualan"
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: sameName, Type: domain.TypeIncome}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, suite.userID, categoryID, dto.UpdateCategoryRequest{Name: &sameName})

	suite.Require().NoError(err)
	suite.Equal(sameName, updated.Name)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_RenameSuccess() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: "Penjualan", Type: domain.TypeIncome}
	newName := "Penjualan Toko"

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(category domain.Category) bool {
		return category.CategoryID == categoryID && category.Name == newName
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, suite.userID, categoryID, dto.UpdateCategoryRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

// --- DeleteCategory Tests ---

func (suite *CategoryServiceTestSuite) TestDeleteCategory_ChecksOwnershipThenDeletes() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: "Penjualan", Type: domain.TypeIncome}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("MarkCategoryDeleted", ctx, suite.userID, categoryID, mock.AnythingOfType("time.Time"), suite.userID).
		Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "MarkCategoryDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
