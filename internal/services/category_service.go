package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"carteira/internal/database"
	apperrors "carteira/internal/errors"
	"carteira/internal/logger"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// categoryService handles the category list shared by all users.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

func categoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Nome da categoria é obrigatório.")
	}
	return name, nil
}

// CreateCategory adds a category. Names are unique across all users.
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	name, err := categoryName(name)
	if err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.db.Create(category).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateCategory
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetCategories returns a page of categories ordered by name.
func (s *categoryService) GetCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Category{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := s.db.Order("name ASC").Scopes(pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page, totalItems)
	return &result, nil
}

// GetCategoryNames returns every category name, sorted, for form selects.
func (s *categoryService) GetCategoryNames() ([]string, error) {
	names := []string{}
	if err := s.db.Model(&models.Category{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return names, nil
}

// GetCategoryByID returns a category by ID.
func (s *categoryService) GetCategoryByID(categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (s *categoryService) UpdateCategory(categoryID, name string) (int64, error) {
	name, err := categoryName(name)
	if err != nil {
		return 0, err
	}

	result := s.db.Model(&models.Category{}).Where("id = ?", categoryID).Update("name", name)
	if result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			return 0, apperrors.ErrDuplicateCategory
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("category update matched no rows", "category_id", categoryID)
	}
	return result.RowsAffected, nil
}

// DeleteCategory removes a category. Entries and budgets keep the name
// they were saved with.
func (s *categoryService) DeleteCategory(categoryID string) (int64, error) {
	result := s.db.Where("id = ?", categoryID).Delete(&models.Category{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("category delete matched no rows", "category_id", categoryID)
	}
	return result.RowsAffected, nil
}
