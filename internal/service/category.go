package service

import (
	"context"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// CategoryService manages transaction categories.
type CategoryService struct {
	storage Storage
}

var _ CRUD[model.Category] = (*CategoryService)(nil)

// NewCategoryService creates a category service over the given storage.
func NewCategoryService(storage Storage) *CategoryService {
	return &CategoryService{storage: storage}
}

// Create stores a new category.
func (s *CategoryService) Create(ctx context.Context, category *model.Category) error {
	if err := s.storage.CreateCategory(ctx, category); err != nil {
		common.LogError(err, "failed to create category", common.Fields{"category": category.ID})
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Get returns the category with the given id, or (nil, nil) when absent.
func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.storage.GetCategory(ctx, id)
	if err != nil {
		common.LogError(err, "failed to read category", common.Fields{"category": id})
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// GetByName returns the category with the given name, or (nil, nil) when
// absent.
func (s *CategoryService) GetByName(ctx context.Context, name string) (*model.Category, error) {
	category, err := s.storage.GetCategoryByName(ctx, name)
	if err != nil {
		common.LogError(err, "failed to read category by name", common.Fields{"name": name})
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return category, nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.storage.ListCategories(ctx)
	if err != nil {
		common.LogError(err, "failed to list categories", nil)
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListByType returns the categories of one type.
func (s *CategoryService) ListByType(ctx context.Context, categoryType model.CategoryType) ([]model.Category, error) {
	categories, err := s.storage.ListCategoriesByType(ctx, categoryType)
	if err != nil {
		common.LogError(err, "failed to list categories by type", common.Fields{"type": categoryType})
		return nil, fmt.Errorf("list categories by type: %w", err)
	}
	return categories, nil
}

// Update overwrites the category keyed by its id. It fails with
// common.ErrNotFound when the category does not exist.
func (s *CategoryService) Update(ctx context.Context, category *model.Category) error {
	if err := s.storage.UpdateCategory(ctx, category); err != nil {
		common.LogError(err, "failed to update category", common.Fields{"category": category.ID})
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes the category. Deleting a non-existent id is a no-op.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.storage.DeleteCategory(ctx, id); err != nil {
		common.LogError(err, "failed to delete category", common.Fields{"category": id})
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
