package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// CreateCategory inserts a new category. Names are unique across the store.
func (s *Store) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	return s.categories.insert(ctx, s.db, category)
}

// GetCategory returns the category with the given id, or (nil, nil) when
// absent.
func (s *Store) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.categories.get(ctx, s.db, id)
}

// GetCategoryByName returns the category with the given name, or (nil, nil)
// when absent.
func (s *Store) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var (
		c            model.Category
		categoryType string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, type, is_custom
		FROM categories
		WHERE name = ?
	`, name).Scan(&c.ID, &c.Name, &c.Description, &categoryType, &c.Custom)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	c.Type = model.CategoryType(categoryType)
	return &c, nil
}

// ListCategories returns all categories.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.categories.list(ctx, s.db, "")
}

// ListCategoriesByType returns the categories of one type.
func (s *Store) ListCategoriesByType(ctx context.Context, categoryType model.CategoryType) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !categoryType.Valid() {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidCategory, categoryType)
	}
	return s.categories.list(ctx, s.db, "type = ?", string(categoryType))
}

// UpdateCategory overwrites the category row keyed by its id. It fails with
// common.ErrNotFound when the category does not exist.
func (s *Store) UpdateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	return s.categories.update(ctx, s.db, category)
}

// DeleteCategory removes the category. Deleting a non-existent id is a no-op.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.categories.remove(ctx, s.db, id)
}
