package service

import (
	"context"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// BudgetService manages budget entities and their category associations.
type BudgetService struct {
	storage Storage
}

var _ CRUD[model.Budget] = (*BudgetService)(nil)

// NewBudgetService creates a budget service over the given storage.
func NewBudgetService(storage Storage) *BudgetService {
	return &BudgetService{storage: storage}
}

// Create stores a new budget.
func (s *BudgetService) Create(ctx context.Context, budget *model.Budget) error {
	if err := s.storage.CreateBudget(ctx, budget); err != nil {
		common.LogError(err, "failed to create budget", common.Fields{"budget": budget.ID})
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

// Get returns the budget with the given id, or (nil, nil) when absent.
func (s *BudgetService) Get(ctx context.Context, id string) (*model.Budget, error) {
	budget, err := s.storage.GetBudget(ctx, id)
	if err != nil {
		common.LogError(err, "failed to read budget", common.Fields{"budget": id})
		return nil, fmt.Errorf("get budget: %w", err)
	}
	return budget, nil
}

// List returns all budgets.
func (s *BudgetService) List(ctx context.Context) ([]model.Budget, error) {
	budgets, err := s.storage.ListBudgets(ctx)
	if err != nil {
		common.LogError(err, "failed to list budgets", nil)
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// Update overwrites the budget keyed by its id. It fails with
// common.ErrNotFound when the budget does not exist.
func (s *BudgetService) Update(ctx context.Context, budget *model.Budget) error {
	if err := s.storage.UpdateBudget(ctx, budget); err != nil {
		common.LogError(err, "failed to update budget", common.Fields{"budget": budget.ID})
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

// UpdateWithCategories overwrites the budget and replaces its category set in
// a single store transaction.
func (s *BudgetService) UpdateWithCategories(ctx context.Context, budget *model.Budget, categoryIDs []string) error {
	if err := s.storage.UpdateBudgetWithCategories(ctx, budget, categoryIDs); err != nil {
		common.LogError(err, "failed to update budget categories", common.Fields{"budget": budget.ID})
		return fmt.Errorf("update budget with categories: %w", err)
	}
	return nil
}

// Delete removes the budget and its category associations. Deleting a
// non-existent id is a no-op.
func (s *BudgetService) Delete(ctx context.Context, id string) error {
	if err := s.storage.DeleteBudget(ctx, id); err != nil {
		common.LogError(err, "failed to delete budget", common.Fields{"budget": id})
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

// AddCategory associates a category with the budget.
func (s *BudgetService) AddCategory(ctx context.Context, budgetID, categoryID string) error {
	if err := s.storage.AddCategoryToBudget(ctx, budgetID, categoryID); err != nil {
		common.LogError(err, "failed to add category to budget",
			common.Fields{"budget": budgetID, "category": categoryID})
		return fmt.Errorf("add category to budget: %w", err)
	}
	return nil
}

// RemoveAllCategories drops every category association of the budget.
func (s *BudgetService) RemoveAllCategories(ctx context.Context, budgetID string) error {
	if err := s.storage.RemoveAllCategoriesFromBudget(ctx, budgetID); err != nil {
		common.LogError(err, "failed to remove budget categories", common.Fields{"budget": budgetID})
		return fmt.Errorf("remove budget categories: %w", err)
	}
	return nil
}

// CategoryIDs returns the ids of the categories associated with the budget.
func (s *BudgetService) CategoryIDs(ctx context.Context, budgetID string) ([]string, error) {
	ids, err := s.storage.GetBudgetCategoryIDs(ctx, budgetID)
	if err != nil {
		common.LogError(err, "failed to read budget categories", common.Fields{"budget": budgetID})
		return nil, fmt.Errorf("budget categories: %w", err)
	}
	return ids, nil
}
