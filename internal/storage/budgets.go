package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// CreateBudget inserts a new budget.
func (s *Store) CreateBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}
	return s.budgets.insert(ctx, s.db, budget)
}

// GetBudget returns the budget with the given id, or (nil, nil) when absent.
func (s *Store) GetBudget(ctx context.Context, id string) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.budgets.get(ctx, s.db, id)
}

// ListBudgets returns all budgets.
func (s *Store) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.budgets.list(ctx, s.db, "")
}

// UpdateBudget overwrites the budget row keyed by its id. It fails with
// common.ErrNotFound when the budget does not exist.
func (s *Store) UpdateBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}
	return s.budgets.update(ctx, s.db, budget)
}

// DeleteBudget removes the budget and its category associations. Deleting a
// non-existent id is a no-op.
func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM budget_categories WHERE budget_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete budget category associations: %w", err)
		}
		return s.budgets.remove(ctx, tx, id)
	})
}

// AddCategoryToBudget associates a category with a budget. Re-adding an
// existing association is a no-op.
func (s *Store) AddCategoryToBudget(ctx context.Context, budgetID, categoryID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return err
	}
	return s.addBudgetCategoryTx(ctx, s.db, budgetID, categoryID)
}

func (s *Store) addBudgetCategoryTx(ctx context.Context, q queryable, budgetID, categoryID string) error {
	_, err := q.ExecContext(ctx, `
		INSERT OR IGNORE INTO budget_categories (budget_id, category_id)
		VALUES (?, ?)
	`, budgetID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to associate category %s with budget %s: %w", categoryID, budgetID, err)
	}
	return nil
}

// RemoveAllCategoriesFromBudget drops every category association of a budget.
func (s *Store) RemoveAllCategoriesFromBudget(ctx context.Context, budgetID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM budget_categories WHERE budget_id = ?`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to remove budget category associations: %w", err)
	}
	return nil
}

// GetBudgetCategoryIDs returns the ids of the categories associated with a
// budget, in association order.
func (s *Store) GetBudgetCategoryIDs(ctx context.Context, budgetID string) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id FROM budget_categories
		WHERE budget_id = ?
		ORDER BY category_id
	`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdateBudgetWithCategories overwrites the budget row and replaces its
// category associations with the given set. The remove-all, update, re-add
// sequence runs inside one database transaction so an interruption cannot
// leave stale or missing associations.
func (s *Store) UpdateBudgetWithCategories(ctx context.Context, budget *model.Budget, categoryIDs []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM budget_categories WHERE budget_id = ?`, budget.ID); err != nil {
			return fmt.Errorf("failed to remove budget category associations: %w", err)
		}
		if err := s.budgets.update(ctx, tx, budget); err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			if err := s.addBudgetCategoryTx(ctx, tx, budget.ID, categoryID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("updated budget with categories",
		"budget", budget.ID,
		"categories", len(categoryIDs))
	return nil
}
