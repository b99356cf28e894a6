package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// CreateTransaction inserts a new transaction record.
func (s *Store) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	return s.transactions.insert(ctx, s.db, txn)
}

// GetTransaction returns the transaction with the given id, or (nil, nil)
// when absent.
func (s *Store) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.transactions.get(ctx, s.db, id)
}

// ListTransactions returns the transactions matching the criteria. All set
// criteria fields are AND-combined; an empty criteria returns every record in
// storage order.
func (s *Store) ListTransactions(ctx context.Context, criteria model.TransactionCriteria) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if from, ok := criteria.DateFrom(); ok {
		if to, ok := criteria.DateTo(); ok && from > to {
			return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateBounds, from, to)
		}
	}

	where, args := transactionWhere(criteria)
	return s.transactions.list(ctx, s.db, where, args...)
}

// UpdateTransaction overwrites the transaction row keyed by its id. It fails
// with common.ErrNotFound when the transaction does not exist.
func (s *Store) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	return s.transactions.update(ctx, s.db, txn)
}

// DeleteTransaction removes the transaction. Deleting a non-existent id is a
// no-op.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.transactions.remove(ctx, s.db, id)
}

// TotalIncome returns the sum of all income transaction amounts across the
// entire store.
func (s *Store) TotalIncome(ctx context.Context) (float64, error) {
	return s.totalByFlag(ctx, model.FlagIncome)
}

// TotalExpenses returns the sum of all expense transaction amounts across the
// entire store.
func (s *Store) TotalExpenses(ctx context.Context) (float64, error) {
	return s.totalByFlag(ctx, model.FlagExpense)
}

func (s *Store) totalByFlag(ctx context.Context, flag float64) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transaction_records
		WHERE income = ?
	`, flag).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}
	return total, nil
}

// WalletFlow returns the income and expense totals for one wallet.
func (s *Store) WalletFlow(ctx context.Context, walletID string) (income, expenses float64, err error) {
	if err := validateContext(ctx); err != nil {
		return 0, 0, err
	}
	if err := validateString(walletID, "walletID"); err != nil {
		return 0, 0, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN income = ? THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN income = ? THEN amount ELSE 0 END), 0)
		FROM transaction_records
		WHERE wallet_id = ?
	`, model.FlagIncome, model.FlagExpense, walletID).Scan(&income, &expenses)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum wallet flow: %w", err)
	}
	return income, expenses, nil
}

// transactionWhere translates criteria into an AND-combined WHERE clause.
// Absent fields impose no constraint. Date bounds compare lexicographically
// against the stored ISO strings, matching the in-memory Matches semantics.
func transactionWhere(c model.TransactionCriteria) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if id, ok := c.TransactionID(); ok {
		clauses = append(clauses, "id = ?")
		args = append(args, id)
	}
	if minAmount, ok := c.MinAmount(); ok {
		clauses = append(clauses, "amount >= ?")
		args = append(args, minAmount)
	}
	if maxAmount, ok := c.MaxAmount(); ok {
		clauses = append(clauses, "amount <= ?")
		args = append(args, maxAmount)
	}
	if categoryID, ok := c.CategoryID(); ok {
		clauses = append(clauses, "category_id = ?")
		args = append(args, categoryID)
	}
	if walletID, ok := c.WalletID(); ok {
		clauses = append(clauses, "wallet_id = ?")
		args = append(args, walletID)
	}
	if flag, ok := c.Income(); ok {
		clauses = append(clauses, "income = ?")
		args = append(args, flag)
	}
	if from, ok := c.DateFrom(); ok {
		clauses = append(clauses, "create_time >= ?")
		args = append(args, from)
	}
	if to, ok := c.DateTo(); ok {
		clauses = append(clauses, "create_time <= ?")
		args = append(args, to)
	}

	return strings.Join(clauses, " AND "), args
}
