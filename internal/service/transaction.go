package service

import (
	"context"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// TransactionService manages transaction records and store-wide totals.
type TransactionService struct {
	storage Storage
}

var _ CRUD[model.Transaction] = (*TransactionService)(nil)

// NewTransactionService creates a transaction service over the given storage.
func NewTransactionService(storage Storage) *TransactionService {
	return &TransactionService{storage: storage}
}

// Create stores a new transaction record.
func (s *TransactionService) Create(ctx context.Context, txn *model.Transaction) error {
	if err := s.storage.CreateTransaction(ctx, txn); err != nil {
		common.LogError(err, "failed to create transaction", common.Fields{"transaction": txn.ID})
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// Get returns the transaction with the given id, or (nil, nil) when absent.
func (s *TransactionService) Get(ctx context.Context, id string) (*model.Transaction, error) {
	txn, err := s.storage.GetTransaction(ctx, id)
	if err != nil {
		common.LogError(err, "failed to read transaction", common.Fields{"transaction": id})
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return txn, nil
}

// List returns the transactions matching the criteria, AND-combining every
// set field. Result ordering is the caller's responsibility.
func (s *TransactionService) List(ctx context.Context, criteria model.TransactionCriteria) ([]model.Transaction, error) {
	txns, err := s.storage.ListTransactions(ctx, criteria)
	if err != nil {
		common.LogError(err, "failed to list transactions", nil)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// Update overwrites the transaction keyed by its id. It fails with
// common.ErrNotFound when the transaction does not exist.
func (s *TransactionService) Update(ctx context.Context, txn *model.Transaction) error {
	if err := s.storage.UpdateTransaction(ctx, txn); err != nil {
		common.LogError(err, "failed to update transaction", common.Fields{"transaction": txn.ID})
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete removes the transaction. Deleting a non-existent id is a no-op.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if err := s.storage.DeleteTransaction(ctx, id); err != nil {
		common.LogError(err, "failed to delete transaction", common.Fields{"transaction": id})
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// TotalIncome returns the sum of all income amounts across the entire store.
// Callers needing a date scope should filter via criteria first.
func (s *TransactionService) TotalIncome(ctx context.Context) (float64, error) {
	total, err := s.storage.TotalIncome(ctx)
	if err != nil {
		common.LogError(err, "failed to total income", nil)
		return 0, fmt.Errorf("total income: %w", err)
	}
	return total, nil
}

// TotalExpenses returns the sum of all expense amounts across the entire
// store.
func (s *TransactionService) TotalExpenses(ctx context.Context) (float64, error) {
	total, err := s.storage.TotalExpenses(ctx)
	if err != nil {
		common.LogError(err, "failed to total expenses", nil)
		return 0, fmt.Errorf("total expenses: %w", err)
	}
	return total, nil
}
