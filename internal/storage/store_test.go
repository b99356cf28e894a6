package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err, "failed to create test store")

	require.NoError(t, store.Migrate(context.Background()), "failed to migrate test store")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_WalletRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	wallet := model.NewWallet("Checking", 250.75, "#4ECDC4")
	require.NoError(t, store.CreateWallet(ctx, wallet))

	got, err := store.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *wallet, *got)
}

func TestStore_BudgetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	budget := model.NewBudget("Groceries", 500, model.PeriodMonthly)
	budget.StartDate = "2024-03-01"
	budget.EndDate = "2024-03-31"
	budget.WalletID = "WAL_1_abc"
	budget.CategoryID = "CAT_1_abc"
	budget.Balance = 120.50
	require.NoError(t, store.CreateBudget(ctx, budget))

	got, err := store.GetBudget(ctx, budget.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *budget, *got)
}

func TestStore_GoalRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	goal := model.NewGoal("Vacation", 3000, 2)
	goal.Deadline = "2024-12-31"
	goal.Balance = 450
	require.NoError(t, store.CreateGoal(ctx, goal))

	got, err := store.GetGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *goal, *got)
}

func TestStore_TransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txn := model.NewTransaction("groceries", 89.90, false, "WAL_1_abc", "CAT_1_abc")
	require.NoError(t, store.CreateTransaction(ctx, txn))

	got, err := store.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *txn, *got)
}

func TestStore_CategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	category := model.NewCategory("Books", "Reading material", model.CategoryTypeExpense)
	require.NoError(t, store.CreateCategory(ctx, category))

	got, err := store.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *category, *got)

	byName, err := store.GetCategoryByName(ctx, "Books")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, category.ID, byName.ID)
}

func TestStore_GetAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	wallet, err := store.GetWallet(ctx, "WAL_0_missing")
	require.NoError(t, err)
	assert.Nil(t, wallet)
}

func TestStore_UpdateMissingFails(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	wallet := model.NewWallet("Ghost", 0, "")
	err := store.UpdateWallet(ctx, wallet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound), "want ErrNotFound, got %v", err)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	wallet := model.NewWallet("Checking", 100, "#FFFFFF")
	require.NoError(t, store.CreateWallet(ctx, wallet))

	wallet.Name = "Main Checking"
	wallet.Balance = 175.25
	require.NoError(t, store.UpdateWallet(ctx, wallet))

	got, err := store.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Main Checking", got.Name)
	assert.InDelta(t, 175.25, got.Balance, 0.001)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	wallet := model.NewWallet("Temp", 10, "")
	require.NoError(t, store.CreateWallet(ctx, wallet))

	require.NoError(t, store.DeleteWallet(ctx, wallet.ID))
	require.NoError(t, store.DeleteWallet(ctx, wallet.ID), "second delete must not fail")

	wallets, err := store.ListWallets(ctx)
	require.NoError(t, err)
	assert.Empty(t, wallets)
}

func TestStore_DeleteWalletKeepsTransactions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	wallet := model.NewWallet("Checking", 0, "")
	require.NoError(t, store.CreateWallet(ctx, wallet))

	txn := model.NewTransaction("rent", 900, false, wallet.ID, "")
	txn.CategoryID = "CAT_0_default4"
	require.NoError(t, store.CreateTransaction(ctx, txn))

	require.NoError(t, store.DeleteWallet(ctx, wallet.ID))

	got, err := store.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "deleting a wallet must not cascade to its transactions")
}

func TestStore_CreateRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"wallet without name", func() error {
			return store.CreateWallet(ctx, &model.Wallet{Funds: model.Funds{ID: model.NewWalletID()}})
		}},
		{"budget with bad period", func() error {
			b := model.NewBudget("b", 10, model.PeriodType("DAILY"))
			return store.CreateBudget(ctx, b)
		}},
		{"goal with negative target", func() error {
			g := model.NewGoal("g", -5, 1)
			return store.CreateGoal(ctx, g)
		}},
		{"transaction with zero amount", func() error {
			txn := model.NewTransaction("t", 1, false, "WAL_1_abc", "")
			txn.Amount = 0
			return store.CreateTransaction(ctx, txn)
		}},
		{"transaction with bad income flag", func() error {
			txn := model.NewTransaction("t", 1, false, "WAL_1_abc", "")
			txn.Income = 0.5
			return store.CreateTransaction(ctx, txn)
		}},
		{"category with bad type", func() error {
			c := model.NewCategory("c", "", model.CategoryType("TRANSFER"))
			return store.CreateCategory(ctx, c)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.call())
		})
	}
}

func TestStore_DuplicateInsertFails(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	wallet := model.NewWallet("Checking", 0, "")
	require.NoError(t, store.CreateWallet(ctx, wallet))

	err := store.CreateWallet(ctx, wallet)
	require.Error(t, err)

	var storageErr *common.StorageError
	assert.True(t, errors.As(err, &storageErr), "want StorageError, got %T", err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}
