package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/service"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/testutil"
)

func TestWalletService_CRUD(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	wallets := service.NewWalletService(store)

	wallet := model.NewWallet("Savings", 500, "#95E1D3")
	require.NoError(t, wallets.Create(ctx, wallet))

	got, err := wallets.Get(ctx, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *wallet, *got)

	wallet.Balance = 650
	require.NoError(t, wallets.Update(ctx, wallet))

	got, err = wallets.Get(ctx, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 650, got.Balance, 0.001)

	require.NoError(t, wallets.Delete(ctx, wallet.ID))
	require.NoError(t, wallets.Delete(ctx, wallet.ID))

	got, err = wallets.Get(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "deleted wallet reads as absent, not as an error")
}

func TestWalletService_UpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	wallets := service.NewWalletService(store)

	err := wallets.Update(ctx, model.NewWallet("Ghost", 0, ""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestWalletService_NetBalance_UnknownWallet(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	wallets := service.NewWalletService(store)

	_, err := wallets.NetBalance(ctx, "WAL_0_missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestBudgetService_CategoryFlow(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	budgets := service.NewBudgetService(store)

	budget := model.NewBudget("Essentials", 800, model.PeriodMonthly)
	require.NoError(t, budgets.Create(ctx, budget))
	require.NoError(t, budgets.AddCategory(ctx, budget.ID, "CAT_0_default3"))

	budget.LimitAmount = 900
	require.NoError(t, budgets.UpdateWithCategories(ctx, budget, []string{"CAT_0_default4"}))

	ids, err := budgets.CategoryIDs(ctx, budget.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT_0_default4"}, ids)

	require.NoError(t, budgets.RemoveAllCategories(ctx, budget.ID))
	ids, err = budgets.CategoryIDs(ctx, budget.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
