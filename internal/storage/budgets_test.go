package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

func TestStore_BudgetCategoryAssociations(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	budget := model.NewBudget("Essentials", 1000, model.PeriodMonthly)
	require.NoError(t, store.CreateBudget(ctx, budget))

	require.NoError(t, store.AddCategoryToBudget(ctx, budget.ID, "CAT_0_default3"))
	require.NoError(t, store.AddCategoryToBudget(ctx, budget.ID, "CAT_0_default4"))
	// Re-adding an existing association is a no-op.
	require.NoError(t, store.AddCategoryToBudget(ctx, budget.ID, "CAT_0_default3"))

	ids, err := store.GetBudgetCategoryIDs(ctx, budget.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT_0_default3", "CAT_0_default4"}, ids)

	require.NoError(t, store.RemoveAllCategoriesFromBudget(ctx, budget.ID))

	ids, err = store.GetBudgetCategoryIDs(ctx, budget.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_UpdateBudgetWithCategories(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	budget := model.NewBudget("Essentials", 1000, model.PeriodMonthly)
	require.NoError(t, store.CreateBudget(ctx, budget))
	require.NoError(t, store.AddCategoryToBudget(ctx, budget.ID, "CAT_0_default3"))

	budget.LimitAmount = 1200
	require.NoError(t, store.UpdateBudgetWithCategories(ctx, budget, []string{"CAT_0_default4", "CAT_0_default5"}))

	got, err := store.GetBudget(ctx, budget.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 1200, got.LimitAmount, 0.001)

	ids, err := store.GetBudgetCategoryIDs(ctx, budget.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT_0_default4", "CAT_0_default5"}, ids)
}

func TestStore_UpdateBudgetWithCategories_MissingBudgetRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	budget := model.NewBudget("Essentials", 1000, model.PeriodMonthly)
	require.NoError(t, store.CreateBudget(ctx, budget))
	require.NoError(t, store.AddCategoryToBudget(ctx, budget.ID, "CAT_0_default3"))

	// Updating through a budget value whose id does not exist must fail and
	// must not disturb the existing associations.
	ghost := model.NewBudget("Ghost", 1, model.PeriodMonthly)
	err := store.UpdateBudgetWithCategories(ctx, ghost, []string{"CAT_0_default4"})
	require.Error(t, err)

	ids, err := store.GetBudgetCategoryIDs(ctx, budget.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT_0_default3"}, ids, "failed update must leave associations untouched")
}

func TestStore_DeleteBudgetRemovesAssociations(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	budget := model.NewBudget("Essentials", 1000, model.PeriodMonthly)
	require.NoError(t, store.CreateBudget(ctx, budget))
	require.NoError(t, store.AddCategoryToBudget(ctx, budget.ID, "CAT_0_default3"))

	require.NoError(t, store.DeleteBudget(ctx, budget.ID))

	ids, err := store.GetBudgetCategoryIDs(ctx, budget.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
