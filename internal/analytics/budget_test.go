package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/analytics"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/service"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/testutil"
)

func TestBudgetCalculation_Summarize(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	calc := analytics.NewBudgetCalculationService(service.NewTransactionService(store))

	today := time.Now().Format(model.DateLayout)
	testutil.SeedTransaction(t, store, "food", 300, false, "WAL_A", "CAT_0_default3", today+" 10:00:00")
	testutil.SeedTransaction(t, store, "more food", 100, false, "WAL_A", "CAT_0_default3", today+" 12:00:00")
	// Income and other-wallet records must not count as spend.
	testutil.SeedTransaction(t, store, "salary", 5000, true, "WAL_A", "CAT_0_default1", today+" 09:00:00")
	testutil.SeedTransaction(t, store, "elsewhere", 999, false, "WAL_B", "CAT_0_default3", today+" 11:00:00")

	budget := model.NewBudget("Food", 800, model.PeriodCustom)
	budget.StartDate = today
	budget.EndDate = today
	budget.WalletID = "WAL_A"
	budget.CategoryID = "CAT_0_default3"

	summary, err := calc.Summarize(ctx, budget)
	require.NoError(t, err)
	assert.InDelta(t, 400, summary.TotalSpent, 0.001)
	assert.InDelta(t, 50, summary.Percentage, 0.001)
	assert.InDelta(t, 400, summary.Remaining, 0.001)
}

func TestBudgetCalculation_ZeroLimit(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	calc := analytics.NewBudgetCalculationService(service.NewTransactionService(store))

	today := time.Now().Format(model.DateLayout)
	testutil.SeedTransaction(t, store, "food", 50, false, "WAL_A", "CAT_0_default3", today+" 10:00:00")

	budget := model.NewBudget("Zero", 0, model.PeriodCustom)
	budget.StartDate = today
	budget.EndDate = today

	summary, err := calc.Summarize(ctx, budget)
	require.NoError(t, err)
	assert.Zero(t, summary.Percentage, "zero limit must yield zero percentage, not a fault")
	assert.InDelta(t, 50, summary.TotalSpent, 0.001)
	assert.Zero(t, summary.Remaining)
}

func TestBudgetCalculation_OverspendCapsAtHundred(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	calc := analytics.NewBudgetCalculationService(service.NewTransactionService(store))

	today := time.Now().Format(model.DateLayout)
	testutil.SeedTransaction(t, store, "splurge", 900, false, "WAL_A", "", today+" 10:00:00")

	budget := model.NewBudget("Tight", 300, model.PeriodCustom)
	budget.StartDate = today
	budget.EndDate = today

	summary, err := calc.Summarize(ctx, budget)
	require.NoError(t, err)
	assert.InDelta(t, 100, summary.Percentage, 0.001)
	assert.Zero(t, summary.Remaining)
}

func TestBudgetCalculation_AccountWideBudget(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	calc := analytics.NewBudgetCalculationService(service.NewTransactionService(store))

	today := time.Now().Format(model.DateLayout)
	testutil.SeedTransaction(t, store, "a", 10, false, "WAL_A", "", today+" 10:00:00")
	testutil.SeedTransaction(t, store, "b", 15, false, "WAL_B", "", today+" 11:00:00")

	// No wallet id: the budget is account-wide and sees both wallets.
	budget := model.NewBudget("All", 100, model.PeriodCustom)
	budget.StartDate = today
	budget.EndDate = today

	summary, err := calc.Summarize(ctx, budget)
	require.NoError(t, err)
	assert.InDelta(t, 25, summary.TotalSpent, 0.001)
}
