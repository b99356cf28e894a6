package app

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/config"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/service"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.Config{}
	cfg.Database.Path = ":memory:"

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestApp_ServicesAreSingletons(t *testing.T) {
	a := newTestApp(t)

	assert.Same(t, a.Wallets(), a.Wallets())
	assert.Same(t, a.Budgets(), a.Budgets())
	assert.Same(t, a.Goals(), a.Goals())
	assert.Same(t, a.Transactions(), a.Transactions())
	assert.Same(t, a.Categories(), a.Categories())
	assert.Same(t, a.BudgetCalculation(), a.BudgetCalculation())
	assert.Same(t, a.GoalProgress(), a.GoalProgress())
	assert.Same(t, a.TransactionFilter(), a.TransactionFilter())
}

func TestApp_ConcurrentFirstAccess(t *testing.T) {
	a := newTestApp(t)

	const callers = 16
	results := make([]*service.WalletService, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = a.Wallets()
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i], "concurrent first access must resolve one instance")
	}
}

func TestApp_MigratesOnStartup(t *testing.T) {
	a := newTestApp(t)

	categories, err := a.Categories().List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, categories, "startup migration seeds default categories")
}
