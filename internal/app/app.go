// Package app wires the storage and service layers into one composition
// context. It replaces a process-wide service locator: an App is constructed
// once at startup and handed to whoever needs services, so there is no hidden
// global mutable state. Lazy singleton creation is guarded so concurrent
// first access cannot instantiate a service twice.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/analytics"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/config"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/service"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/storage"
)

// The concrete store must satisfy the service-layer contract.
var _ service.Storage = (*storage.Store)(nil)

// App owns the store and resolves each service exactly once.
type App struct {
	cfg   config.Config
	store *storage.Store

	walletsOnce      sync.Once
	wallets          *service.WalletService
	budgetsOnce      sync.Once
	budgets          *service.BudgetService
	goalsOnce        sync.Once
	goals            *service.GoalService
	transactionsOnce sync.Once
	transactions     *service.TransactionService
	categoriesOnce   sync.Once
	categories       *service.CategoryService

	budgetCalcOnce sync.Once
	budgetCalc     *analytics.BudgetCalculationService
	goalProgOnce   sync.Once
	goalProg       *analytics.GoalProgressService
	txnFilterOnce  sync.Once
	txnFilter      *analytics.TransactionFilterService
}

// New opens the configured database, runs migrations, and returns the
// composition context.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := storage.NewStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}
	return &App{cfg: cfg, store: store}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}

// Wallets returns the wallet service singleton.
func (a *App) Wallets() *service.WalletService {
	a.walletsOnce.Do(func() {
		a.wallets = service.NewWalletService(a.store)
	})
	return a.wallets
}

// Budgets returns the budget service singleton.
func (a *App) Budgets() *service.BudgetService {
	a.budgetsOnce.Do(func() {
		a.budgets = service.NewBudgetService(a.store)
	})
	return a.budgets
}

// Goals returns the goal service singleton.
func (a *App) Goals() *service.GoalService {
	a.goalsOnce.Do(func() {
		a.goals = service.NewGoalService(a.store)
	})
	return a.goals
}

// Transactions returns the transaction service singleton.
func (a *App) Transactions() *service.TransactionService {
	a.transactionsOnce.Do(func() {
		a.transactions = service.NewTransactionService(a.store)
	})
	return a.transactions
}

// Categories returns the category service singleton.
func (a *App) Categories() *service.CategoryService {
	a.categoriesOnce.Do(func() {
		a.categories = service.NewCategoryService(a.store)
	})
	return a.categories
}

// BudgetCalculation returns the budget aggregate calculator singleton.
func (a *App) BudgetCalculation() *analytics.BudgetCalculationService {
	a.budgetCalcOnce.Do(func() {
		a.budgetCalc = analytics.NewBudgetCalculationService(a.Transactions())
	})
	return a.budgetCalc
}

// GoalProgress returns the goal progress calculator singleton.
func (a *App) GoalProgress() *analytics.GoalProgressService {
	a.goalProgOnce.Do(func() {
		a.goalProg = analytics.NewGoalProgressService(a.Goals(), a.cfg.Goals.PriorityThreshold)
	})
	return a.goalProg
}

// TransactionFilter returns the in-memory transaction filter singleton.
func (a *App) TransactionFilter() *analytics.TransactionFilterService {
	a.txnFilterOnce.Do(func() {
		a.txnFilter = analytics.NewTransactionFilterService()
	})
	return a.txnFilter
}
