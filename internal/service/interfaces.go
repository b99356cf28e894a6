// Package service provides the entity-level API the presentation layers call.
// Services wrap the storage layer with validation and logging and return
// explicit errors, so callers can always tell a genuinely empty result from a
// failed read.
package service

import (
	"context"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Wallet operations
	CreateWallet(ctx context.Context, wallet *model.Wallet) error
	GetWallet(ctx context.Context, id string) (*model.Wallet, error)
	ListWallets(ctx context.Context) ([]model.Wallet, error)
	UpdateWallet(ctx context.Context, wallet *model.Wallet) error
	DeleteWallet(ctx context.Context, id string) error

	// Budget operations
	CreateBudget(ctx context.Context, budget *model.Budget) error
	GetBudget(ctx context.Context, id string) (*model.Budget, error)
	ListBudgets(ctx context.Context) ([]model.Budget, error)
	UpdateBudget(ctx context.Context, budget *model.Budget) error
	DeleteBudget(ctx context.Context, id string) error
	AddCategoryToBudget(ctx context.Context, budgetID, categoryID string) error
	RemoveAllCategoriesFromBudget(ctx context.Context, budgetID string) error
	GetBudgetCategoryIDs(ctx context.Context, budgetID string) ([]string, error)
	UpdateBudgetWithCategories(ctx context.Context, budget *model.Budget, categoryIDs []string) error

	// Goal operations
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoal(ctx context.Context, id string) (*model.Goal, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, id string) error

	// Transaction operations
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context, criteria model.TransactionCriteria) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	TotalIncome(ctx context.Context) (float64, error)
	TotalExpenses(ctx context.Context) (float64, error)
	WalletFlow(ctx context.Context, walletID string) (income, expenses float64, err error)

	// Category operations
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListCategoriesByType(ctx context.Context, categoryType model.CategoryType) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// CRUD is the uniform contract every entity service implements. Create stores
// a new entity, Get returns (nil, nil) for absence, Update fails when the id
// does not exist, and Delete is idempotent.
type CRUD[T any] interface {
	Create(ctx context.Context, entity *T) error
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) error
}
