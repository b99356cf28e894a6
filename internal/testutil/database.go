// Package testutil provides helpers for tests that need a real store.
package testutil

import (
	"context"
	"testing"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/storage"
)

// SetupTestStore creates a migrated in-memory store that is closed when the
// test finishes.
func SetupTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.NewStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test store: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// SeedWallet creates and stores a wallet, failing the test on error.
func SeedWallet(t *testing.T, store *storage.Store, name string, balance float64) *model.Wallet {
	t.Helper()

	wallet := model.NewWallet(name, balance, "")
	if err := store.CreateWallet(context.Background(), wallet); err != nil {
		t.Fatalf("failed to seed wallet %q: %v", name, err)
	}
	return wallet
}

// SeedTransaction creates and stores a transaction, failing the test on error.
// createTime is optional; when empty the generated timestamp is kept.
func SeedTransaction(t *testing.T, store *storage.Store, name string, amount float64, income bool, walletID, categoryID, createTime string) *model.Transaction {
	t.Helper()

	txn := model.NewTransaction(name, amount, income, walletID, categoryID)
	if createTime != "" {
		txn.CreateTime = createTime
	}
	if err := store.CreateTransaction(context.Background(), txn); err != nil {
		t.Fatalf("failed to seed transaction %q: %v", name, err)
	}
	return txn
}
