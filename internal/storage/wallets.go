package storage

import (
	"context"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// CreateWallet inserts a new wallet.
func (s *Store) CreateWallet(ctx context.Context, wallet *model.Wallet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateWallet(wallet); err != nil {
		return err
	}
	return s.wallets.insert(ctx, s.db, wallet)
}

// GetWallet returns the wallet with the given id, or (nil, nil) when absent.
func (s *Store) GetWallet(ctx context.Context, id string) (*model.Wallet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.wallets.get(ctx, s.db, id)
}

// ListWallets returns all wallets.
func (s *Store) ListWallets(ctx context.Context) ([]model.Wallet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.wallets.list(ctx, s.db, "")
}

// UpdateWallet overwrites the wallet row keyed by its id. It fails with
// common.ErrNotFound when the wallet does not exist.
func (s *Store) UpdateWallet(ctx context.Context, wallet *model.Wallet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateWallet(wallet); err != nil {
		return err
	}
	return s.wallets.update(ctx, s.db, wallet)
}

// DeleteWallet removes the wallet. Deleting a non-existent id is a no-op.
// Transactions referencing the wallet are deliberately left untouched.
func (s *Store) DeleteWallet(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.wallets.remove(ctx, s.db, id)
}
