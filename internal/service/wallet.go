package service

import (
	"context"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// WalletService manages wallet entities.
type WalletService struct {
	storage Storage
}

var _ CRUD[model.Wallet] = (*WalletService)(nil)

// NewWalletService creates a wallet service over the given storage.
func NewWalletService(storage Storage) *WalletService {
	return &WalletService{storage: storage}
}

// Create stores a new wallet.
func (s *WalletService) Create(ctx context.Context, wallet *model.Wallet) error {
	if err := s.storage.CreateWallet(ctx, wallet); err != nil {
		common.LogError(err, "failed to create wallet", common.Fields{"wallet": wallet.ID})
		return fmt.Errorf("create wallet: %w", err)
	}
	return nil
}

// Get returns the wallet with the given id, or (nil, nil) when absent.
func (s *WalletService) Get(ctx context.Context, id string) (*model.Wallet, error) {
	wallet, err := s.storage.GetWallet(ctx, id)
	if err != nil {
		common.LogError(err, "failed to read wallet", common.Fields{"wallet": id})
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

// List returns all wallets.
func (s *WalletService) List(ctx context.Context) ([]model.Wallet, error) {
	wallets, err := s.storage.ListWallets(ctx)
	if err != nil {
		common.LogError(err, "failed to list wallets", nil)
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}

// Update overwrites the wallet keyed by its id. It fails with
// common.ErrNotFound when the wallet does not exist.
func (s *WalletService) Update(ctx context.Context, wallet *model.Wallet) error {
	if err := s.storage.UpdateWallet(ctx, wallet); err != nil {
		common.LogError(err, "failed to update wallet", common.Fields{"wallet": wallet.ID})
		return fmt.Errorf("update wallet: %w", err)
	}
	return nil
}

// Delete removes the wallet. Deleting a non-existent id is a no-op.
func (s *WalletService) Delete(ctx context.Context, id string) error {
	if err := s.storage.DeleteWallet(ctx, id); err != nil {
		common.LogError(err, "failed to delete wallet", common.Fields{"wallet": id})
		return fmt.Errorf("delete wallet: %w", err)
	}
	return nil
}

// NetBalance returns the wallet's starting balance plus its income total minus
// its expense total. It fails with common.ErrNotFound for an unknown wallet.
func (s *WalletService) NetBalance(ctx context.Context, id string) (float64, error) {
	wallet, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if wallet == nil {
		return 0, fmt.Errorf("%w: wallet %s", common.ErrNotFound, id)
	}

	income, expenses, err := s.storage.WalletFlow(ctx, id)
	if err != nil {
		common.LogError(err, "failed to compute wallet flow", common.Fields{"wallet": id})
		return 0, fmt.Errorf("wallet net balance: %w", err)
	}
	return wallet.Balance + income - expenses, nil
}
