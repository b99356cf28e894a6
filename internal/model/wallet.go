package model

// Wallet represents a spendable account. Color is a display tag only and is
// never validated.
type Wallet struct {
	Funds
	Color string
}

// NewWallet creates a wallet with a generated id and the given starting balance.
func NewWallet(name string, balance float64, color string) *Wallet {
	return &Wallet{
		Funds: Funds{ID: NewWalletID(), Name: name, Balance: balance},
		Color: color,
	}
}
