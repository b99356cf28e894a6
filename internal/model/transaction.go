package model

import "time"

// Income flag values. The flag is float-typed in storage (0.0 or 1.0), a shape
// the rest of the system depends on, so it is not modeled as a bool here.
const (
	FlagExpense = 0.0
	FlagIncome  = 1.0
)

// Transaction is a single income or expense record. Amount is always positive;
// the direction is carried by Income.
type Transaction struct {
	ID         string
	Name       string
	CategoryID string
	Amount     float64
	Income     float64 // FlagIncome or FlagExpense
	WalletID   string
	CreateTime string // yyyy-MM-dd HH:mm:ss
}

// NewTransaction creates a transaction with a generated id and the current
// time as its creation timestamp.
func NewTransaction(name string, amount float64, income bool, walletID, categoryID string) *Transaction {
	flag := FlagExpense
	if income {
		flag = FlagIncome
	}
	return &Transaction{
		ID:         NewTransactionID(),
		Name:       name,
		CategoryID: categoryID,
		Amount:     amount,
		Income:     flag,
		WalletID:   walletID,
		CreateTime: time.Now().Format(DateTimeLayout),
	}
}

// IsIncome reports whether the transaction adds funds to its wallet.
func (t *Transaction) IsIncome() bool {
	return t.Income == FlagIncome
}
