// Package model defines the financial entities shared across the application.
package model

// Date/time layouts used for storage and internal passing. Display formatting
// is the presentation layer's concern and never enters this package.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Funds is the base shape shared by every balance-bearing entity. The meaning
// of Balance varies by entity: spendable funds for a wallet, amount spent so
// far for a budget, amount saved so far for a goal.
type Funds struct {
	ID      string
	Name    string
	Balance float64
}
