package model

import (
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ID prefixes, one per entity kind.
const (
	walletIDPrefix      = "WAL"
	budgetIDPrefix      = "BUD"
	goalIDPrefix        = "GOL"
	transactionIDPrefix = "TXN"
	categoryIDPrefix    = "CAT"
)

var idClock struct {
	mu   sync.Mutex
	last int64
}

// newID produces "<PREFIX>_<unixMillis>_<8-char-hex>". The timestamp component
// is non-decreasing across sequential calls even if the system clock steps
// backwards; the random suffix makes same-millisecond collisions practically
// impossible.
func newID(prefix string) string {
	idClock.mu.Lock()
	millis := time.Now().UnixMilli()
	if millis < idClock.last {
		millis = idClock.last
	}
	idClock.last = millis
	idClock.mu.Unlock()

	u := uuid.New()
	return fmt.Sprintf("%s_%d_%s", prefix, millis, hex.EncodeToString(u[:4]))
}

// NewWalletID generates a unique wallet identifier.
func NewWalletID() string { return newID(walletIDPrefix) }

// NewBudgetID generates a unique budget identifier.
func NewBudgetID() string { return newID(budgetIDPrefix) }

// NewGoalID generates a unique goal identifier.
func NewGoalID() string { return newID(goalIDPrefix) }

// NewTransactionID generates a unique transaction identifier.
func NewTransactionID() string { return newID(transactionIDPrefix) }

// NewCategoryID generates a unique category identifier.
func NewCategoryID() string { return newID(categoryIDPrefix) }
