package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrSchemaMismatch    = errors.New("schema descriptor mismatch")
	ErrInvalidWallet     = errors.New("invalid wallet")
	ErrInvalidBudget     = errors.New("invalid budget")
	ErrInvalidGoal       = errors.New("invalid goal")
	ErrInvalidTxn        = errors.New("invalid transaction record")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidDateBounds = errors.New("date from must not be after date to")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateWallet validates a wallet.
func validateWallet(w *model.Wallet) error {
	if w == nil {
		return fmt.Errorf("%w: wallet", ErrNilParameter)
	}
	if w.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidWallet)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidWallet)
	}
	return nil
}

// validateBudget validates a budget.
func validateBudget(b *model.Budget) error {
	if b == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if b.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidBudget)
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidBudget)
	}
	if !b.PeriodType.Valid() {
		return fmt.Errorf("%w: period type %q", ErrInvalidBudget, b.PeriodType)
	}
	if b.LimitAmount < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidBudget)
	}
	return nil
}

// validateGoal validates a goal.
func validateGoal(g *model.Goal) error {
	if g == nil {
		return fmt.Errorf("%w: goal", ErrNilParameter)
	}
	if g.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidGoal)
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGoal)
	}
	if g.Target < 0 {
		return fmt.Errorf("%w: negative target", ErrInvalidGoal)
	}
	return nil
}

// validateTransaction validates a transaction record.
func validateTransaction(t *model.Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if t.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTxn)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTxn)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTxn)
	}
	if t.Income != model.FlagIncome && t.Income != model.FlagExpense {
		return fmt.Errorf("%w: income flag must be 0.0 or 1.0", ErrInvalidTxn)
	}
	if t.CreateTime == "" {
		return fmt.Errorf("%w: missing create time", ErrInvalidTxn)
	}
	return nil
}

// validateCategory validates a category.
func validateCategory(c *model.Category) error {
	if c == nil {
		return fmt.Errorf("%w: category", ErrNilParameter)
	}
	if c.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: type %q", ErrInvalidCategory, c.Type)
	}
	return nil
}
