// Package analytics computes derived aggregates from current entity state.
// Nothing here talks to storage directly or caches results; every call
// recomputes through the entity services.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/service"
)

// BudgetSummary is the spend picture of one budget.
type BudgetSummary struct {
	BudgetID   string
	TotalSpent float64
	Percentage float64 // 0..100, capped
	Remaining  float64 // never negative
}

// BudgetCalculationService computes budget spend tracking from transaction
// reads.
type BudgetCalculationService struct {
	transactions *service.TransactionService
}

// NewBudgetCalculationService creates a budget calculator over the
// transaction service.
func NewBudgetCalculationService(transactions *service.TransactionService) *BudgetCalculationService {
	return &BudgetCalculationService{transactions: transactions}
}

// Summarize computes the spend, percentage-of-limit, and remaining headroom
// for a budget. Spent sums expense transactions inside the budget's window,
// scoped by its wallet and category constraints when present. A zero limit
// yields a zero percentage rather than a division fault.
func (s *BudgetCalculationService) Summarize(ctx context.Context, budget *model.Budget) (BudgetSummary, error) {
	if budget == nil {
		return BudgetSummary{}, fmt.Errorf("budget cannot be nil")
	}

	builder := model.NewCriteria().WithIncome(model.FlagExpense)
	if budget.WalletID != "" {
		builder.WithWallet(budget.WalletID)
	}
	if budget.CategoryID != "" {
		builder.WithCategory(budget.CategoryID)
	}
	from, to := budget.Window(time.Now())
	if from != "" {
		builder.WithDateFrom(from)
	}
	if to != "" {
		// Stored create times carry a time component, so push the upper bound
		// to the end of the day to keep it inclusive.
		builder.WithDateTo(to + " 23:59:59")
	}

	txns, err := s.transactions.List(ctx, builder.Build())
	if err != nil {
		return BudgetSummary{}, fmt.Errorf("budget summary: %w", err)
	}

	var spent float64
	for _, txn := range txns {
		spent += txn.Amount
	}

	summary := BudgetSummary{
		BudgetID:   budget.ID,
		TotalSpent: spent,
		Remaining:  budget.LimitAmount - spent,
	}
	if summary.Remaining < 0 {
		summary.Remaining = 0
	}
	if budget.LimitAmount > 0 {
		summary.Percentage = spent / budget.LimitAmount * 100
		if summary.Percentage > 100 {
			summary.Percentage = 100
		}
	}
	return summary, nil
}
