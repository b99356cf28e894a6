package model

import "time"

// PeriodType describes the recurrence window of a budget.
type PeriodType string

const (
	// PeriodWeekly budgets reset every week.
	PeriodWeekly PeriodType = "WEEKLY"
	// PeriodMonthly budgets reset every month.
	PeriodMonthly PeriodType = "MONTHLY"
	// PeriodYearly budgets reset every year.
	PeriodYearly PeriodType = "YEARLY"
	// PeriodCustom budgets use an explicit start/end date pair.
	PeriodCustom PeriodType = "CUSTOM"
)

// Valid reports whether p is one of the known period types.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodCustom:
		return true
	}
	return false
}

// Budget tracks spending against a limit. Balance holds the amount spent so
// far. WalletID empty means the budget is account-wide; CategoryID set
// restricts the budget to that category's transactions.
type Budget struct {
	Funds
	LimitAmount float64
	StartDate   string // yyyy-MM-dd, may be empty for recurring periods
	EndDate     string // yyyy-MM-dd, may be empty for recurring periods
	PeriodType  PeriodType
	WalletID    string
	CategoryID  string
}

// NewBudget creates a budget with a generated id and zero spent balance.
func NewBudget(name string, limit float64, period PeriodType) *Budget {
	return &Budget{
		Funds:       Funds{ID: NewBudgetID(), Name: name},
		LimitAmount: limit,
		PeriodType:  period,
	}
}

// Window returns the inclusive date bounds the budget applies to. Custom
// budgets use their explicit dates; recurring budgets derive the window
// containing now. Either bound may be empty for an open-ended custom budget.
func (b *Budget) Window(now time.Time) (from, to string) {
	if b.PeriodType == PeriodCustom || b.PeriodType == "" {
		return b.StartDate, b.EndDate
	}

	var start, end time.Time
	switch b.PeriodType {
	case PeriodWeekly:
		// Monday-based week.
		offset := (int(now.Weekday()) + 6) % 7
		start = now.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)
	case PeriodMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	case PeriodYearly:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location())
	}
	return start.Format(DateLayout), end.Format(DateLayout)
}
