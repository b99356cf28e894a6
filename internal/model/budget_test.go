package model

import (
	"testing"
	"time"
)

func TestPeriodType_Valid(t *testing.T) {
	for _, p := range []PeriodType{PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodCustom} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if PeriodType("DAILY").Valid() {
		t.Error("DAILY should not be valid")
	}
}

func TestBudget_Window(t *testing.T) {
	// A Wednesday.
	now := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		budget   Budget
		wantFrom string
		wantTo   string
	}{
		{
			name:     "custom uses explicit dates",
			budget:   Budget{PeriodType: PeriodCustom, StartDate: "2024-01-01", EndDate: "2024-06-30"},
			wantFrom: "2024-01-01",
			wantTo:   "2024-06-30",
		},
		{
			name:     "weekly window is monday through sunday",
			budget:   Budget{PeriodType: PeriodWeekly},
			wantFrom: "2024-03-11",
			wantTo:   "2024-03-17",
		},
		{
			name:     "monthly window covers the calendar month",
			budget:   Budget{PeriodType: PeriodMonthly},
			wantFrom: "2024-03-01",
			wantTo:   "2024-03-31",
		},
		{
			name:     "yearly window covers the calendar year",
			budget:   Budget{PeriodType: PeriodYearly},
			wantFrom: "2024-01-01",
			wantTo:   "2024-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.budget.Window(now)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("Window() = (%q, %q), want (%q, %q)", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}
