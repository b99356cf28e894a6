package model

import "testing"

func TestCriteria_HasSearchTermAndFilters(t *testing.T) {
	empty := NewCriteria().Build()
	if empty.HasSearchTerm() {
		t.Error("empty criteria should have no search term")
	}
	if empty.HasFilters() {
		t.Error("empty criteria should have no filters")
	}

	search := NewCriteria().WithTransactionID("TXN_1_abc").Build()
	if !search.HasSearchTerm() {
		t.Error("criteria with transaction id should have a search term")
	}
	if search.HasFilters() {
		t.Error("transaction id alone should not count as a filter")
	}

	blank := NewCriteria().WithTransactionID("").Build()
	if blank.HasSearchTerm() {
		t.Error("blank transaction id should not count as a search term")
	}

	filtered := NewCriteria().WithWallet("WAL_1_abc").Build()
	if filtered.HasSearchTerm() {
		t.Error("wallet filter should not count as a search term")
	}
	if !filtered.HasFilters() {
		t.Error("wallet filter should count as a filter")
	}
}

func TestCriteria_BuildIsIndependentOfBuilder(t *testing.T) {
	b := NewCriteria().WithWallet("WAL_1_abc")
	first := b.Build()
	b.WithWallet("WAL_2_def")

	got, ok := first.WalletID()
	if !ok || got != "WAL_1_abc" {
		t.Errorf("built criteria changed after builder mutation: got %q", got)
	}
}

func TestCriteria_Matches(t *testing.T) {
	txn := &Transaction{
		ID:         "TXN_1_abc",
		Name:       "groceries",
		CategoryID: "CAT_1_abc",
		Amount:     120,
		Income:     FlagExpense,
		WalletID:   "WAL_1_abc",
		CreateTime: "2024-03-15 12:30:00",
	}

	tests := []struct {
		name     string
		criteria TransactionCriteria
		want     bool
	}{
		{"empty matches everything", NewCriteria().Build(), true},
		{"exact id", NewCriteria().WithTransactionID("TXN_1_abc").Build(), true},
		{"wrong id", NewCriteria().WithTransactionID("TXN_2_def").Build(), false},
		{"amount bounds inclusive", NewCriteria().WithMinAmount(120).WithMaxAmount(120).Build(), true},
		{"below min amount", NewCriteria().WithMinAmount(121).Build(), false},
		{"above max amount", NewCriteria().WithMaxAmount(119).Build(), false},
		{"category match", NewCriteria().WithCategory("CAT_1_abc").Build(), true},
		{"wallet mismatch", NewCriteria().WithWallet("WAL_2_def").Build(), false},
		{"expense flag", NewCriteria().WithIncome(FlagExpense).Build(), true},
		{"income flag", NewCriteria().WithIncome(FlagIncome).Build(), false},
		{"date range inclusive", NewCriteria().WithDateFrom("2024-03-01").WithDateTo("2024-03-15 23:59:59").Build(), true},
		{"before date from", NewCriteria().WithDateFrom("2024-03-16").Build(), false},
		{"after date to", NewCriteria().WithDateTo("2024-03-14 23:59:59").Build(), false},
		{"all fields combined", NewCriteria().
			WithMinAmount(100).
			WithMaxAmount(200).
			WithCategory("CAT_1_abc").
			WithWallet("WAL_1_abc").
			WithIncome(FlagExpense).
			WithDateFrom("2024-03-01").
			WithDateTo("2024-03-31 23:59:59").
			Build(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Matches(txn); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
