package model

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewID_Uniqueness(t *testing.T) {
	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		seen[NewTransactionID()] = struct{}{}
	}
	if len(seen) != n {
		t.Errorf("generated %d ids, got %d distinct", n, len(seen))
	}
}

func TestNewID_Prefixes(t *testing.T) {
	tests := []struct {
		name     string
		generate func() string
		prefix   string
	}{
		{"wallet", NewWalletID, "WAL_"},
		{"budget", NewBudgetID, "BUD_"},
		{"goal", NewGoalID, "GOL_"},
		{"transaction", NewTransactionID, "TXN_"},
		{"category", NewCategoryID, "CAT_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.generate()
			if !strings.HasPrefix(id, tt.prefix) {
				t.Errorf("id %q does not start with %q", id, tt.prefix)
			}
		})
	}
}

func TestNewID_Format(t *testing.T) {
	id := NewWalletID()
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("id %q has %d parts, want 3", id, len(parts))
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		t.Errorf("timestamp component %q is not numeric: %v", parts[1], err)
	}
	if len(parts[2]) != 8 {
		t.Errorf("random suffix %q has length %d, want 8", parts[2], len(parts[2]))
	}
}

func TestNewID_TimestampNonDecreasing(t *testing.T) {
	prev := int64(0)
	for i := 0; i < 100; i++ {
		parts := strings.Split(NewGoalID(), "_")
		millis, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			t.Fatalf("timestamp component %q is not numeric: %v", parts[1], err)
		}
		if millis < prev {
			t.Fatalf("timestamp went backwards: %d after %d", millis, prev)
		}
		prev = millis
	}
}
