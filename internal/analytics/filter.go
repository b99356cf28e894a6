package analytics

import (
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// TransactionFilterService applies criteria to already-loaded transaction
// sequences, for list views that filter without a storage round-trip.
type TransactionFilterService struct{}

// NewTransactionFilterService creates a transaction filter service.
func NewTransactionFilterService() *TransactionFilterService {
	return &TransactionFilterService{}
}

// Apply returns the transactions satisfying every set criteria field,
// preserving input order. Pure filtering with no aggregation.
func (s *TransactionFilterService) Apply(criteria model.TransactionCriteria, txns []model.Transaction) []model.Transaction {
	if !criteria.HasSearchTerm() && !criteria.HasFilters() {
		return txns
	}

	filtered := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		t := txn
		if criteria.Matches(&t) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}
