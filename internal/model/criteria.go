package model

// TransactionCriteria is an immutable filter specification for transaction
// queries. Absent fields impose no constraint; set fields are AND-combined by
// whoever applies the criteria. Criteria never imply an ordering.
//
// Date bounds are compared lexicographically as ISO strings, so callers must
// supply zero-padded yyyy-MM-dd / yyyy-MM-dd HH:mm:ss values.
type TransactionCriteria struct {
	transactionID *string
	minAmount     *float64
	maxAmount     *float64
	categoryID    *string
	walletID      *string
	income        *float64
	dateFrom      *string
	dateTo        *string
}

// CriteriaBuilder assembles a TransactionCriteria. The zero value is ready to
// use; Build returns a value that is independent of further builder mutation.
type CriteriaBuilder struct {
	c TransactionCriteria
}

// NewCriteria returns an empty criteria builder.
func NewCriteria() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

// WithTransactionID sets the exact-match id search term.
func (b *CriteriaBuilder) WithTransactionID(id string) *CriteriaBuilder {
	b.c.transactionID = &id
	return b
}

// WithMinAmount sets the inclusive lower amount bound.
func (b *CriteriaBuilder) WithMinAmount(amount float64) *CriteriaBuilder {
	b.c.minAmount = &amount
	return b
}

// WithMaxAmount sets the inclusive upper amount bound.
func (b *CriteriaBuilder) WithMaxAmount(amount float64) *CriteriaBuilder {
	b.c.maxAmount = &amount
	return b
}

// WithCategory restricts results to one category.
func (b *CriteriaBuilder) WithCategory(categoryID string) *CriteriaBuilder {
	b.c.categoryID = &categoryID
	return b
}

// WithWallet restricts results to one wallet.
func (b *CriteriaBuilder) WithWallet(walletID string) *CriteriaBuilder {
	b.c.walletID = &walletID
	return b
}

// WithIncome restricts results to one value of the income flag.
func (b *CriteriaBuilder) WithIncome(flag float64) *CriteriaBuilder {
	b.c.income = &flag
	return b
}

// WithDateFrom sets the inclusive lower bound on createTime.
func (b *CriteriaBuilder) WithDateFrom(date string) *CriteriaBuilder {
	b.c.dateFrom = &date
	return b
}

// WithDateTo sets the inclusive upper bound on createTime.
func (b *CriteriaBuilder) WithDateTo(date string) *CriteriaBuilder {
	b.c.dateTo = &date
	return b
}

// Build returns the assembled criteria.
func (b *CriteriaBuilder) Build() TransactionCriteria {
	return b.c
}

// TransactionID returns the id search term if set.
func (c TransactionCriteria) TransactionID() (string, bool) {
	if c.transactionID == nil {
		return "", false
	}
	return *c.transactionID, true
}

// MinAmount returns the inclusive lower amount bound if set.
func (c TransactionCriteria) MinAmount() (float64, bool) {
	if c.minAmount == nil {
		return 0, false
	}
	return *c.minAmount, true
}

// MaxAmount returns the inclusive upper amount bound if set.
func (c TransactionCriteria) MaxAmount() (float64, bool) {
	if c.maxAmount == nil {
		return 0, false
	}
	return *c.maxAmount, true
}

// CategoryID returns the category constraint if set.
func (c TransactionCriteria) CategoryID() (string, bool) {
	if c.categoryID == nil {
		return "", false
	}
	return *c.categoryID, true
}

// WalletID returns the wallet constraint if set.
func (c TransactionCriteria) WalletID() (string, bool) {
	if c.walletID == nil {
		return "", false
	}
	return *c.walletID, true
}

// Income returns the income flag constraint if set.
func (c TransactionCriteria) Income() (float64, bool) {
	if c.income == nil {
		return 0, false
	}
	return *c.income, true
}

// DateFrom returns the inclusive lower createTime bound if set.
func (c TransactionCriteria) DateFrom() (string, bool) {
	if c.dateFrom == nil {
		return "", false
	}
	return *c.dateFrom, true
}

// DateTo returns the inclusive upper createTime bound if set.
func (c TransactionCriteria) DateTo() (string, bool) {
	if c.dateTo == nil {
		return "", false
	}
	return *c.dateTo, true
}

// HasSearchTerm reports whether a non-empty transaction id term is set.
func (c TransactionCriteria) HasSearchTerm() bool {
	return c.transactionID != nil && *c.transactionID != ""
}

// HasFilters reports whether any filterable field besides the id term is set.
func (c TransactionCriteria) HasFilters() bool {
	return c.minAmount != nil || c.maxAmount != nil ||
		c.categoryID != nil || c.walletID != nil ||
		c.income != nil || c.dateFrom != nil || c.dateTo != nil
}

// Matches reports whether the transaction satisfies every set field.
func (c TransactionCriteria) Matches(t *Transaction) bool {
	if c.transactionID != nil && t.ID != *c.transactionID {
		return false
	}
	if c.minAmount != nil && t.Amount < *c.minAmount {
		return false
	}
	if c.maxAmount != nil && t.Amount > *c.maxAmount {
		return false
	}
	if c.categoryID != nil && t.CategoryID != *c.categoryID {
		return false
	}
	if c.walletID != nil && t.WalletID != *c.walletID {
		return false
	}
	if c.income != nil && t.Income != *c.income {
		return false
	}
	if c.dateFrom != nil && t.CreateTime < *c.dateFrom {
		return false
	}
	if c.dateTo != nil && t.CreateTime > *c.dateTo {
		return false
	}
	return true
}
