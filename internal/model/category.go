package model

// CategoryType indicates whether a category classifies income or expense
// transactions.
type CategoryType string

const (
	// CategoryTypeIncome marks categories for income transactions.
	CategoryTypeIncome CategoryType = "INCOME"
	// CategoryTypeExpense marks categories for expense transactions.
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// Valid reports whether c is a known category type.
func (c CategoryType) Valid() bool {
	return c == CategoryTypeIncome || c == CategoryTypeExpense
}

// Category classifies transactions. Custom distinguishes user-defined
// categories from the seeded defaults.
type Category struct {
	ID          string
	Name        string
	Description string
	Type        CategoryType
	Custom      bool
}

// NewCategory creates a user-defined category with a generated id.
func NewCategory(name, description string, categoryType CategoryType) *Category {
	return &Category{
		ID:          NewCategoryID(),
		Name:        name,
		Description: description,
		Type:        categoryType,
		Custom:      true,
	}
}
