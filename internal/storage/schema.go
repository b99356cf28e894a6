package storage

import (
	"context"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// schema is the descriptor handed to the generic engine: the table name, its
// columns in declaration order (the id column first), and the closures that
// map an entity to column values and a scanned row back to an entity. Field
// names map to column names exactly; a descriptor that disagrees with the
// migrated table is rejected by verify before any row operation runs.
type schema[T any] struct {
	id      func(*T) string
	values  func(*T) []any
	scan    func(scanner) (T, error)
	table   string
	columns []string
}

// verify checks every descriptor column against the live table definition so
// that field/column mismatches surface at startup rather than mid-operation.
func (s schema[T]) verify(ctx context.Context, q queryable) error {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", s.table))
	if err != nil {
		return fmt.Errorf("failed to read table info for %s: %w", s.table, err)
	}
	defer func() { _ = rows.Close() }()

	present := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal any
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return fmt.Errorf("failed to scan table info for %s: %w", s.table, err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read table info for %s: %w", s.table, err)
	}
	if len(present) == 0 {
		return fmt.Errorf("%w: table %s does not exist", ErrSchemaMismatch, s.table)
	}

	for _, col := range s.columns {
		if !present[col] {
			return fmt.Errorf("%w: table %s has no column %s", ErrSchemaMismatch, s.table, col)
		}
	}
	return nil
}

var walletSchema = schema[model.Wallet]{
	table:   "wallets",
	columns: []string{"id", "name", "balance", "color"},
	id:      func(w *model.Wallet) string { return w.ID },
	values: func(w *model.Wallet) []any {
		return []any{w.ID, w.Name, w.Balance, w.Color}
	},
	scan: func(row scanner) (model.Wallet, error) {
		var w model.Wallet
		err := row.Scan(&w.ID, &w.Name, &w.Balance, &w.Color)
		return w, err
	},
}

var budgetSchema = schema[model.Budget]{
	table: "budgets",
	columns: []string{
		"id", "name", "limit_amount", "balance", "start_date",
		"end_date", "period_type", "wallet_id", "category_id",
	},
	id: func(b *model.Budget) string { return b.ID },
	values: func(b *model.Budget) []any {
		return []any{
			b.ID, b.Name, b.LimitAmount, b.Balance, b.StartDate,
			b.EndDate, string(b.PeriodType), b.WalletID, b.CategoryID,
		}
	},
	scan: func(row scanner) (model.Budget, error) {
		var (
			b          model.Budget
			periodType string
		)
		err := row.Scan(
			&b.ID, &b.Name, &b.LimitAmount, &b.Balance, &b.StartDate,
			&b.EndDate, &periodType, &b.WalletID, &b.CategoryID,
		)
		b.PeriodType = model.PeriodType(periodType)
		return b, err
	},
}

var goalSchema = schema[model.Goal]{
	table:   "goals",
	columns: []string{"id", "name", "target", "balance", "deadline", "priority", "create_time"},
	id:      func(g *model.Goal) string { return g.ID },
	values: func(g *model.Goal) []any {
		return []any{g.ID, g.Name, g.Target, g.Balance, g.Deadline, g.Priority, g.CreateTime}
	},
	scan: func(row scanner) (model.Goal, error) {
		var g model.Goal
		err := row.Scan(&g.ID, &g.Name, &g.Target, &g.Balance, &g.Deadline, &g.Priority, &g.CreateTime)
		return g, err
	},
}

var transactionSchema = schema[model.Transaction]{
	table:   "transaction_records",
	columns: []string{"id", "name", "category_id", "amount", "income", "wallet_id", "create_time"},
	id:      func(t *model.Transaction) string { return t.ID },
	values: func(t *model.Transaction) []any {
		return []any{t.ID, t.Name, t.CategoryID, t.Amount, t.Income, t.WalletID, t.CreateTime}
	},
	scan: func(row scanner) (model.Transaction, error) {
		var t model.Transaction
		err := row.Scan(&t.ID, &t.Name, &t.CategoryID, &t.Amount, &t.Income, &t.WalletID, &t.CreateTime)
		return t, err
	},
}

var categorySchema = schema[model.Category]{
	table:   "categories",
	columns: []string{"id", "name", "description", "type", "is_custom"},
	id:      func(c *model.Category) string { return c.ID },
	values: func(c *model.Category) []any {
		return []any{c.ID, c.Name, c.Description, string(c.Type), c.Custom}
	},
	scan: func(row scanner) (model.Category, error) {
		var (
			c            model.Category
			categoryType string
		)
		err := row.Scan(&c.ID, &c.Name, &c.Description, &categoryType, &c.Custom)
		c.Type = model.CategoryType(categoryType)
		return c, err
	},
}
