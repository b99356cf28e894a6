package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS wallets (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					balance REAL NOT NULL DEFAULT 0,
					color TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS budgets (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					limit_amount REAL NOT NULL DEFAULT 0,
					balance REAL NOT NULL DEFAULT 0,
					start_date TEXT,
					end_date TEXT,
					period_type TEXT NOT NULL,
					wallet_id TEXT,
					category_id TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS goals (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					target REAL NOT NULL DEFAULT 0,
					balance REAL NOT NULL DEFAULT 0,
					deadline TEXT,
					priority INTEGER NOT NULL DEFAULT 0,
					create_time TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS transaction_records (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					category_id TEXT,
					amount REAL NOT NULL,
					income REAL NOT NULL DEFAULT 0,
					wallet_id TEXT,
					create_time TEXT NOT NULL
				)`,
				`CREATE INDEX idx_transaction_records_wallet ON transaction_records(wallet_id)`,
				`CREATE INDEX idx_transaction_records_category ON transaction_records(category_id)`,
				`CREATE INDEX idx_transaction_records_create_time ON transaction_records(create_time)`,

				`CREATE TABLE IF NOT EXISTS categories (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL UNIQUE,
					description TEXT,
					type TEXT NOT NULL,
					is_custom INTEGER NOT NULL DEFAULT 1
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add budget/category association table",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS budget_categories (
					budget_id TEXT NOT NULL,
					category_id TEXT NOT NULL,
					PRIMARY KEY (budget_id, category_id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_budget_categories_budget ON budget_categories(budget_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Seed default categories",
		Up: func(tx *sql.Tx) error {
			defaults := []struct {
				id, name, description, categoryType string
			}{
				{"CAT_0_default1", "Salary", "Regular employment income", "INCOME"},
				{"CAT_0_default2", "Other Income", "Income outside regular salary", "INCOME"},
				{"CAT_0_default3", "Food", "Groceries and dining", "EXPENSE"},
				{"CAT_0_default4", "Housing", "Rent, mortgage, and utilities", "EXPENSE"},
				{"CAT_0_default5", "Transport", "Commuting and travel", "EXPENSE"},
				{"CAT_0_default6", "Entertainment", "Leisure and recreation", "EXPENSE"},
				{"CAT_0_default7", "Other Expense", "Everything else", "EXPENSE"},
			}

			for _, c := range defaults {
				_, err := tx.Exec(`
					INSERT OR IGNORE INTO categories (id, name, description, type, is_custom)
					VALUES (?, ?, ?, ?, 0)
				`, c.id, c.name, c.description, c.categoryType)
				if err != nil {
					return fmt.Errorf("failed to seed category %s: %w", c.name, err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending migrations, then verifies every schema
// descriptor against the migrated tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		common.LogInfo("applying migration", common.Fields{
			"version":     migration.Version,
			"description": migration.Description,
		})

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// PRAGMA does not support placeholders.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return s.verifySchemas(ctx)
}

// SchemaVersion returns the database's current schema version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// verifySchemas checks every registered descriptor against the live tables so
// that a field/column mismatch fails at startup, not during an operation.
func (s *Store) verifySchemas(ctx context.Context) error {
	if err := s.wallets.schema.verify(ctx, s.db); err != nil {
		return err
	}
	if err := s.budgets.schema.verify(ctx, s.db); err != nil {
		return err
	}
	if err := s.goals.schema.verify(ctx, s.db); err != nil {
		return err
	}
	if err := s.transactions.schema.verify(ctx, s.db); err != nil {
		return err
	}
	return s.categories.schema.verify(ctx, s.db)
}
