// Package storage provides the data persistence layer for the finance manager.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements persistence for all financial entities using SQLite. One
// generic engine (see table.go) serves every entity type through the schema
// descriptors registered in schema.go.
type Store struct {
	db     *sql.DB
	dbPath string

	wallets      table[model.Wallet]
	budgets      table[model.Budget]
	goals        table[model.Goal]
	transactions table[model.Transaction]
	categories   table[model.Category]
}

// NewStore opens (creating if necessary) the SQLite database at dbPath.
// Use ":memory:" for an ephemeral store.
func NewStore(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	common.LogDebug("opened database", common.Fields{"path": dbPath})

	return &Store{
		db:           db,
		dbPath:       dbPath,
		wallets:      table[model.Wallet]{schema: walletSchema},
		budgets:      table[model.Budget]{schema: budgetSchema},
		goals:        table[model.Goal]{schema: goalSchema},
		transactions: table[model.Transaction]{schema: transactionSchema},
		categories:   table[model.Category]{schema: categorySchema},
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn inside a single database transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// queryable is an interface satisfied by both *sql.DB and *sql.Tx.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
