package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
)

// table is the generic persistence engine: CRUD primitives for any entity type
// driven entirely by its schema descriptor. No per-entity SQL is hand-written;
// the per-entity store files only add queries the descriptor cannot express.
type table[T any] struct {
	schema schema[T]
}

// insert writes a new row for the entity.
func (t table[T]) insert(ctx context.Context, q queryable, entity *T) error {
	cols := t.schema.columns
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		t.schema.table,
		strings.Join(cols, ", "),
		placeholders(len(cols)),
	)

	if _, err := q.ExecContext(ctx, query, t.schema.values(entity)...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			err = fmt.Errorf("%w: %v", common.ErrDuplicateEntry, err)
		}
		return common.NewStorageError("insert", t.schema.table, err)
	}
	return nil
}

// get returns the entity with the given id, or (nil, nil) when absent.
// Absence is a normal, representable outcome, not an error.
func (t table[T]) get(ctx context.Context, q queryable, id string) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?",
		strings.Join(t.schema.columns, ", "),
		t.schema.table,
	)

	entity, err := t.schema.scan(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewStorageError("get", t.schema.table, err)
	}
	return &entity, nil
}

// list returns all rows matching the optional WHERE clause in storage order.
// Callers must not rely on that order as a stable contract.
func (t table[T]) list(ctx context.Context, q queryable, where string, args ...any) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s",
		strings.Join(t.schema.columns, ", "),
		t.schema.table,
	)
	if where != "" {
		query += " WHERE " + where
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewStorageError("list", t.schema.table, err)
	}
	defer func() { _ = rows.Close() }()

	var entities []T
	for rows.Next() {
		entity, scanErr := t.schema.scan(rows)
		if scanErr != nil {
			return nil, common.NewStorageError("list", t.schema.table, scanErr)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("list", t.schema.table, err)
	}
	return entities, nil
}

// update overwrites the full row keyed by the entity's id. It fails with
// common.ErrNotFound when no such row exists.
func (t table[T]) update(ctx context.Context, q queryable, entity *T) error {
	cols := t.schema.columns
	assignments := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		assignments = append(assignments, col+" = ?")
	}
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ?",
		t.schema.table,
		strings.Join(assignments, ", "),
	)

	values := t.schema.values(entity)
	args := append(values[1:], values[0])

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return common.NewStorageError("update", t.schema.table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewStorageError("update", t.schema.table, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, t.schema.table, t.schema.id(entity))
	}
	return nil
}

// remove deletes the row with the given id. Deleting a non-existent id is a
// no-op.
func (t table[T]) remove(ctx context.Context, q queryable, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.schema.table)
	if _, err := q.ExecContext(ctx, query, id); err != nil {
		return common.NewStorageError("delete", t.schema.table, err)
	}
	return nil
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
