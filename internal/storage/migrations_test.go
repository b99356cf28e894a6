package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

func TestMigrate_ReachesExpectedVersion(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Migrate(ctx), "re-running migrations must not fail")

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrate_SeedsDefaultCategories(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	byName := make(map[string]model.Category)
	for _, c := range categories {
		byName[c.Name] = c
	}

	salary, ok := byName["Salary"]
	require.True(t, ok, "Salary category should be seeded")
	assert.Equal(t, model.CategoryTypeIncome, salary.Type)
	assert.False(t, salary.Custom, "seeded categories are not custom")

	food, ok := byName["Food"]
	require.True(t, ok, "Food category should be seeded")
	assert.Equal(t, model.CategoryTypeExpense, food.Type)
}

func TestSchemaVerify_RejectsUnknownColumn(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	broken := walletSchema
	broken.columns = append([]string{}, walletSchema.columns...)
	broken.columns = append(broken.columns, "no_such_column")

	err := broken.verify(ctx, store.db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestSchemaVerify_RejectsMissingTable(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	broken := walletSchema
	broken.table = "no_such_table"

	err := broken.verify(ctx, store.db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}
