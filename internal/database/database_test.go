package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-task-api/internal/config"
	"github.com/redmonkez12/go-task-api/internal/database"
	"github.com/redmonkez12/go-task-api/internal/database/dbtest"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, database.Migrate(context.Background(), db, config.DriverSQLite))

	for _, table := range []string{"users", "categories", "tasks"} {
		var count int
		err := db.NewSelect().
			TableExpr("sqlite_master").
			ColumnExpr("COUNT(*)").
			Where("type = 'table' AND name = ?", table).
			Scan(context.Background(), &count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s", table)
	}
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	now := time.Now().UTC()

	first := &database.Category{ID: uuid.New(), Name: "Health", Slug: "health", CreatedAt: now, UpdatedAt: now}
	_, err := db.NewInsert().Model(first).Exec(ctx)
	require.NoError(t, err)

	dup := &database.Category{ID: uuid.New(), Name: "Other", Slug: "health", CreatedAt: now, UpdatedAt: now}
	_, err = db.NewInsert().Model(dup).Exec(ctx)
	require.Error(t, err)

	assert.True(t, database.IsUniqueViolation(err))
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	assert.True(t, database.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, database.IsUniqueViolation(&pq.Error{Code: "23503"}))
}

func TestIsUniqueViolation_Other(t *testing.T) {
	assert.False(t, database.IsUniqueViolation(nil))
	assert.False(t, database.IsUniqueViolation(errors.New("duplicate key value violates unique constraint")))
}
