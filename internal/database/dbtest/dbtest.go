// Package dbtest provides a migrated in-memory SQLite database for
// repository and end-to-end tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/redmonkez12/go-task-api/internal/config"
	"github.com/redmonkez12/go-task-api/internal/database"
)

// New returns a fresh, fully migrated database that is closed when the test ends.
func New(tb testing.TB) *bun.DB {
	tb.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, ":memory:")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(ctx, db, config.DriverSQLite); err != nil {
		tb.Fatalf("migrate sqlite: %v", err)
	}

	return db
}
