// Package psqltest opens throwaway stores for tests.
package psqltest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"notenest/notenest/sources/psql"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var seq atomic.Int64

// NewDB returns a migrated in-memory SQLite store with foreign keys enforced.
// Each call gets its own database; it is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:notenest_test_%d?mode=memory&cache=shared&_foreign_keys=on", seq.Add(1))
	db, err := psql.Open(context.Background(), sqlite.Open(dsn), psql.PoolOptions{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(db.Close)

	if err := psql.Migrate(context.Background(), db.DB); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db.DB
}
