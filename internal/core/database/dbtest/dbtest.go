// Package dbtest provides a migrated, empty Postgres pool for adapter tests.
package dbtest

import (
	"context"
	"os"
	"testing"

	"courier-billing/internal/core/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// EnvVar names the DSN of a disposable test database.
const EnvVar = "TEST_DATABASE_URL"

// Pool connects to the test database, applies migrations and truncates all tables.
// The test is skipped when TEST_DATABASE_URL is unset.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvVar)
	if dsn == "" {
		t.Skipf("%s not set; skipping Postgres test", EnvVar)
	}

	ctx := context.Background()
	require.NoError(t, database.MigrateUp(ctx, dsn))

	pool, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE charges, customers`)
	require.NoError(t, err)

	return pool
}
