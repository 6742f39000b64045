package testdb

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds connection and migration work in test setup.
const TestTimeout = 10 * time.Second

// urlEnvVars are checked in order; the first non-empty one wins.
var urlEnvVars = []string{"LINGUA_TEST_DB_URL", "DATABASE_URL", "LINGUA_DATABASE_URL"}

// GetTestDatabaseURL returns the database URL for integration tests, or ""
// when none is configured.
func GetTestDatabaseURL() string {
	for _, name := range urlEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is available.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// MaskDatabaseURL hides the password of a database URL for logs and
// failure messages.
func MaskDatabaseURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	if parsed.User != nil {
		if _, ok := parsed.User.Password(); ok {
			parsed.User = url.UserPassword(parsed.User.Username(), "****")
		}
	}
	return parsed.String()
}

// GetTestDBWithT opens the test database, applies migrations and seeds the
// default languages. The test is skipped when no database is configured.
// The connection is closed when the test ends.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("no test database configured; set LINGUA_TEST_DB_URL or DATABASE_URL")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open %s", MaskDatabaseURL(dbURL))
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, db.PingContext(ctx), "failed to ping %s", MaskDatabaseURL(dbURL))
	require.NoError(t, postgres.Migrate(ctx, db, nil), "failed to apply migrations")
	require.NoError(t,
		postgres.NewPostgresLanguageStore(db, nil).Seed(ctx, domain.DefaultLanguages),
		"failed to seed languages")

	return db
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// ExpectFailure runs fn, which is expected to fail, behind a savepoint so
// the surrounding transaction stays usable afterwards.
func ExpectFailure(t *testing.T, tx *sql.Tx, fn func() error) error {
	t.Helper()

	_, err := tx.Exec("SAVEPOINT expect_failure")
	require.NoError(t, err, "failed to create savepoint")

	fnErr := fn()
	_, err = tx.Exec("ROLLBACK TO SAVEPOINT expect_failure")
	require.NoError(t, err, "failed to roll back to savepoint")
	return fnErr
}
