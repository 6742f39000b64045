// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests using this package should carry the "integration" build tag and skip
// when no database URL is configured:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		// ...
//	})
//
// Every test body runs in a transaction that is rolled back, so tests never
// see each other's rows.
package testdb
