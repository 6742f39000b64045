// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, together with the
// embedded schema migrations and the language seed.
//
// Stores accept a store.DBTX so the same code runs against a *sql.DB or a
// *sql.Tx; WithTx rebinds a store to a caller-managed transaction.
package postgres
