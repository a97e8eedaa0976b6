// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, along with the
// embedded goose migrations that create the schema those implementations use.
//
// Stores accept a store.DBTX so the same code runs against a *sql.DB pool or
// inside a *sql.Tx obtained through WithTx.
package postgres
