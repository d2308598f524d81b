// Package postgres contains the PostgreSQL implementations of the store
// interfaces. Stores accept a store.DBTX so the same code runs against a
// connection pool or an open transaction, and they translate driver
// errors (unique and foreign-key violations, missing rows) into the
// sentinel errors defined in internal/store.
package postgres
