// Package store defines the persistence boundary of the banking backend:
// the UserStore and AccountStore interfaces, the DBTX abstraction shared
// by connections and transactions, the sentinel errors services branch
// on, and the RunInTransaction helper for multi-step atomic operations.
// Concrete implementations live in internal/platform/postgres.
package store
