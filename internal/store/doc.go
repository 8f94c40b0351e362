// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// The package also owns the transaction boundary: RunInTransaction is the
// only way services group several store calls into one unit of work, and
// every store exposes WithTx so it can join such a unit.
package store
