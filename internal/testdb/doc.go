// Package testdb provides utilities for database integration tests.
//
// Tests obtain a migrated connection with GetTestDBWithT, which skips the
// test when no database URL is configured, and isolate their writes with
// WithTx, which rolls the transaction back when the test function returns.
//
// Integration tests that use this package carry the "integration" build tag
// and run with:
//
//	DATABASE_URL=postgres://... go test -tags=integration ./...
package testdb
