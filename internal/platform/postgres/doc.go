// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles the details of query execution, mapping between domain entities
// and database records, translation of PostgreSQL error codes into store
// errors, and the embedded goose migrations that define the schema.
package postgres
