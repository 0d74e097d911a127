// Package postgres implements the store interfaces against a PostgreSQL
// database accessed through database/sql with the pgx driver. Database
// errors are mapped to the store package's sentinel errors so callers
// never depend on driver-specific error types.
package postgres
