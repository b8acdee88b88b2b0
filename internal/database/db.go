// Package database defines the narrow query surface the job and user
// stores are written against, so repositories never depend on a driver
// directly.
package database

import (
	"context"
	"database/sql"
)

// DB is the pooled connection handed to repositories, the health check
// and the seeder.
type DB interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	// Begin opens a transaction; the seeder uses it to swap a demo
	// account's records atomically.
	Begin(ctx context.Context) (Tx, error)

	Ping(ctx context.Context) error
	Close() error

	// SQLDB exposes a database/sql view of the same pool for the
	// migration runner.
	SQLDB() *sql.DB
}

// Tx is the slice of DB available inside a transaction.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type Row interface {
	Scan(dest ...any) error
}
