package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database access layer over the query methods the
// stores actually use. It is implemented by both *sql.DB and *sql.Tx,
// allowing store code to run against a connection pool or inside a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Both connection pools and transactions must satisfy DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
