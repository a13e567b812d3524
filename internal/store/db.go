package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle used by SQL-backed stores.
// It is implemented by *sql.DB, *sql.Conn and *sql.Tx, so a store can run
// against the connection pool or inside a caller-owned transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
