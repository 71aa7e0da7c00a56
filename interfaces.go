package ygggo_building

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// querier is the statement surface shared by a pinned connection and a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Row is the current row handed to a reader callback. It is only valid during the callback.
type Row interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
	MapScan(dest map[string]any) error
}

// RowFunc receives each result row in order. Returning an error stops the read.
type RowFunc func(Row) error

// Saver is what a UI-side caller needs to persist buildings and check settings.
type Saver interface {
	Save(ctx context.Context, b *Building) (int64, error)
	TestConnection(ctx context.Context) (ProbeResult, error)
}

// Ensure our concrete types implement the interfaces at compile time
var (
	_ querier = (*sql.Conn)(nil)
	_ querier = (*sql.Tx)(nil)
	_ Row     = (*sqlx.Rows)(nil)
	_ Saver   = (*Store)(nil)
)
