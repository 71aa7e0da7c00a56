package ygggo_building

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/XSAM/otelsql"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Connection is a single database connection built from a Config.
// It starts unopened; Open pins one physical connection and Close releases it exactly once.
type Connection struct {
	cfg      Config
	db       *sql.DB
	mu       sync.Mutex
	inner    *sql.Conn
	closed   bool
	openedAt time.Time
}

// ConnectionOption tweaks how NewConnection builds the handle.
type ConnectionOption func(*connectionOptions)

type connectionOptions struct {
	tracerProvider trace.TracerProvider
}

// WithDriverTracerProvider sets the provider used when cfg.Telemetry.InstrumentDriver is on.
func WithDriverTracerProvider(tp trace.TracerProvider) ConnectionOption {
	return func(o *connectionOptions) { o.tracerProvider = tp }
}

// NewConnection validates cfg and builds an unopened connection. No network traffic happens here.
func NewConnection(cfg Config, opts ...ConnectionOption) (*Connection, error) {
	var o connectionOptions
	for _, opt := range opts {
		opt(&o)
	}
	dsn, err := cfg.DSNString()
	if err != nil {
		return nil, err
	}
	var db *sql.DB
	if cfg.Telemetry.InstrumentDriver {
		otOpts := []otelsql.Option{
			otelsql.WithAttributes(attribute.String("db.system", cfg.system())),
		}
		if o.tracerProvider != nil {
			otOpts = append(otOpts, otelsql.WithTracerProvider(o.tracerProvider))
		}
		db, err = otelsql.Open(cfg.driver(), dsn, otOpts...)
	} else {
		db, err = sql.Open(cfg.driver(), dsn)
	}
	if err != nil {
		return nil, newError(ErrConnection, "new connection", err)
	}
	// one physical connection per handle
	db.SetMaxOpenConns(1)
	return &Connection{cfg: cfg, db: db}, nil
}

// Open dials the server and pins a connection. Calling Open on an open connection is a no-op.
func (c *Connection) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return newError(ErrConnection, "open", ErrConnNotOpen)
	}
	if c.inner != nil {
		return nil
	}
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return asConnectionError("open", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return asConnectionError("open", err)
	}
	c.inner = conn
	c.openedAt = time.Now()
	return nil
}

// IsOpen reports whether Open succeeded and Close has not been called.
func (c *Connection) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner != nil && !c.closed
}

// Ping checks the pinned connection is still alive.
func (c *Connection) Ping(ctx context.Context) error {
	conn, err := c.pinned()
	if err != nil {
		return err
	}
	if err := conn.PingContext(ctx); err != nil {
		return asConnectionError("ping", err)
	}
	return nil
}

// BeginTx starts a transaction on the pinned connection.
func (c *Connection) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	conn, err := c.pinned()
	if err != nil {
		return nil, err
	}
	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return nil, wrap("begin", err)
	}
	return &Tx{inner: tx, conn: c}, nil
}

// Close releases the pinned connection and the handle. Only the first call does any work.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	var first error
	if c.inner != nil {
		if err := c.inner.Close(); err != nil {
			first = err
		}
		c.inner = nil
	}
	if err := c.db.Close(); err != nil && first == nil {
		first = err
	}
	if first != nil {
		return newError(ErrConnection, "close", first)
	}
	return nil
}

// heldFor is how long the connection has been open.
func (c *Connection) heldFor() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.openedAt.IsZero() {
		return 0
	}
	return time.Since(c.openedAt)
}

func (c *Connection) pinned() (*sql.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inner == nil || c.closed {
		return nil, newError(ErrConnection, "statement", ErrConnNotOpen)
	}
	return c.inner, nil
}

// Tx is a transaction on a caller-owned Connection.
type Tx struct {
	inner *sql.Tx
	conn  *Connection
}

// Connection returns the connection the transaction runs on.
func (tx *Tx) Connection() *Connection { return tx.conn }

// Commit commits the transaction.
func (tx *Tx) Commit() error {
	if tx == nil || tx.inner == nil {
		return sql.ErrTxDone
	}
	return wrap("commit", tx.inner.Commit())
}

// Rollback aborts the transaction.
func (tx *Tx) Rollback() error {
	if tx == nil || tx.inner == nil {
		return sql.ErrTxDone
	}
	return wrap("rollback", tx.inner.Rollback())
}
