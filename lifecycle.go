package ygggo_building

import (
	"context"
	"log/slog"
	"time"
)

// lease is one operation's hold on a connection. owned marks a connection created for this
// operation alone; only owned connections are closed on release.
type lease struct {
	conn  *Connection
	tx    *Tx
	owned bool
}

// querier returns the transaction when one is attached, the pinned connection otherwise.
func (l *lease) querier() (querier, error) {
	if l.tx != nil && l.tx.inner != nil {
		return l.tx.inner, nil
	}
	return l.conn.pinned()
}

// acquire reuses the caller's connection and transaction, or creates and opens a local
// connection when conn is nil. A transaction without its connection cannot be honoured and
// is dropped. Open failures are logged at warn and the unopened connection is still leased,
// so the statement fails later and goes through settle; strict executors fail here instead.
// The returned lease must be released, also when err is non-nil.
func (e *Executor) acquire(ctx context.Context, conn *Connection, tx *Tx) (*lease, error) {
	if conn != nil {
		return &lease{conn: conn, tx: tx}, nil
	}
	if tx != nil {
		e.logger.LogAttrs(ctx, slog.LevelWarn, "transaction ignored without its connection")
	}
	c, err := NewConnection(e.cfg, e.connOpts...)
	if err != nil {
		// nothing was created, nothing to release
		return nil, err
	}
	l := &lease{conn: c, owned: true}
	e.live.Add(1)
	e.metrics.connectionCreated(ctx)

	start := time.Now()
	err = c.Open(ctx)
	// a non-strict failure surfaces again through settle, which logs it at error
	level := slog.LevelWarn
	if e.strict {
		level = slog.LevelError
	}
	e.logConnection(ctx, "open", time.Since(start), err, level)
	if err != nil {
		e.metrics.connectionFailed(ctx, "open")
		if e.strict {
			return l, err
		}
	}
	return l, nil
}

// release closes the connection if this lease created it. Caller-owned connections stay open.
func (e *Executor) release(ctx context.Context, l *lease) {
	if l == nil || !l.owned {
		return
	}
	held := l.conn.heldFor()
	err := l.conn.Close()
	e.logConnection(ctx, "close", held, err, slog.LevelError)
	if err != nil {
		e.metrics.connectionFailed(ctx, "close")
	}
	e.live.Add(-1)
	e.metrics.connectionReleased(ctx, held)
}

// withLease runs fn with a querier from a lease that is always released afterwards.
func (e *Executor) withLease(ctx context.Context, conn *Connection, tx *Tx, fn func(querier) error) error {
	l, err := e.acquire(ctx, conn, tx)
	if l != nil {
		defer e.release(ctx, l)
	}
	if err != nil {
		return err
	}
	q, err := l.querier()
	if err != nil {
		return err
	}
	return fn(q)
}
