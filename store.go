package ygggo_building

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Store persists buildings for one configured database.
type Store struct {
	exec *Executor
}

// NewStore validates cfg and returns a Store. No connection is made until the first call.
func NewStore(cfg Config, opts ...Option) (*Store, error) {
	exec, err := NewExecutor(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Store{exec: exec}, nil
}

// Executor exposes the underlying executor for ad-hoc statements and reads.
func (s *Store) Executor() *Executor { return s.exec }

// Save inserts b on a connection opened for this call and returns the affected rows.
// An empty b.ID is replaced with NewID() before the insert. A failed insert reports 0.
func (s *Store) Save(ctx context.Context, b *Building) (int64, error) {
	return s.SaveWith(ctx, nil, nil, b)
}

// SaveWith inserts b on the caller's connection, inside tx when it is non-nil.
func (s *Store) SaveWith(ctx context.Context, conn *Connection, tx *Tx, b *Building) (int64, error) {
	if b == nil {
		return 0, newError(ErrConfiguration, "save", errors.New("nil building"))
	}
	if b.ID == "" {
		b.ID = NewID()
	}
	return s.exec.ExecuteNonQueryWith(ctx, conn, tx, insertBuildingSQL, ToParams(*b))
}

// TestConnection probes the store's configuration.
func (s *Store) TestConnection(ctx context.Context) (ProbeResult, error) {
	ctx, span := s.exec.startSpan(ctx, "probe", "")
	start := time.Now()
	res, err := Probe(ctx, s.exec.cfg, s.exec.connOpts...)
	s.exec.logConnection(ctx, "probe", time.Since(start), err, slog.LevelError)
	if s.exec.telemetryEnabled {
		span.SetAttributes(attribute.Bool("db.probe.ok", res.OK))
	}
	s.exec.finishSpan(span, -1, err)
	return res, err
}

// TestConnection checks that cfg reaches a database, for a settings form's test button.
func TestConnection(ctx context.Context, cfg Config, opts ...Option) (ProbeResult, error) {
	s, err := NewStore(cfg, opts...)
	if err != nil {
		return ProbeResult{Message: probeMessageFailed}, err
	}
	return s.TestConnection(ctx)
}

// SaveRecord inserts b using a one-off Store for cfg. Callers key success off the row count.
func SaveRecord(ctx context.Context, b *Building, cfg Config, opts ...Option) (int64, error) {
	s, err := NewStore(cfg, opts...)
	if err != nil {
		return 0, err
	}
	return s.Save(ctx, b)
}
