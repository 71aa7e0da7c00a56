package ygggo_building

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Executor runs parameterized statements, either on a connection it opens and closes around
// the single call, or on a connection (and transaction) supplied by the caller.
//
// Store errors are logged and reported as zero effect (0 rows, no rows read) unless the
// executor is strict, in which case they are returned. Configuration errors are always returned.
// An Executor is safe for concurrent use; concurrent calls each get their own connection.
type Executor struct {
	cfg      Config
	strict   bool
	logger   *slog.Logger
	connOpts []ConnectionOption

	telemetryEnabled bool
	tracerProvider   trace.TracerProvider
	tracer           trace.Tracer
	meterProvider    metric.MeterProvider
	metrics          *metrics

	live   atomic.Int64
	mapper *reflectx.Mapper
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the slog logger used for swallowed errors and connection events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithZapLogger logs through zl.
func WithZapLogger(zl *zap.Logger) Option {
	return func(e *Executor) { e.logger = slog.New(NewZapHandler(zl)) }
}

// WithStrict overrides Config.Strict.
func WithStrict(strict bool) Option {
	return func(e *Executor) { e.strict = strict }
}

// WithTracerProvider enables tracing with tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Executor) {
		e.tracerProvider = tp
		e.telemetryEnabled = true
	}
}

// WithMeterProvider records metrics with mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(e *Executor) { e.meterProvider = mp }
}

// NewExecutor validates cfg and returns an Executor. No connection is made.
func NewExecutor(cfg Config, opts ...Option) (*Executor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Executor{
		cfg:              cfg,
		strict:           cfg.Strict,
		telemetryEnabled: cfg.Telemetry.Enabled,
		mapper:           reflectx.NewMapperFunc("db", strings.ToLower),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = defaultLogger()
	}
	e.tracer = newTracer(e.tracerProvider)
	e.metrics = newMetrics(e.meterProvider)
	if e.tracerProvider != nil {
		e.connOpts = append(e.connOpts, WithDriverTracerProvider(e.tracerProvider))
	}
	return e, nil
}

// Config returns the executor's configuration.
func (e *Executor) Config() Config { return e.cfg }

// Strict reports whether store errors are returned instead of swallowed.
func (e *Executor) Strict() bool { return e.strict }

// OpenConnections is the number of locally-owned connections currently held by in-flight calls.
func (e *Executor) OpenConnections() int64 { return e.live.Load() }

// ExecuteNonQuery runs query on a connection opened for this call and returns the affected rows.
func (e *Executor) ExecuteNonQuery(ctx context.Context, query string, params Params) (int64, error) {
	return e.ExecuteNonQueryWith(ctx, nil, nil, query, params)
}

// ExecuteNonQueryWith runs query on conn (inside tx when non-nil). A nil conn behaves like
// ExecuteNonQuery and ignores tx. conn is never closed here.
func (e *Executor) ExecuteNonQueryWith(ctx context.Context, conn *Connection, tx *Tx, query string, params Params) (int64, error) {
	bound, args, err := bind(query, params)
	if err != nil {
		return 0, e.settle(ctx, "exec", query, err)
	}
	ctx, span := e.startSpan(ctx, "exec", bound)
	var affected int64
	err = e.withLease(ctx, conn, tx, func(q querier) error {
		start := time.Now()
		res, err := q.ExecContext(ctx, bound, args...)
		if err == nil {
			affected, err = res.RowsAffected()
		}
		d := time.Since(start)
		e.logStatement(ctx, "exec", bound, len(args), d, err)
		e.metrics.statement(ctx, "exec", d, err)
		return err
	})
	if err != nil {
		affected = 0
	}
	e.finishSpan(span, affected, err)
	return affected, e.settle(ctx, "exec", bound, err)
}

// ExecuteReader runs query on a connection opened for this call and hands every row to onRow.
func (e *Executor) ExecuteReader(ctx context.Context, query string, params Params, onRow RowFunc) error {
	return e.ExecuteReaderWith(ctx, nil, nil, query, params, onRow)
}

// ExecuteReaderWith is ExecuteReader on a caller-supplied connection and transaction.
// Rows already delivered stay delivered when the read fails part way. An error returned by
// onRow ends the read and is returned as is.
func (e *Executor) ExecuteReaderWith(ctx context.Context, conn *Connection, tx *Tx, query string, params Params, onRow RowFunc) error {
	bound, args, err := bind(query, params)
	if err != nil {
		return e.settle(ctx, "query", query, err)
	}
	ctx, span := e.startSpan(ctx, "query", bound)
	var cbErr error
	err = e.withLease(ctx, conn, tx, func(q querier) error {
		start := time.Now()
		rs, err := q.QueryContext(ctx, bound, args...)
		if err != nil {
			e.logStatement(ctx, "query", bound, len(args), time.Since(start), err)
			e.metrics.statement(ctx, "query", time.Since(start), err)
			return err
		}
		defer rs.Close()
		rows := &sqlx.Rows{Rows: rs, Mapper: e.mapper}
		for rows.Next() {
			if onRow == nil {
				continue
			}
			if err := onRow(rows); err != nil {
				cbErr = err
				break
			}
		}
		err = rs.Err()
		d := time.Since(start)
		e.logStatement(ctx, "query", bound, len(args), d, err)
		e.metrics.statement(ctx, "query", d, err)
		return err
	})
	e.finishSpan(span, -1, errors.Join(err, cbErr))
	if cbErr != nil {
		return cbErr
	}
	return e.settle(ctx, "query", bound, err)
}

// settle is the single place that decides what a failed call reports to its caller.
// Configuration errors always propagate; store errors propagate only when strict.
func (e *Executor) settle(ctx context.Context, op, query string, err error) error {
	if err == nil {
		return nil
	}
	err = wrap(op, err)
	kind := kindOf(err)
	if kind == ErrConfiguration || e.strict {
		return err
	}
	attrs := []slog.Attr{slog.String("operation", op), slog.String("query", query)}
	attrs = append(attrs, errorAttrs(err)...)
	e.logger.LogAttrs(ctx, slog.LevelError, "database error swallowed", attrs...)
	e.metrics.swallowed(ctx, kind)
	return nil
}

// bind rewrites :name placeholders to positional ones and orders the arguments to match.
func bind(query string, params Params) (string, []any, error) {
	if params == nil {
		params = Params{}
	}
	bound, args, err := sqlx.Named(query, map[string]any(params))
	if err != nil {
		return "", nil, newError(ErrStatement, "bind", err)
	}
	return bound, args, nil
}
