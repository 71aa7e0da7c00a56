package ygggo_building

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// defaultLogger sends slog records to a zap production logger shared by every executor
// built without WithLogger or WithZapLogger.
var defaultLogger = sync.OnceValue(func() *slog.Logger {
	zl, err := zap.NewProduction()
	if err != nil {
		zl = zap.NewNop()
	}
	return slog.New(NewZapHandler(zl))
})

func durationMS(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Nanoseconds())/1e6)
}

// logStatement logs statement execution with structured fields at debug level; failures are
// reported once more by settle. Argument values are never logged, they can hold lock passwords.
func (e *Executor) logStatement(ctx context.Context, operation, query string, argCount int, duration time.Duration, err error) {
	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("query", query),
		durationMS(duration),
	}
	if argCount > 0 {
		attrs = append(attrs, slog.Int("arg_count", argCount))
	}
	if err == nil {
		attrs = append(attrs, slog.String("status", "success"))
		e.logger.LogAttrs(ctx, slog.LevelDebug, "database statement executed", attrs...)
		return
	}
	attrs = append(attrs, errorAttrs(err)...)
	e.logger.LogAttrs(ctx, slog.LevelDebug, "database statement failed", attrs...)
}

// logConnection logs connection lifecycle events for locally-owned connections.
// Failures are logged at failLevel.
func (e *Executor) logConnection(ctx context.Context, event string, duration time.Duration, err error, failLevel slog.Level) {
	attrs := []slog.Attr{
		slog.String("event", event),
		durationMS(duration),
	}
	if err != nil {
		attrs = append(attrs, errorAttrs(err)...)
		e.logger.LogAttrs(ctx, failLevel, "database connection event", attrs...)
		return
	}
	attrs = append(attrs, slog.String("status", "success"))
	e.logger.LogAttrs(ctx, slog.LevelDebug, "database connection event", attrs...)
}

func errorAttrs(err error) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("status", "error"),
		slog.String("error", err.Error()),
		slog.String("kind", kindOf(err).Error()),
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		attrs = append(attrs,
			slog.Int("error_code", int(me.Number)),
			slog.String("error_class", Classify(err).String()),
		)
	}
	return attrs
}
