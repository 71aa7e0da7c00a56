package ygggo_building

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapHandler bridges slog records to a zap logger.
// It respects slog levels and forwards attributes as zap fields.
type zapHandler struct {
	logger *zap.Logger
	group  string
	fields []zap.Field // from WithAttrs, already group-qualified
}

// NewZapHandler returns a slog.Handler that writes through zl.
func NewZapHandler(zl *zap.Logger) slog.Handler {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &zapHandler{logger: zl}
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l >= slog.LevelError:
		return zapcore.ErrorLevel
	case l >= slog.LevelWarn:
		return zapcore.WarnLevel
	case l >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func (h *zapHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.logger.Core().Enabled(zapLevel(l))
}

func (h *zapHandler) Handle(_ context.Context, r slog.Record) error {
	ce := h.logger.Check(zapLevel(r.Level), r.Message)
	if ce == nil {
		return nil
	}
	fields := make([]zap.Field, 0, len(h.fields)+r.NumAttrs())
	fields = append(fields, h.fields...)
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.field(a))
		return true
	})
	ce.Write(fields...)
	return nil
}

func (h *zapHandler) field(a slog.Attr) zap.Field {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return zap.String(key, v.String())
	case slog.KindInt64:
		return zap.Int64(key, v.Int64())
	case slog.KindFloat64:
		return zap.Float64(key, v.Float64())
	case slog.KindBool:
		return zap.Bool(key, v.Bool())
	case slog.KindDuration:
		return zap.Duration(key, v.Duration())
	default:
		return zap.Any(key, v.Any())
	}
}

func (h *zapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.fields = append([]zap.Field(nil), h.fields...)
	for _, a := range attrs {
		nh.fields = append(nh.fields, h.field(a))
	}
	return &nh
}

func (h *zapHandler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group == "" {
		nh.group = name
	} else if name != "" {
		nh.group = nh.group + "." + name
	}
	return &nh
}
