package ygggo_building

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName    = "github.com/yggai/ygggo_building"
	instrumentationVersion = "v0.1.0"
)

func newTracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
}

// startSpan creates a new span with common database attributes
func (e *Executor) startSpan(ctx context.Context, operation string, query string) (context.Context, trace.Span) {
	if !e.telemetryEnabled {
		return ctx, trace.SpanFromContext(ctx)
	}
	ctx, span := e.tracer.Start(ctx, fmt.Sprintf("ygggo_building.%s", operation))
	span.SetAttributes(
		attribute.String("db.system", e.cfg.system()),
		attribute.String("db.operation", operation),
	)
	if query != "" {
		span.SetAttributes(attribute.String("db.statement", query))
	}
	return ctx, span
}

// finishSpan completes a span with error handling
func (e *Executor) finishSpan(span trace.Span, rows int64, err error) {
	if !e.telemetryEnabled {
		return
	}
	if rows >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", rows))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
