package ygggo_building

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// metrics holds all the metric instruments
type metrics struct {
	// Connection metrics
	connectionsActive  metric.Int64UpDownCounter
	connectionsOpened  metric.Int64Counter
	connectionFailures metric.Int64Counter
	connectionDuration metric.Float64Histogram

	// Statement metrics
	statementsTotal   metric.Int64Counter
	statementDuration metric.Float64Histogram
	errorsSwallowed   metric.Int64Counter
}

// newMetrics initializes all metric instruments. Instrument errors fall back to no-op instruments.
func newMetrics(mp metric.MeterProvider) *metrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)
	m := &metrics{}

	m.connectionsActive, _ = meter.Int64UpDownCounter(
		"ygggo_building_connections_active",
		metric.WithDescription("Number of locally-owned connections currently open"),
	)
	m.connectionsOpened, _ = meter.Int64Counter(
		"ygggo_building_connections_total",
		metric.WithDescription("Total number of locally-owned connections created"),
	)
	m.connectionFailures, _ = meter.Int64Counter(
		"ygggo_building_connection_failures_total",
		metric.WithDescription("Connections that failed to open or close"),
	)
	m.connectionDuration, _ = meter.Float64Histogram(
		"ygggo_building_connection_duration_seconds",
		metric.WithDescription("Lifetime of locally-owned connections"),
		metric.WithUnit("s"),
	)
	m.statementsTotal, _ = meter.Int64Counter(
		"ygggo_building_statements_total",
		metric.WithDescription("Total number of executed statements"),
	)
	m.statementDuration, _ = meter.Float64Histogram(
		"ygggo_building_statement_duration_seconds",
		metric.WithDescription("Duration of executed statements"),
		metric.WithUnit("s"),
	)
	m.errorsSwallowed, _ = meter.Int64Counter(
		"ygggo_building_errors_swallowed_total",
		metric.WithDescription("Store errors logged and reported as zero effect instead of returned"),
	)
	return m
}

func (m *metrics) connectionCreated(ctx context.Context) {
	m.connectionsActive.Add(ctx, 1)
	m.connectionsOpened.Add(ctx, 1)
}

func (m *metrics) connectionReleased(ctx context.Context, held time.Duration) {
	m.connectionsActive.Add(ctx, -1)
	m.connectionDuration.Record(ctx, held.Seconds())
}

func (m *metrics) connectionFailed(ctx context.Context, event string) {
	m.connectionFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
}

func (m *metrics) statement(ctx context.Context, operation string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.statementsTotal.Add(ctx, 1, attrs)
	m.statementDuration.Record(ctx, d.Seconds(), attrs)
}

func (m *metrics) swallowed(ctx context.Context, kind error) {
	m.errorsSwallowed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.Error())))
}
