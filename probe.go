package ygggo_building

import (
	"context"
	"errors"
	"time"
)

const (
	probeMessageOK     = "Connection success"
	probeMessageFailed = "Connection failed"
)

// ProbeResult is the outcome of a connectivity check.
type ProbeResult struct {
	OK      bool
	Message string
	Latency time.Duration
}

// Probe opens a connection built from cfg and closes it straight away, without running any
// statement. Unlike the executor it never swallows: an open or close failure is returned as a
// connection error and OK is false. Invalid configuration fails before any dial.
func Probe(ctx context.Context, cfg Config, opts ...ConnectionOption) (ProbeResult, error) {
	conn, err := NewConnection(cfg, opts...)
	if err != nil {
		return ProbeResult{Message: probeMessageFailed}, err
	}
	start := time.Now()
	openErr := conn.Open(ctx)
	latency := time.Since(start)
	// close runs on every path so a failed or half-open dial leaves nothing behind
	closeErr := conn.Close()
	if openErr != nil {
		return ProbeResult{Message: probeMessageFailed, Latency: latency}, asConnectionError("probe", openErr)
	}
	if closeErr != nil {
		return ProbeResult{Message: probeMessageFailed, Latency: latency}, asConnectionError("probe", closeErr)
	}
	return ProbeResult{OK: true, Message: probeMessageOK, Latency: latency}, nil
}

// asConnectionError reports any probe failure as a connection error while keeping the cause.
func asConnectionError(op string, err error) error {
	if errors.Is(err, ErrConnection) {
		return err
	}
	return newError(ErrConnection, op, err)
}
