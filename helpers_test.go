package ygggo_building

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestMock(t *testing.T, o MockOptions) *Mock {
	t.Helper()
	m, err := NewMock(o)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// newObservedExecutor returns an executor whose log records are captured for assertions.
func newObservedExecutor(t *testing.T, cfg Config, opts ...Option) (*Executor, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	opts = append([]Option{WithZapLogger(zap.New(core))}, opts...)
	e, err := NewExecutor(cfg, opts...)
	require.NoError(t, err)
	return e, logs
}

const createBuildingsSQL = `CREATE TABLE buildings (
	id TEXT PRIMARY KEY,
	parentId TEXT NOT NULL DEFAULT '',
	entityId INTEGER NOT NULL,
	currentHp INTEGER NOT NULL,
	mapName TEXT NOT NULL,
	positionX REAL NOT NULL,
	positionY REAL NOT NULL,
	positionZ REAL NOT NULL,
	rotationX REAL NOT NULL,
	rotationY REAL NOT NULL,
	rotationZ REAL NOT NULL,
	lockPassword TEXT NOT NULL DEFAULT '',
	extraData TEXT NOT NULL DEFAULT ''
)`

// newSQLiteConfig creates a file database with an empty buildings table.
func newSQLiteConfig(t *testing.T) Config {
	t.Helper()
	cfg := Config{Driver: DriverSQLite, Database: filepath.Join(t.TempDir(), "buildings.db")}
	e, err := NewExecutor(cfg, WithStrict(true), WithZapLogger(zap.NewNop()))
	require.NoError(t, err)
	_, err = e.ExecuteNonQuery(context.Background(), createBuildingsSQL, nil)
	require.NoError(t, err)
	return cfg
}

func strPtr(s string) *string { return &s }
