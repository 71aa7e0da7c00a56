package ygggo_building

import (
	"database/sql"
	"database/sql/driver"

	"github.com/DATA-DOG/go-sqlmock"
)

// DriverMock is the driver name registered by go-sqlmock.
const DriverMock = "sqlmock"

// MockOptions configures NewMock.
type MockOptions struct {
	// MonitorPings makes every Open expect an ExpectPing.
	MonitorPings bool
	// Strict is copied into the returned Config.
	Strict bool
}

// Mock is a sqlmock database that Connections built from Config reach, for running saves,
// reads and probes without a server.
//
// Every Connection built from Config is a separate handle on the same mock, so each one
// that gets closed consumes one ExpectClose, in order with the other expectations.
type Mock struct {
	sqlmock.Sqlmock
	Config Config
	db     *sql.DB
}

// NewMock registers a fresh mock under a unique DSN.
func NewMock(o MockOptions) (*Mock, error) {
	dsn := "ygggo_building_mock_" + NewID()
	var (
		db   *sql.DB
		mock sqlmock.Sqlmock
		err  error
	)
	if o.MonitorPings {
		db, mock, err = sqlmock.NewWithDSN(dsn, sqlmock.MonitorPingsOption(true))
	} else {
		db, mock, err = sqlmock.NewWithDSN(dsn)
	}
	if err != nil {
		return nil, newError(ErrConfiguration, "new mock", err)
	}
	cfg := Config{Driver: DriverMock, DSN: dsn, Strict: o.Strict}
	return &Mock{Sqlmock: mock, Config: cfg, db: db}, nil
}

// NewRows is sqlmock.NewRows, re-exported so callers need not import sqlmock for simple rows.
func NewRows(columns ...string) *sqlmock.Rows { return sqlmock.NewRows(columns) }

// NewResult is sqlmock.NewResult.
func NewResult(lastInsertID, rowsAffected int64) driver.Result {
	return sqlmock.NewResult(lastInsertID, rowsAffected)
}

// Close drops the mock's own handle. Its close is not an expectation, so the
// "call to database Close was not expected" error sqlmock reports for it is not returned.
func (m *Mock) Close() error {
	_ = m.db.Close()
	return nil
}
