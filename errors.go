package ygggo_building

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	mysql "github.com/go-sql-driver/mysql"
)

var (
	// ErrConfiguration marks malformed or incomplete connection configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrConnection marks failures opening, using or closing a connection.
	ErrConnection = errors.New("connection error")
	// ErrStatement marks malformed SQL, binding problems and constraint violations.
	ErrStatement = errors.New("statement error")

	// ErrConnNotOpen is returned for statements against a connection that never opened or was closed.
	ErrConnNotOpen = errors.New("connection is not open")
)

// Error carries the kind of failure (one of the Err* sentinels), the operation and the cause.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func newError(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinel so errors.Is(err, ErrConnection) works through wrapping.
func (e *Error) Is(target error) bool { return e.Kind == target }

// ErrorClass is a finer classification of store errors, mostly by MySQL error number.
type ErrorClass int

const (
	ErrClassUnknown ErrorClass = iota
	ErrClassRetryable
	ErrClassConflict
	ErrClassReadonly
	ErrClassConstraint
)

func (c ErrorClass) String() string {
	switch c {
	case ErrClassRetryable:
		return "retryable"
	case ErrClassConflict:
		return "conflict"
	case ErrClassReadonly:
		return "readonly"
	case ErrClassConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// Classify maps MySQL server errors to an ErrorClass.
func Classify(err error) ErrorClass {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return ErrClassUnknown
	}
	switch me.Number {
	case 1213, 1205: // ER_LOCK_DEADLOCK, ER_LOCK_WAIT_TIMEOUT
		return ErrClassRetryable
	case 1290: // ER_OPTION_PREVENTS_STATEMENT (read-only)
		return ErrClassReadonly
	case 1062, 1022: // ER_DUP_ENTRY, ER_DUP_KEY
		return ErrClassConflict
	case 1048, 1451, 1452, 3819:
		return ErrClassConstraint
	}
	return ErrClassUnknown
}

// connection-level MySQL error numbers: access denied, unknown database and the client-side
// CR_* codes for unreachable or dropped servers.
var connErrorNumbers = map[uint16]bool{
	1045: true,
	1049: true,
	2002: true,
	2003: true,
	2005: true,
	2006: true,
	2013: true,
}

// kindOf decides whether err is a connection or a statement failure.
func kindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrConnNotOpen) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return ErrConnection
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && connErrorNumbers[me.Number] {
		return ErrConnection
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return ErrConnection
	}
	return ErrStatement
}

// wrap attaches the derived kind to err unless it already carries one.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return newError(kindOf(err), op, err)
}
