package ygggo_building

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorClass
	}{
		{&mysql.MySQLError{Number: 1213}, ErrClassRetryable},
		{&mysql.MySQLError{Number: 1205}, ErrClassRetryable},
		{&mysql.MySQLError{Number: 1290}, ErrClassReadonly},
		{&mysql.MySQLError{Number: 1062}, ErrClassConflict},
		{&mysql.MySQLError{Number: 1452}, ErrClassConstraint},
		{&mysql.MySQLError{Number: 1064}, ErrClassUnknown},
		{fmt.Errorf("wrapped: %w", &mysql.MySQLError{Number: 1062}), ErrClassConflict},
		{errors.New("plain"), ErrClassUnknown},
		{nil, ErrClassUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.err); got != tt.want {
			t.Fatalf("Classify(%v)=%v want %v", tt.err, got, tt.want)
		}
	}
}

func TestErrorClass_String(t *testing.T) {
	assert.Equal(t, "conflict", ErrClassConflict.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not open", ErrConnNotOpen, ErrConnection},
		{"bad conn", driver.ErrBadConn, ErrConnection},
		{"conn done", sql.ErrConnDone, ErrConnection},
		{"invalid conn", mysql.ErrInvalidConn, ErrConnection},
		{"access denied", &mysql.MySQLError{Number: 1045}, ErrConnection},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}, ErrConnection},
		{"syntax", &mysql.MySQLError{Number: 1064}, ErrStatement},
		{"duplicate", &mysql.MySQLError{Number: 1062}, ErrStatement},
		{"plain", errors.New("no such table"), ErrStatement},
		{"typed", newError(ErrConfiguration, "x", nil), ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindOf(tt.err))
		})
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	cause := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	err := wrap("exec", cause)

	assert.True(t, errors.Is(err, ErrStatement))
	assert.False(t, errors.Is(err, ErrConnection))
	var me *mysql.MySQLError
	assert.True(t, errors.As(err, &me))
	assert.Equal(t, uint16(1062), me.Number)
	assert.Contains(t, err.Error(), "exec: statement error")

	// an existing kind is kept
	assert.Same(t, err, wrap("other", err))
	assert.Nil(t, wrap("exec", nil))
}
