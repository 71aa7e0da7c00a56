package ygggo_building

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSaveRecord_ReturnsRowCount(t *testing.T) {
	m := newTestMock(t, MockOptions{})
	m.ExpectExec(`INSERT INTO buildings`).
		WithArgs("abc123", "p1", 5, 250, "Town", 1.0, 2.0, 3.0, 0.0, 90.0, 0.0, "", `{"k":1}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectClose()

	b := &Building{
		ID: "abc123", ParentID: strPtr("p1"), EntityID: 5, CurrentHP: 250, MapName: "Town",
		Position: Vec3{X: 1, Y: 2, Z: 3}, Rotation: Vec3{Y: 90}, ExtraData: strPtr(`{"k":1}`),
	}
	n, err := SaveRecord(context.Background(), b, m.Config, WithZapLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestSaveRecord_FailureIsZeroRows(t *testing.T) {
	m := newTestMock(t, MockOptions{})
	m.ExpectExec(`INSERT INTO buildings`).WillReturnError(errors.New("Table 'mmorpg_kit.buildings' doesn't exist"))
	m.ExpectClose()

	n, err := SaveRecord(context.Background(), &Building{MapName: "Town"}, m.Config, WithZapLogger(zap.NewNop()))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestSaveRecord_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Username = ""
	n, err := SaveRecord(context.Background(), &Building{}, cfg)
	assert.Equal(t, int64(0), n)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestSaveRecord_NilBuilding(t *testing.T) {
	m := newTestMock(t, MockOptions{})

	n, err := SaveRecord(context.Background(), nil, m.Config, WithZapLogger(zap.NewNop()))
	assert.Equal(t, int64(0), n)
	assert.True(t, errors.Is(err, ErrConfiguration))
	// rejected before any connection is made
	require.NoError(t, m.ExpectationsWereMet())
}

func TestStore_SaveAssignsID(t *testing.T) {
	m := newTestMock(t, MockOptions{})
	s, err := NewStore(m.Config, WithZapLogger(zap.NewNop()))
	require.NoError(t, err)

	m.ExpectExec(`INSERT INTO buildings`).WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectClose()

	b := &Building{MapName: "Town"}
	_, err = s.Save(context.Background(), b)
	require.NoError(t, err)
	assert.Len(t, b.ID, DefaultIDLength)
	require.NoError(t, m.ExpectationsWereMet())
}

func TestTestConnection(t *testing.T) {
	m := newTestMock(t, MockOptions{MonitorPings: true})
	m.ExpectPing()
	m.ExpectClose()

	res, err := TestConnection(context.Background(), m.Config, WithZapLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.True(t, res.OK)
	require.NoError(t, m.ExpectationsWereMet())

	var saver Saver
	saver, err = NewStore(m.Config, WithZapLogger(zap.NewNop()))
	require.NoError(t, err)
	m.ExpectPing().WillReturnError(errors.New("gone"))
	m.ExpectClose()
	res, err = saver.TestConnection(context.Background())
	assert.True(t, errors.Is(err, ErrConnection))
	assert.False(t, res.OK)
}

func TestTestConnection_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = -1
	res, err := TestConnection(context.Background(), cfg)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(t, "Connection failed", res.Message)
}
