package ygggo_building

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToParams(t *testing.T) {
	b := Building{
		ID:        "abc123",
		EntityID:  5,
		CurrentHP: 250,
		MapName:   "Town",
		Position:  Vec3{X: 1, Y: 2, Z: 3},
		Rotation:  Vec3{X: 0, Y: 90, Z: 0},
		ExtraData: strPtr(`{"owner":"x"}`),
	}
	p := ToParams(b)

	assert.Len(t, p, 13)
	assert.Equal(t, "abc123", p["id"])
	assert.Equal(t, "", p["parentId"])
	assert.Equal(t, 5, p["entityId"])
	assert.Equal(t, 250, p["currentHp"])
	assert.Equal(t, "Town", p["mapName"])
	assert.Equal(t, 1.0, p["positionX"])
	assert.Equal(t, 2.0, p["positionY"])
	assert.Equal(t, 3.0, p["positionZ"])
	assert.Equal(t, 0.0, p["rotationX"])
	assert.Equal(t, 90.0, p["rotationY"])
	assert.Equal(t, 0.0, p["rotationZ"])
	assert.Equal(t, "", p["lockPassword"])
	assert.Equal(t, `{"owner":"x"}`, p["extraData"])
	assert.Equal(t, p, b.Params())
}

func TestToParams_HitPointsDefault(t *testing.T) {
	for _, hp := range []int{0, -7} {
		p := ToParams(Building{CurrentHP: hp})
		assert.Equal(t, DefaultHitPoints, p["currentHp"], "hp=%d", hp)
	}
	assert.Equal(t, 1, ToParams(Building{CurrentHP: 1})["currentHp"])
}

func TestToParams_OptionalStrings(t *testing.T) {
	p := ToParams(Building{ParentID: strPtr("parent"), LockPassword: strPtr("")})
	assert.Equal(t, "parent", p["parentId"])
	assert.Equal(t, "", p["lockPassword"])
	assert.Equal(t, "", p["extraData"])
}

func TestInsertBuildingSQL_NamesEveryParam(t *testing.T) {
	bound, args, err := bind(insertBuildingSQL, ToParams(Building{ID: "x", MapName: "m"}))
	assert.NoError(t, err)
	assert.Len(t, args, 13)
	assert.NotContains(t, bound, ":")
	assert.Equal(t, "x", args[0])
	assert.Equal(t, "m", args[4])
}

func TestQuaternion_EulerAngles(t *testing.T) {
	s := math.Sqrt(0.5)
	tests := []struct {
		name string
		q    Quaternion
		want Vec3
	}{
		{"identity", Quaternion{W: 1}, Vec3{}},
		{"yaw 90", Quaternion{Y: s, W: s}, Vec3{Y: 90}},
		{"yaw -90", Quaternion{Y: -s, W: s}, Vec3{Y: 270}},
		{"pitch 30", Quaternion{X: math.Sin(math.Pi / 12), W: math.Cos(math.Pi / 12)}, Vec3{X: 30}},
		{"roll 45", Quaternion{Z: math.Sin(math.Pi / 8), W: math.Cos(math.Pi / 8)}, Vec3{Z: 45}},
		{"yaw 180", Quaternion{Y: 1}, Vec3{Y: 180}},
		{"pitch 90 gimbal", Quaternion{X: s, W: s}, Vec3{X: 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.EulerAngles()
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-6)
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 270.0, normalizeDegrees(-math.Pi/2), 1e-9)
	assert.Equal(t, 0.0, normalizeDegrees(2*math.Pi))
	assert.Equal(t, 0.0, normalizeDegrees(math.Copysign(0, -1)))
}
