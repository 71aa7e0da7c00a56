package ygggo_building

import "math"

// DefaultHitPoints replaces a non-positive CurrentHP when a building is persisted.
const DefaultHitPoints = 100

// Vec3 is a point or a set of Euler angles in degrees.
type Vec3 struct {
	X, Y, Z float64
}

// Building is one placed building entity, built by the caller right before a save.
// Optional strings are pointers; nil means absent and is stored as "".
type Building struct {
	ID           string
	ParentID     *string
	EntityID     int
	CurrentHP    int
	MapName      string
	Position     Vec3
	Rotation     Vec3
	LockPassword *string
	ExtraData    *string
}

// Params is a named parameter set for statements written with :name placeholders.
type Params map[string]any

// Params is shorthand for ToParams(b).
func (b Building) Params() Params { return ToParams(b) }

// ToParams maps b onto the thirteen parameters of insertBuildingSQL.
func ToParams(b Building) Params {
	hp := b.CurrentHP
	if hp <= 0 {
		hp = DefaultHitPoints
	}
	return Params{
		"id":           b.ID,
		"parentId":     orEmpty(b.ParentID),
		"entityId":     b.EntityID,
		"currentHp":    hp,
		"mapName":      b.MapName,
		"positionX":    b.Position.X,
		"positionY":    b.Position.Y,
		"positionZ":    b.Position.Z,
		"rotationX":    b.Rotation.X,
		"rotationY":    b.Rotation.Y,
		"rotationZ":    b.Rotation.Z,
		"lockPassword": orEmpty(b.LockPassword),
		"extraData":    orEmpty(b.ExtraData),
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

const insertBuildingSQL = `INSERT INTO buildings (id, parentId, entityId, currentHp, mapName, positionX, positionY, positionZ, rotationX, rotationY, rotationZ, lockPassword, extraData) ` +
	`VALUES (:id, :parentId, :entityId, :currentHp, :mapName, :positionX, :positionY, :positionZ, :rotationX, :rotationY, :rotationZ, :lockPassword, :extraData)`

// Quaternion is a unit rotation quaternion.
type Quaternion struct {
	X, Y, Z, W float64
}

// EulerAngles converts q to degrees in [0, 360) using the Z, then X, then Y rotation order
// that game engines report for transforms.
func (q Quaternion) EulerAngles() Vec3 {
	sinX := 2 * (q.W*q.X - q.Y*q.Z)
	var x, y, z float64
	if math.Abs(sinX) >= 0.99999 {
		// gimbal lock: fold the whole yaw into Y
		x = math.Copysign(math.Pi/2, sinX)
		y = 2 * math.Atan2(q.Y, q.W)
		z = 0
	} else {
		x = math.Asin(sinX)
		y = math.Atan2(2*(q.W*q.Y+q.X*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
		z = math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.X*q.X+q.Z*q.Z))
	}
	return Vec3{X: normalizeDegrees(x), Y: normalizeDegrees(y), Z: normalizeDegrees(z)}
}

func normalizeDegrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	// snap float noise so 359.9999999 and -0 read as 0
	if d > 360-1e-9 || math.Abs(d) < 1e-9 {
		return 0
	}
	return d
}
