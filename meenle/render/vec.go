package render

import "math"

// Axis selects a rotation axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{k * v.X, k * v.Y, k * v.Z} }

// Rotate returns v rotated by angle radians about axis.
func Rotate(v Vec3, angle float64, axis Axis) Vec3 {
	return Rotation(angle, axis).MulVec(v)
}

// Mat3 is a row-major 3x3 matrix: m[row][col].
type Mat3 [3][3]float64

// Scaled returns the identity matrix scaled by k.
func Scaled(k float64) Mat3 {
	return Mat3{
		{k, 0, 0},
		{0, k, 0},
		{0, 0, k},
	}
}

// SinCos returns sin and cos of an angle in radians.
type SinCos func(rad float64) (sin, cos float64)

// Rotation returns the rotation matrix about axis.
func Rotation(angle float64, axis Axis) Mat3 {
	return RotationSinCos(math.Sincos, angle, axis)
}

// RotationSinCos is Rotation with a caller-provided trig primitive.
//
// The X and Y matrices rotate clockwise when looking down the positive axis; Z rotates
// counter-clockwise.
func RotationSinCos(sc SinCos, angle float64, axis Axis) Mat3 {
	if sc == nil {
		sc = math.Sincos
	}
	s, c := sc(angle)
	switch axis {
	case AxisX:
		return Mat3{
			{1, 0, 0},
			{0, c, s},
			{0, -s, c},
		}
	case AxisY:
		return Mat3{
			{c, 0, -s},
			{0, 1, 0},
			{s, 0, c},
		}
	default:
		return Mat3{
			{c, -s, 0},
			{s, c, 0},
			{0, 0, 1},
		}
	}
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[0][1] + v.Z*m[0][2],
		Y: v.X*m[1][0] + v.Y*m[1][1] + v.Z*m[1][2],
		Z: v.X*m[2][0] + v.Y*m[2][1] + v.Z*m[2][2],
	}
}
