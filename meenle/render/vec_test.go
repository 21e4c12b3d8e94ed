package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func assertVecNear(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
}

func TestScaleVec(t *testing.T) {
	assert.Equal(t, V3(2, -4, 6), V3(1, -2, 3).Scale(2))
	assert.Equal(t, V3(3, 6, 9), Scaled(3).MulVec(V3(1, 2, 3)))
}

func TestRotationInvertible(t *testing.T) {
	vs := []Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1), V3(12.5, -7, 3.25), V3(-50, 50, -50)}
	angles := []float64{0, 0.1, math.Pi / 3, math.Pi, 2.5 * math.Pi, -1.75}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, v := range vs {
			for _, a := range angles {
				assertVecNear(t, v, Rotate(Rotate(v, a, axis), -a, axis))
			}
		}
	}
}

func TestRotationSignLayout(t *testing.T) {
	q := math.Pi / 2
	// Z turns +x toward +y.
	assertVecNear(t, V3(0, 1, 0), Rotate(V3(1, 0, 0), q, AxisZ))
	// X turns +y toward -z.
	assertVecNear(t, V3(0, 0, -1), Rotate(V3(0, 1, 0), q, AxisX))
	// Y turns +x toward +z.
	assertVecNear(t, V3(0, 0, 1), Rotate(V3(1, 0, 0), q, AxisY))
	// The rotation axis itself is fixed.
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		var v Vec3
		switch axis {
		case AxisX:
			v = V3(4, 0, 0)
		case AxisY:
			v = V3(0, 4, 0)
		case AxisZ:
			v = V3(0, 0, 4)
		}
		assertVecNear(t, v, Rotate(v, 1.234, axis))
	}
}

func TestRotationSinCosInjected(t *testing.T) {
	calls := 0
	sc := func(rad float64) (float64, float64) {
		calls++
		return math.Sincos(rad)
	}
	got := RotationSinCos(sc, 0.5, AxisZ)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Rotation(0.5, AxisZ), got)
}

func TestRotationNaNPropagates(t *testing.T) {
	v := Rotate(V3(1, 2, 3), math.NaN(), AxisY)
	assert.True(t, math.IsNaN(v.X))
	assert.Equal(t, 2.0, v.Y)
}

func TestRotationInverse(t *testing.T) {
	v := V3(4, -7, 2)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		got := Rotation(-0.3, axis).MulVec(Rotation(0.3, axis).MulVec(v))
		assert.InDelta(t, v.X, got.X, tol)
		assert.InDelta(t, v.Y, got.Y, tol)
		assert.InDelta(t, v.Z, got.Z, tol)
	}
}
