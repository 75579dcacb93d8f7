package vmath

import (
	"math"
	"testing"
)

func TestQRotateQuarterTurn(t *testing.T) {
	// +X rotated 90 degrees about +Z lands on +Y
	got := V3RotateAxisAngle(Vec3{1, 0, 0}, Vec3{0, 0, 1}, math.Pi/2)
	if !v3Approx(got, Vec3{0, 1, 0}) {
		t.Errorf("Expected {0,1,0}, got %v", got)
	}
}

func TestQRotatePreservesLength(t *testing.T) {
	v := Vec3{1, 2, -3}
	axis := V3Normalize(Vec3{1, 1, 1})
	for _, angle := range []float64{0.1, 1.0, math.Pi, 5.0} {
		got := V3RotateAxisAngle(v, axis, angle)
		if !approx(V3Mag(got), V3Mag(v)) {
			t.Errorf("Rotation by %v changed length: %v -> %v", angle, V3Mag(v), V3Mag(got))
		}
	}
}

func TestQRotateIdentity(t *testing.T) {
	v := Vec3{4, -2, 7}
	if got := QRotate(QIdentity(), v); !v3Approx(got, v) {
		t.Errorf("Expected identity rotation to return %v, got %v", v, got)
	}
	if got := V3RotateAxisAngle(v, Vec3{0, 1, 0}, 0); !v3Approx(got, v) {
		t.Errorf("Expected zero-angle rotation to return %v, got %v", v, got)
	}
}

func TestQMulCompose(t *testing.T) {
	// Two quarter turns about the same axis equal a half turn
	q := QFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	half := QMul(q, q)
	got := QRotate(half, Vec3{1, 0, 0})
	if !v3Approx(got, Vec3{-1, 0, 0}) {
		t.Errorf("Expected {-1,0,0}, got %v", got)
	}
}
