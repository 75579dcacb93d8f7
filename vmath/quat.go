package vmath

import (
	"math"
)

// Quat is a rotation quaternion (W scalar part, XYZ vector part)
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity returns the no-rotation quaternion
func QIdentity() Quat {
	return Quat{W: 1}
}

// QFromAxisAngle builds a rotation of angle radians about unit axis
func QFromAxisAngle(axis Vec3, angle float64) Quat {
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{
		W: math.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// QMul composes rotations: applying QMul(a, b) equals applying b then a
func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QRotate rotates v by q; q must be unit-length
func QRotate(q Quat, v Vec3) Vec3 {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u = quaternion vector part
	u := Vec3{q.X, q.Y, q.Z}
	t := V3Scale(V3Cross(u, v), 2)
	return V3Add(V3Add(v, V3Scale(t, q.W)), V3Cross(u, t))
}

// V3RotateAxisAngle rotates v by angle radians about unit axis
func V3RotateAxisAngle(v, axis Vec3, angle float64) Vec3 {
	return QRotate(QFromAxisAngle(axis, angle), v)
}
