package vmath

import (
	"math"
)

// Mat4 is a row-major 4x4 transform matrix, element (r,c) at index r*4+c
type Mat4 [16]float64

// Mat3 is a row-major 3x3 matrix, used for normal transforms
type Mat3 [9]float64

// M4Identity returns the identity matrix
func M4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4Mul returns a*b (b applied first)
func M4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+c]
			}
			m[r*4+c] = sum
		}
	}
	return m
}

// M4Translate returns a translation by t
func M4Translate(t Vec3) Mat4 {
	m := M4Identity()
	m[3] = t.X
	m[7] = t.Y
	m[11] = t.Z
	return m
}

// M4ScaleV returns a per-axis scale
func M4ScaleV(s Vec3) Mat4 {
	var m Mat4
	m[0] = s.X
	m[5] = s.Y
	m[10] = s.Z
	m[15] = 1
	return m
}

// M4RotateY returns a rotation about +Y by angle radians
func M4RotateY(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	m := M4Identity()
	m[0] = c
	m[2] = s
	m[8] = -s
	m[10] = c
	return m
}

// M4RotateX returns a rotation about +X by angle radians
func M4RotateX(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	m := M4Identity()
	m[5] = c
	m[6] = -s
	m[9] = s
	m[10] = c
	return m
}

// M4MulPoint transforms a point assuming an affine matrix (w stays 1)
func M4MulPoint(m Mat4, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// M4MulPointW transforms a point through a projective matrix, returning w
func M4MulPointW(m Mat4, v Vec3) (Vec3, float64) {
	out := Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
	w := m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]
	return out, w
}

// M4MulDir transforms a direction (ignores translation)
func M4MulDir(m Mat4, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// M4Perspective builds a right-handed perspective projection looking down -Z.
// fovY in radians; depth maps to [-1,1] clip range
func M4Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovY*0.5)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = 2 * far * near / (near - far)
	m[14] = -1
	return m
}

// M4View builds the world-to-view matrix from the camera position and its
// orthonormal basis (right, up, forward). Forward looks into the scene;
// view space looks down -Z
func M4View(eye, right, up, forward Vec3) Mat4 {
	return Mat4{
		right.X, right.Y, right.Z, -V3Dot(right, eye),
		up.X, up.Y, up.Z, -V3Dot(up, eye),
		-forward.X, -forward.Y, -forward.Z, V3Dot(forward, eye),
		0, 0, 0, 1,
	}
}

// M3FromM4 extracts the upper-left 3x3 block
func M3FromM4(m Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// M3MulVec transforms v by m
func M3MulVec(m Mat3, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// M3Transpose returns the transpose
func M3Transpose(m Mat3) Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// M3Inverse inverts m; returns the identity for singular input so that a
// degenerate model matrix degrades to unlit-but-stable normals
func M3Inverse(m Mat3) Mat3 {
	c00 := m[4]*m[8] - m[5]*m[7]
	c01 := m[5]*m[6] - m[3]*m[8]
	c02 := m[3]*m[7] - m[4]*m[6]
	det := m[0]*c00 + m[1]*c01 + m[2]*c02
	if det == 0 {
		return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	}
	inv := 1.0 / det
	return Mat3{
		c00 * inv, (m[2]*m[7] - m[1]*m[8]) * inv, (m[1]*m[5] - m[2]*m[4]) * inv,
		c01 * inv, (m[0]*m[8] - m[2]*m[6]) * inv, (m[2]*m[3] - m[0]*m[5]) * inv,
		c02 * inv, (m[1]*m[6] - m[0]*m[7]) * inv, (m[0]*m[4] - m[1]*m[3]) * inv,
	}
}

// M3Normal derives the normal matrix (inverse transpose of the model's
// rotation/scale block) for transforming surface normals
func M3Normal(model Mat4) Mat3 {
	return M3Transpose(M3Inverse(M3FromM4(model)))
}
