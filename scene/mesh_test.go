package scene

import (
	"math"
	"testing"

	"github.com/vashkar/lightdrift/vmath"
)

func TestBoxMeshShape(t *testing.T) {
	m := BoxMesh(vmath.Vec3{X: 2, Y: 4, Z: 6})
	if len(m.Verts) != 8 {
		t.Fatalf("Expected 8 vertices, got %d", len(m.Verts))
	}
	if len(m.Tris) != 12 {
		t.Fatalf("Expected 12 triangles, got %d", len(m.Tris))
	}
	for _, v := range m.Verts {
		if math.Abs(v.X) != 1 || math.Abs(v.Y) != 2 || math.Abs(v.Z) != 3 {
			t.Errorf("Vertex %v outside half extents", v)
		}
	}
}

func TestBoxMeshNormalsPointOutward(t *testing.T) {
	m := BoxMesh(vmath.Vec3{X: 2, Y: 2, Z: 2})
	for i, tri := range m.Tris {
		a, b, c := m.Verts[tri[0]], m.Verts[tri[1]], m.Verts[tri[2]]
		centroid := vmath.V3Scale(vmath.V3Add(vmath.V3Add(a, b), c), 1.0/3.0)
		// Outward means the normal agrees with the centroid direction
		if vmath.V3Dot(m.Normals[i], centroid) <= 0 {
			t.Errorf("Triangle %d normal %v points inward", i, m.Normals[i])
		}
		if math.Abs(vmath.V3Mag(m.Normals[i])-1) > 1e-12 {
			t.Errorf("Triangle %d normal not unit length", i)
		}
	}
}

func TestSubdivideCountsAndBounds(t *testing.T) {
	m := BoxMesh(vmath.Vec3{X: 2, Y: 2, Z: 2})
	sub := m.Subdivide(2)
	if len(sub.Tris) != 12*16 {
		t.Errorf("Expected %d triangles, got %d", 12*16, len(sub.Tris))
	}
	if len(sub.Normals) != len(sub.Tris) {
		t.Errorf("Expected one normal per triangle, got %d/%d", len(sub.Normals), len(sub.Tris))
	}
	// Midpoint splits stay on the box surface: no vertex may leave the hull
	for _, v := range sub.Verts {
		if math.Abs(v.X) > 1+1e-12 || math.Abs(v.Y) > 1+1e-12 || math.Abs(v.Z) > 1+1e-12 {
			t.Errorf("Subdivided vertex %v escaped the box", v)
		}
	}
	// Original mesh untouched
	if len(m.Tris) != 12 {
		t.Errorf("Subdivide mutated the source mesh: %d tris", len(m.Tris))
	}
}

func TestSubdivideSharesMidpoints(t *testing.T) {
	m := BoxMesh(vmath.Vec3{X: 2, Y: 2, Z: 2}).Subdivide(1)
	// 8 corners + one midpoint per unique edge; far fewer than the
	// 12*3 naive midpoints if edges were not deduplicated
	if len(m.Verts) >= 8+36 {
		t.Errorf("Expected shared edge midpoints, got %d vertices", len(m.Verts))
	}
}
