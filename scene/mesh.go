package scene

import (
	"github.com/vashkar/lightdrift/vmath"
)

// Mesh is immutable rest-frame geometry: vertex positions, triangle indices
// and precomputed per-face normals. Meshes are shared between objects; all
// per-frame state lives in the owning Object's Params
type Mesh struct {
	Verts   []vmath.Vec3
	Tris    [][3]int
	Normals []vmath.Vec3 // one per triangle, unit, rest frame
}

// computeNormals fills Normals from the winding of each triangle
func (m *Mesh) computeNormals() {
	m.Normals = make([]vmath.Vec3, len(m.Tris))
	for i, tri := range m.Tris {
		a, b, c := m.Verts[tri[0]], m.Verts[tri[1]], m.Verts[tri[2]]
		m.Normals[i] = vmath.V3Normalize(vmath.V3Cross(vmath.V3Sub(b, a), vmath.V3Sub(c, a)))
	}
}

// BoxMesh builds an axis-aligned box of the given size centered at the
// origin, faces wound counter-clockwise seen from outside
func BoxMesh(size vmath.Vec3) *Mesh {
	hx, hy, hz := size.X*0.5, size.Y*0.5, size.Z*0.5
	m := &Mesh{
		Verts: []vmath.Vec3{
			{X: -hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: -hz}, {X: hx, Y: hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz},
			{X: -hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: hz}, {X: hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: hz},
		},
		Tris: [][3]int{
			{4, 5, 6}, {4, 6, 7}, // +Z
			{1, 0, 3}, {1, 3, 2}, // -Z
			{1, 2, 6}, {1, 6, 5}, // +X
			{0, 4, 7}, {0, 7, 3}, // -X
			{3, 7, 6}, {3, 6, 2}, // +Y
			{0, 1, 5}, {0, 5, 4}, // -Y
		},
	}
	m.computeNormals()
	return m
}

// Subdivide splits every triangle into four at edge midpoints, levels times.
// The aberration transform bends straight edges, so coarse geometry shows
// faceting at high beta; subdivision keeps the warp smooth
func (m *Mesh) Subdivide(levels int) *Mesh {
	out := m
	for l := 0; l < levels; l++ {
		next := &Mesh{Verts: append([]vmath.Vec3(nil), out.Verts...)}
		mid := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}
			if idx, ok := mid[key]; ok {
				return idx
			}
			idx := len(next.Verts)
			next.Verts = append(next.Verts, vmath.V3Lerp(out.Verts[a], out.Verts[b], 0.5))
			mid[key] = idx
			return idx
		}
		for _, tri := range out.Tris {
			ab := midpoint(tri[0], tri[1])
			bc := midpoint(tri[1], tri[2])
			ca := midpoint(tri[2], tri[0])
			next.Tris = append(next.Tris,
				[3]int{tri[0], ab, ca},
				[3]int{ab, tri[1], bc},
				[3]int{ca, bc, tri[2]},
				[3]int{ab, bc, ca},
			)
		}
		out = next
	}
	out.computeNormals()
	return out
}
