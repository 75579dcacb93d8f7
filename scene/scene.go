// Package scene holds the static world: renderable objects, the light, and
// the observer. The scene is built once at startup; the frame loop only
// reads geometry and rewrites per-object transform parameters.
package scene

import (
	"github.com/vashkar/lightdrift/relativity"
	"github.com/vashkar/lightdrift/vmath"
)

// Light is the single point light of the three-term shading model
type Light struct {
	Pos   vmath.Vec3
	Color vmath.Vec3
}

// Scene owns the ordered object list, the light and the observer.
// Objects do not reference each other
type Scene struct {
	Objects  []*Object
	Light    Light
	Observer *relativity.Observer
}

// Default builds the built-in test hall: a floor slab and two colonnades of
// pillars flanking a corridor down -Z, with a few accent cubes. Straight
// rows of repeated geometry make the aberration warp easy to read
func Default() *Scene {
	s := &Scene{
		Light:    Light{Pos: vmath.Vec3{X: 4, Y: 10, Z: -8}, Color: vmath.Vec3{X: 1, Y: 1, Z: 1}},
		Observer: relativity.NewObserver(vmath.Vec3{X: 0, Y: 1.6, Z: 6}, 0),
	}

	floor := BoxMesh(vmath.Vec3{X: 40, Y: 0.5, Z: 80}).Subdivide(3)
	s.Objects = append(s.Objects, &Object{
		Name:  "floor",
		Mesh:  floor,
		Pos:   vmath.Vec3{X: 0, Y: -0.25, Z: -20},
		Scale: vmath.Vec3{X: 1, Y: 1, Z: 1},
		Color: vmath.Vec3{X: 0.35, Y: 0.35, Z: 0.4},
	})

	pillar := BoxMesh(vmath.Vec3{X: 1, Y: 6, Z: 1}).Subdivide(2)
	for i := 0; i < 8; i++ {
		z := float64(-6 * i)
		for _, x := range []float64{-5, 5} {
			s.Objects = append(s.Objects, &Object{
				Name:  "pillar",
				Mesh:  pillar,
				Pos:   vmath.Vec3{X: x, Y: 3, Z: z},
				Scale: vmath.Vec3{X: 1, Y: 1, Z: 1},
				Color: vmath.Vec3{X: 0.7, Y: 0.65, Z: 0.55},
			})
		}
	}

	cube := BoxMesh(vmath.Vec3{X: 2, Y: 2, Z: 2}).Subdivide(2)
	accents := []struct {
		pos   vmath.Vec3
		yaw   float64
		color vmath.Vec3
	}{
		{vmath.Vec3{X: -2.5, Y: 1, Z: -14}, 0.5, vmath.Vec3{X: 0.9, Y: 0.25, Z: 0.2}},
		{vmath.Vec3{X: 2.8, Y: 1, Z: -26}, 1.1, vmath.Vec3{X: 0.2, Y: 0.7, Z: 0.9}},
		{vmath.Vec3{X: 0, Y: 1, Z: -40}, 0.2, vmath.Vec3{X: 0.95, Y: 0.8, Z: 0.2}},
	}
	for _, a := range accents {
		s.Objects = append(s.Objects, &Object{
			Name:  "cube",
			Mesh:  cube,
			Pos:   a.pos,
			Yaw:   a.yaw,
			Scale: vmath.Vec3{X: 1, Y: 1, Z: 1},
			Color: a.color,
		})
	}

	return s
}
