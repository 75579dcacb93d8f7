package render

import (
	"math"

	"github.com/vashkar/lightdrift/relativity"
	"github.com/vashkar/lightdrift/scene"
	"github.com/vashkar/lightdrift/vmath"
)

// Camera projection constants. The half-block framebuffer has roughly
// square pixels, so aspect is plain W/H
const (
	fovY     = 70 * math.Pi / 180
	nearDist = 0.1
	farDist  = 400.0
)

// Pipeline draws objects into a framebuffer: model transform, per-vertex
// aberration, view/projection, screen-space cull, flat shading, raster.
// Scratch buffers are reused across objects; the pipeline itself holds no
// cross-frame state
type Pipeline struct {
	fb *Framebuffer

	world  []vmath.Vec3 // aberrated world positions
	screen []screenVert
	valid  []bool // vertex survived the near plane
}

// NewPipeline creates a pipeline rendering into fb
func NewPipeline(fb *Framebuffer) *Pipeline {
	return &Pipeline{fb: fb}
}

// DrawObject renders one object from its current Params snapshot. The
// caller refreshes Params first; nothing here reads the live observer
func (pl *Pipeline) DrawObject(o *scene.Object) {
	mesh := o.Mesh
	p := &o.Params
	proj := vmath.M4Perspective(fovY, float64(pl.fb.W)/float64(pl.fb.H), nearDist, farDist)

	pl.grow(len(mesh.Verts))
	for i, v := range mesh.Verts {
		world := vmath.M4MulPoint(p.Model, v)
		world = relativity.Aberrate(world, p.ObserverPos, p.MotionDir, p.Beta)
		pl.world[i] = world

		view := vmath.M4MulPoint(p.View, world)
		clip, w := vmath.M4MulPointW(proj, view)
		if w <= nearDist {
			pl.valid[i] = false
			continue
		}
		pl.valid[i] = true
		invW := 1.0 / w
		pl.screen[i] = screenVert{
			x:    (clip.X*invW + 1) * 0.5 * float64(pl.fb.W),
			y:    (1 - clip.Y*invW) * 0.5 * float64(pl.fb.H),
			invW: invW,
		}
	}

	for ti, tri := range mesh.Tris {
		i0, i1, i2 := tri[0], tri[1], tri[2]
		if !pl.valid[i0] || !pl.valid[i1] || !pl.valid[i2] {
			continue
		}
		v0, v1, v2 := pl.screen[i0], pl.screen[i1], pl.screen[i2]

		// Front faces wind counter-clockwise in NDC; the y flip to pixel
		// coordinates makes their signed area negative here
		if edge(v0, v1, v2.x, v2.y) >= 0 {
			continue
		}

		normal := vmath.V3Normalize(vmath.M3MulVec(p.Normal, mesh.Normals[ti]))
		centroid := vmath.V3Scale(
			vmath.V3Add(vmath.V3Add(pl.world[i0], pl.world[i1]), pl.world[i2]), 1.0/3.0)
		fillTriangle(pl.fb, v0, v1, v2, Shade(p, centroid, normal))
	}
}

func (pl *Pipeline) grow(n int) {
	if cap(pl.world) < n {
		pl.world = make([]vmath.Vec3, n)
		pl.screen = make([]screenVert, n)
		pl.valid = make([]bool, n)
	} else {
		pl.world = pl.world[:n]
		pl.screen = pl.screen[:n]
		pl.valid = pl.valid[:n]
	}
}
