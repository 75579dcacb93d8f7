package scene

import (
	"github.com/vashkar/lightdrift/relativity"
	"github.com/vashkar/lightdrift/vmath"
)

// Params is the per-object transform-parameter snapshot consumed by the
// draw pipeline: everything the aberration transform and the shading stage
// need for one object in one frame. Objects own their Params by value;
// refresh copies in, so a later mutation of the observer or of another
// object's snapshot can never alias into this one
type Params struct {
	ObjectColor vmath.Vec3
	LightPos    vmath.Vec3
	LightColor  vmath.Vec3

	Beta        float64
	MotionDir   vmath.Vec3
	ObserverPos vmath.Vec3

	Model  vmath.Mat4
	View   vmath.Mat4
	Normal vmath.Mat3
}

// Object is one renderable: shared immutable mesh, a static pose, a color,
// and its private Params snapshot
type Object struct {
	Name  string
	Mesh  *Mesh
	Pos   vmath.Vec3
	Yaw   float64
	Scale vmath.Vec3
	Color vmath.Vec3

	Params Params
}

// ModelMatrix derives the local-to-world transform from the pose
func (o *Object) ModelMatrix() vmath.Mat4 {
	return vmath.M4Mul(vmath.M4Translate(o.Pos),
		vmath.M4Mul(vmath.M4RotateY(o.Yaw), vmath.M4ScaleV(o.Scale)))
}

// RefreshParams rebuilds the snapshot from the current observer and light.
// Called exactly once per frame per object, immediately before that
// object's draw
func (o *Object) RefreshParams(obs *relativity.Observer, light Light) {
	model := o.ModelMatrix()
	o.Params = Params{
		ObjectColor: o.Color,
		LightPos:    light.Pos,
		LightColor:  light.Color,
		Beta:        obs.Beta(),
		MotionDir:   obs.Forward(),
		ObserverPos: obs.Position,
		Model:       model,
		View:        obs.ViewMatrix(),
		Normal:      vmath.M3Normal(model),
	}
}
