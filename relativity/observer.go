package relativity

import (
	"math"

	"github.com/vashkar/lightdrift/vmath"
)

// Observer is the first-person viewpoint: a position, a look orientation
// (yaw/pitch), and the speed ratio beta as a fraction of light speed.
// One Observer exists per scene; per-frame consumers receive copies of its
// derived values, never pointers into it
type Observer struct {
	Position vmath.Vec3

	// Yaw rotates about +Y (0 looks down -Z); Pitch tilts about the local
	// right axis and is clamped short of straight up/down
	Yaw   float64
	Pitch float64

	beta float64
}

// pitchLimit stops the forward vector just short of vertical so the camera
// basis never degenerates against the world up axis
const pitchLimit = math.Pi/2 - 0.01

// NewObserver creates an observer at pos looking down -Z with clamped beta
func NewObserver(pos vmath.Vec3, beta float64) *Observer {
	o := &Observer{Position: pos}
	o.SetBeta(beta)
	return o
}

// Beta returns the current speed ratio in [0, BetaMax]
func (o *Observer) Beta() float64 {
	return o.beta
}

// SetBeta sets the speed ratio, normalizing out-of-range input rather than
// rejecting it
func (o *Observer) SetBeta(beta float64) {
	o.beta = vmath.Clamp(beta, 0, BetaMax)
}

// StepBeta applies steps discrete speed events of BetaStep each, clamped
func (o *Observer) StepBeta(steps int) {
	o.SetBeta(o.beta + float64(steps)*BetaStep)
}

// Look applies a look-direction change in yaw/pitch radians
func (o *Observer) Look(dyaw, dpitch float64) {
	o.Yaw += dyaw
	o.Pitch = vmath.Clamp(o.Pitch+dpitch, -pitchLimit, pitchLimit)
}

// Forward returns the unit view direction derived from yaw/pitch
func (o *Observer) Forward() vmath.Vec3 {
	cp := math.Cos(o.Pitch)
	return vmath.Vec3{
		X: math.Sin(o.Yaw) * cp,
		Y: math.Sin(o.Pitch),
		Z: -math.Cos(o.Yaw) * cp,
	}
}

// Right returns the unit right axis, horizontal regardless of pitch
func (o *Observer) Right() vmath.Vec3 {
	return vmath.Vec3{X: math.Cos(o.Yaw), Y: 0, Z: math.Sin(o.Yaw)}
}

// Up completes the orthonormal camera basis
func (o *Observer) Up() vmath.Vec3 {
	return vmath.V3Cross(o.Right(), o.Forward())
}

// MoveRelative translates the observer by forward/right amounts in its own
// horizontal frame. Vertical look does not leak into travel: movement stays
// on the walking plane
func (o *Observer) MoveRelative(forward, right float64) {
	f := o.Forward()
	f.Y = 0
	f = vmath.V3Normalize(f)
	r := o.Right()
	o.Position = vmath.V3Add(o.Position,
		vmath.V3Add(vmath.V3Scale(f, forward), vmath.V3Scale(r, right)))
}

// ViewMatrix returns the world-to-view transform for the current pose
func (o *Observer) ViewMatrix() vmath.Mat4 {
	return vmath.M4View(o.Position, o.Right(), o.Up(), o.Forward())
}
