// Package relativity implements the observer state and the per-vertex
// relativistic aberration transform. Everything here is pure math with no
// rendering dependencies, so the transform can be evaluated deterministically
// in tests without a live terminal.
package relativity

import (
	"math"

	"github.com/vashkar/lightdrift/vmath"
)

const (
	// BetaMax caps the speed ratio below 1 so the aberration ratio never
	// collapses to zero and rotations stay well-conditioned
	BetaMax = 0.99

	// BetaStep is the increment applied by one discrete speed event
	BetaStep = 0.01

	// betaEpsilon and deltaEpsilon gate the effect-skip path: below these
	// there is no visible aberration and the rotation axis may be undefined
	betaEpsilon  = 0.001
	deltaEpsilon = 0.001
)

// AberrationRatio returns sqrt((1-beta)/(1+beta)), the angular compression
// factor of the relativistic aberration formula
func AberrationRatio(beta float64) float64 {
	return math.Sqrt((1 - beta) / (1 + beta))
}

// AberratedAngle maps the rest-frame angle theta between a point and the
// direction of travel to the apparent angle seen at speed ratio beta.
// Forward angles (theta < pi/2) compress toward zero as beta grows;
// theta = 0 and theta = pi are fixed points
func AberratedAngle(theta, beta float64) float64 {
	return 2 * math.Atan(AberrationRatio(beta)*math.Tan(theta*0.5))
}

// Aberrate maps the world position p to where it visually appears for an
// observer at obs moving along unit direction dir at speed ratio beta.
//
// The view ray is rotated toward the direction of travel by the angular
// difference theta - theta', about the axis perpendicular to both; distance
// from the observer is preserved, so depth never changes, only bearing.
// Points on the travel axis (view ray parallel to dir) and near-rest speeds
// are returned unchanged: there the rotation axis is undefined and the
// angular shift is below visibility, two faces of the same degeneracy
func Aberrate(p, obs, dir vmath.Vec3, beta float64) vmath.Vec3 {
	rel := vmath.V3Sub(p, obs)
	dist := vmath.V3Mag(rel)
	if dist == 0 {
		return p
	}
	view := vmath.V3Scale(rel, 1/dist)

	// Clamp the cosine: accumulated float error can push |dot| past 1 and
	// acos would return NaN
	cos := vmath.Clamp(vmath.V3Dot(view, dir), -1, 1)
	theta := math.Acos(cos)
	delta := theta - AberratedAngle(theta, beta)

	if beta <= betaEpsilon || math.Abs(delta) <= deltaEpsilon {
		return p
	}

	axis := vmath.V3Cross(view, dir)
	axisMag := vmath.V3Mag(axis)
	if axisMag == 0 {
		// Exactly on the travel axis; theta' == theta there anyway
		return p
	}
	axis = vmath.V3Scale(axis, 1/axisMag)

	// Positive delta swings the view ray toward dir
	rotated := vmath.V3RotateAxisAngle(view, axis, delta)
	return vmath.V3Add(obs, vmath.V3Scale(rotated, dist))
}
