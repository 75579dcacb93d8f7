package relativity

import (
	"math"
	"testing"

	"github.com/vashkar/lightdrift/vmath"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func v3Approx(a, b vmath.Vec3, tol float64) bool {
	return approx(a.X, b.X, tol) && approx(a.Y, b.Y, tol) && approx(a.Z, b.Z, tol)
}

func TestAberrateIdentityAtRest(t *testing.T) {
	obs := vmath.Vec3{X: 1, Y: 2, Z: 3}
	dir := vmath.Vec3{X: 0, Y: 0, Z: -1}
	points := []vmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: -2, Z: 7},
		{X: 1, Y: 2, Z: -10},
		{X: -3, Y: 0.5, Z: 3.1},
	}
	for _, p := range points {
		if got := Aberrate(p, obs, dir, 0); got != p {
			t.Errorf("beta=0: expected %v unchanged, got %v", p, got)
		}
	}
}

func TestAberrateEffectSkipNearRest(t *testing.T) {
	obs := vmath.Vec3{}
	dir := vmath.Vec3{X: 0, Y: 0, Z: -1}
	p := vmath.Vec3{X: 4, Y: 1, Z: -2}
	if got := Aberrate(p, obs, dir, 0.001); got != p {
		t.Errorf("beta at skip threshold: expected %v unchanged, got %v", p, got)
	}
}

func TestAberrateFixedPointsOnTravelAxis(t *testing.T) {
	obs := vmath.Vec3{}
	dir := vmath.Vec3{X: 0, Y: 0, Z: -1}
	ahead := vmath.Vec3{X: 0, Y: 0, Z: -8}
	behind := vmath.Vec3{X: 0, Y: 0, Z: 8}

	for _, beta := range []float64{0.1, 0.5, 0.9, BetaMax} {
		if got := Aberrate(ahead, obs, dir, beta); got != ahead {
			t.Errorf("beta=%v: point dead ahead moved to %v", beta, got)
		}
		if got := Aberrate(behind, obs, dir, beta); got != behind {
			t.Errorf("beta=%v: point dead behind moved to %v", beta, got)
		}
	}
}

func TestAberratedAngleFixedEnds(t *testing.T) {
	for _, beta := range []float64{0, 0.3, 0.8, BetaMax} {
		if got := AberratedAngle(0, beta); !approx(got, 0, 1e-12) {
			t.Errorf("beta=%v: theta=0 mapped to %v", beta, got)
		}
		// tan(pi/2) overflows to +Inf and atan folds it back to pi/2
		if got := AberratedAngle(math.Pi, beta); !approx(got, math.Pi, 1e-6) {
			t.Errorf("beta=%v: theta=pi mapped to %v", beta, got)
		}
	}
}

func TestAberratedAngleMonotonicInBeta(t *testing.T) {
	// A forward point compresses strictly toward the travel direction as
	// speed increases
	theta := math.Pi / 3
	prev := AberratedAngle(theta, 0)
	for beta := 0.05; beta < 1; beta += 0.05 {
		cur := AberratedAngle(theta, beta)
		if cur >= prev {
			t.Fatalf("theta' not strictly decreasing at beta=%v: %v >= %v", beta, cur, prev)
		}
		prev = cur
	}
}

func TestAberrateDistancePreserved(t *testing.T) {
	obs := vmath.Vec3{X: 2, Y: 1, Z: -3}
	dir := vmath.V3Normalize(vmath.Vec3{X: 1, Y: 0.2, Z: -1})
	points := []vmath.Vec3{
		{X: 10, Y: 0, Z: 0},
		{X: -4, Y: 8, Z: 2},
		{X: 2.5, Y: 1, Z: 3},
		{X: 0, Y: -7, Z: -7},
	}
	for _, beta := range []float64{0.2, 0.6, 0.95} {
		for _, p := range points {
			got := Aberrate(p, obs, dir, beta)
			d0 := vmath.V3Dist(p, obs)
			d1 := vmath.V3Dist(got, obs)
			if !approx(d0, d1, 1e-9) {
				t.Errorf("beta=%v p=%v: distance %v changed to %v", beta, p, d0, d1)
			}
		}
	}
}

func TestAberrateNinetyDegreeScenario(t *testing.T) {
	// beta=0.8, observer at origin heading -Z, point at 90 degrees off the
	// bow: the aberration ratio is sqrt(0.2/1.8)=1/3 and the point is seen
	// at 2*atan(1/3) ~ 36.87 degrees from the travel direction
	obs := vmath.Vec3{}
	dir := vmath.Vec3{X: 0, Y: 0, Z: -1}
	p := vmath.Vec3{X: 1, Y: 0, Z: 0}
	beta := 0.8

	if r := AberrationRatio(beta); !approx(r, 1.0/3.0, 1e-9) {
		t.Fatalf("Expected ratio 1/3, got %v", r)
	}
	wantAngle := 2 * math.Atan(1.0/3.0) // ~0.6435
	if got := AberratedAngle(math.Pi/2, beta); !approx(got, wantAngle, 1e-9) {
		t.Fatalf("Expected theta' %v, got %v", wantAngle, got)
	}

	got := Aberrate(p, obs, dir, beta)
	view := vmath.V3Normalize(vmath.V3Sub(got, obs))
	gotAngle := math.Acos(vmath.Clamp(vmath.V3Dot(view, dir), -1, 1))
	if !approx(gotAngle, wantAngle, 1e-9) {
		t.Errorf("Expected apparent angle %v, got %v", wantAngle, gotAngle)
	}
	// The ray swings within the plane spanned by view and travel direction
	if !approx(got.Y, 0, 1e-9) {
		t.Errorf("Expected rotation in the XZ plane, got Y=%v", got.Y)
	}
	if got.Z >= 0 {
		t.Errorf("Expected point pulled toward -Z, got Z=%v", got.Z)
	}
}

func TestAberrateObserverCoincident(t *testing.T) {
	obs := vmath.Vec3{X: 1, Y: 1, Z: 1}
	if got := Aberrate(obs, obs, vmath.Vec3{X: 0, Y: 0, Z: -1}, 0.9); got != obs {
		t.Errorf("Expected coincident point unchanged, got %v", got)
	}
}

func TestAberrateNeverNaN(t *testing.T) {
	obs := vmath.Vec3{}
	dir := vmath.Vec3{X: 0, Y: 0, Z: -1}
	// Sweep including axis-degenerate and near-degenerate geometry
	for _, p := range []vmath.Vec3{
		{X: 0, Y: 0, Z: -1}, {X: 0, Y: 0, Z: 1}, {X: 1e-9, Y: 0, Z: -1}, {X: 0, Y: 1e-12, Z: 5}, {X: 1e3, Y: 0, Z: -1e3},
	} {
		for _, beta := range []float64{0, 0.001, 0.5, BetaMax} {
			got := Aberrate(p, obs, dir, beta)
			if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
				t.Errorf("NaN output for p=%v beta=%v", p, beta)
			}
		}
	}
}
