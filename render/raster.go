package render

import (
	"math"

	"github.com/vashkar/lightdrift/vmath"
)

// screenVert is a projected vertex: pixel coordinates plus reciprocal view
// depth for the z-test
type screenVert struct {
	x, y float64
	invW float64
}

func edge(a, b screenVert, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fillTriangle rasterizes a flat-colored triangle with depth testing.
// Winding is irrelevant here; culling happened in world space
func fillTriangle(fb *Framebuffer, v0, v1, v2 screenVert, color vmath.Vec3) {
	area := edge(v0, v1, v2.x, v2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX := int(math.Floor(min3(v0.x, v1.x, v2.x)))
	maxX := int(math.Ceil(max3(v0.x, v1.x, v2.x)))
	minY := int(math.Floor(min3(v0.y, v1.y, v2.y)))
	maxY := int(math.Ceil(max3(v0.y, v1.y, v2.y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= fb.W {
		maxX = fb.W - 1
	}
	if maxY >= fb.H {
		maxY = fb.H - 1
	}

	invArea := 1.0 / area
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(v1, v2, px, py)
			w1 := edge(v2, v0, px, py)
			w2 := edge(v0, v1, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			// 1/w interpolates linearly in screen space
			invW := (w0*v0.invW + w1*v1.invW + w2*v2.invW) * invArea
			fb.Plot(x, y, color, invW)
		}
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
