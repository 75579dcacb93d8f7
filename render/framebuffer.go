// Package render is the software pipeline: per-vertex aberration, flat
// shading, triangle rasterization into an RGB framebuffer, and the
// half-block blit onto the terminal. One terminal cell carries two vertical
// pixels through the upper-half-block glyph, fg above and bg below
package render

import (
	"github.com/vashkar/lightdrift/vmath"
)

// Framebuffer is a W x H pixel grid with linear RGB in [0,1] and a
// reciprocal-depth buffer. H is twice the terminal row count
type Framebuffer struct {
	W, H     int
	color    []vmath.Vec3
	invDepth []float64
}

// NewFramebuffer sizes a framebuffer for a terminal of cols x rows cells
func NewFramebuffer(cols, rows int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(cols, rows)
	return fb
}

// Resize adjusts to a new terminal size, reallocating only on growth
func (fb *Framebuffer) Resize(cols, rows int) {
	w, h := cols, rows*2
	size := w * h
	if cap(fb.color) < size {
		fb.color = make([]vmath.Vec3, size)
		fb.invDepth = make([]float64, size)
	} else {
		fb.color = fb.color[:size]
		fb.invDepth = fb.invDepth[:size]
	}
	fb.W, fb.H = w, h
}

// Clear fills a vertical sky gradient and resets depth. Depth is stored as
// 1/w so that zero means "infinitely far": any drawn pixel wins
func (fb *Framebuffer) Clear(top, bottom vmath.Vec3) {
	for y := 0; y < fb.H; y++ {
		t := float64(y) / float64(fb.H-1)
		c := vmath.V3Lerp(top, bottom, t)
		row := y * fb.W
		for x := 0; x < fb.W; x++ {
			fb.color[row+x] = c
			fb.invDepth[row+x] = 0
		}
	}
}

// Plot writes a pixel if it is nearer than what is already there.
// invW is the reciprocal of view depth; larger is closer
func (fb *Framebuffer) Plot(x, y int, c vmath.Vec3, invW float64) {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return
	}
	i := y*fb.W + x
	if invW > fb.invDepth[i] {
		fb.invDepth[i] = invW
		fb.color[i] = c
	}
}

// At returns the pixel color (test hook)
func (fb *Framebuffer) At(x, y int) vmath.Vec3 {
	return fb.color[y*fb.W+x]
}

// DepthAt returns the stored reciprocal depth (test hook)
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	return fb.invDepth[y*fb.W+x]
}
