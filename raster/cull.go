package raster

import (
	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

// CullMode selects which winding direction of triangle, if any, is
// discarded before rasterization.
type CullMode int

const (
	// CullNone rasterizes every triangle regardless of winding.
	CullNone CullMode = iota
	// CullBackFace discards back faces: triangles that were
	// clockwise-wound before the viewport's y-flip (positive
	// screen-space signed area).
	CullBackFace
	// CullFrontFace discards front faces: triangles that were
	// counter-clockwise-wound before the viewport's y-flip (negative
	// screen-space signed area).
	CullFrontFace
)

// signedArea returns twice the signed area of the screen-space
// triangle p0, p1, p2. Because the viewport transform flips y, a
// triangle that was counter-clockwise before that flip (a front face)
// has a negative screen-space area; a clockwise (back-facing)
// triangle has a positive one. Zero means degenerate.
func signedArea(p0, p1, p2 vecmath.Vector4[float32]) float32 {
	return p1.Sub(p0).Det2D(p2.Sub(p0))
}

// shouldCull reports whether a triangle of the given screen-space
// signed area should be discarded under mode. A triangle is
// counter-clockwise in source (object) space exactly when its
// screen-space area is negative, since the viewport's mandatory
// y-flip inverts the winding every triangle arrives with; back faces
// are therefore the positive-area (clockwise-in-source) triangles.
func shouldCull(mode CullMode, area float32) bool {
	switch mode {
	case CullBackFace:
		return area > 0
	case CullFrontFace:
		return area < 0
	default:
		return false
	}
}

// normalizeWinding reorders a clockwise-wound triangle (negative area)
// to counter-clockwise by swapping its last two vertices, so the
// edge-function traversal always works against a consistently-wound
// triangle and can use a single inside-test sign. The swap carries the
// per-vertex record along with the position — a record-only winding
// fix-up would desynchronize attributes from the geometry they
// describe.
func normalizeWinding[V shader.Interpolatable[V]](tri clipTriangle[V], area float32) clipTriangle[V] {
	if area < 0 {
		tri[1], tri[2] = tri[2], tri[1]
	}
	return tri
}
