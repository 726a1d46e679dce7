package raster

import "github.com/gogpu/swrast/vecmath"

// Viewport is the integer pixel rectangle a draw call renders into.
// XMax and YMax are treated as exclusive upper bounds once clamped
// against a render target's dimensions.
type Viewport struct {
	XMin, YMin int
	XMax, YMax int
}

// ToScreenSpace maps a post-perspective-divide NDC position to pixel
// space. NDC +y is up; pixel +y is down, so the mapping flips y. z and
// w are passed through unchanged.
func (vp Viewport) ToScreenSpace(v vecmath.Vector4[float32]) vecmath.Vector4[float32] {
	width := float32(vp.XMax - vp.XMin)
	height := float32(vp.YMax - vp.YMin)

	return vecmath.Vector4[float32]{
		X: float32(vp.XMin) + (v.X*0.5+0.5)*width,
		Y: float32(vp.YMin) + (1-(v.Y*0.5+0.5))*height,
		Z: v.Z,
		W: v.W,
	}
}
