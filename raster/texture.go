package raster

import "github.com/gogpu/swrast/vecmath"

// Texture is an RGBA8 image sampled by UV coordinate. Sampling is
// always nearest-neighbor with clamp-to-edge addressing. There is no
// mipmapping, filtering, or wrap mode beyond clamping.
type Texture struct {
	*Image[vecmath.Color]
}

// NewTexture creates a Texture of the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{Image: NewImage[vecmath.Color](width, height)}
}

// TextureFromPixels wraps pre-decoded RGBA8 pixels (row-major,
// width*height entries) as a Texture, without copying. Decoding image
// files into pixels is left to the caller.
func TextureFromPixels(width, height int, pixels []vecmath.Color) *Texture {
	return &Texture{Image: &Image[vecmath.Color]{width: width, height: height, pixels: pixels}}
}

// Sample returns the nearest texel to normalized coordinate (u, v),
// clamping both u*width and v*height to the valid pixel range before
// lookup.
func (t *Texture) Sample(u, v float32) vecmath.Color {
	x := clampInt(int(u*float32(t.width)), 0, t.width-1)
	y := clampInt(int(v*float32(t.height)), 0, t.height-1)
	return t.Get(x, y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
