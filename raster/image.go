package raster

import (
	"fmt"

	"github.com/gogpu/swrast/vecmath"
)

// Image is a dense row-major 2-D pixel grid. Pixel (x, y) lives at
// index y*width + x. Out-of-bounds access is a programming error: the
// rasterizer never calls Get/Set with coordinates outside [0, Width)
// x [0, Height), so those methods trust the caller and do not bounds
// check on every access.
type Image[T any] struct {
	width, height int
	pixels        []T
}

// NewImage creates a zero-filled Image of the given dimensions. It
// panics if width or height is negative — a malformed call at the one
// point of construction, not a silent corruption discovered later.
func NewImage[T any](width, height int) *Image[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: NewImage called with negative dimensions (%d, %d)", width, height))
	}
	return &Image[T]{
		width:  width,
		height: height,
		pixels: make([]T, width*height),
	}
}

// Width returns the image width in pixels.
func (im *Image[T]) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image[T]) Height() int { return im.height }

// Get returns the pixel at (x, y). x and y must satisfy
// 0 <= x < Width and 0 <= y < Height.
func (im *Image[T]) Get(x, y int) T {
	return im.pixels[y*im.width+x]
}

// Set writes the pixel at (x, y). x and y must satisfy
// 0 <= x < Width and 0 <= y < Height.
func (im *Image[T]) Set(x, y int, v T) {
	im.pixels[y*im.width+x] = v
}

// Clear fills every pixel with v.
func (im *Image[T]) Clear(v T) {
	for i := range im.pixels {
		im.pixels[i] = v
	}
}

// Pixels returns the backing row-major pixel slice. Callers that
// mutate it directly are responsible for staying within bounds.
func (im *Image[T]) Pixels() []T {
	return im.pixels
}

// RenderTarget is the color output of a draw call: an RGBA8 pixel grid.
type RenderTarget = Image[vecmath.Color]

// DepthBuffer is the depth output of a draw call: one float32 per
// pixel, smaller meaning closer, following the [0, 1] convention
// produced by Matrix4.Perspective4 and the perspective divide.
type DepthBuffer = Image[float32]

// NewRenderTarget creates a RenderTarget of the given dimensions,
// cleared to transparent black.
func NewRenderTarget(width, height int) *RenderTarget {
	return NewImage[vecmath.Color](width, height)
}

// NewDepthBuffer creates a DepthBuffer of the given dimensions, cleared
// to 1.0 (the farthest representable depth).
func NewDepthBuffer(width, height int) *DepthBuffer {
	db := NewImage[float32](width, height)
	db.Clear(1.0)
	return db
}

// ClearRenderTarget fills rt with the color produced by converting c
// once via vecmath.ColorFromVector4.
func ClearRenderTarget(rt *RenderTarget, c vecmath.Vector4[float32]) {
	rt.Clear(vecmath.ColorFromVector4(c))
}

// ClearDepthBuffer fills db with value. The convention used throughout
// this package is 1.0 for the far plane.
func ClearDepthBuffer(db *DepthBuffer, value float32) {
	db.Clear(value)
}
