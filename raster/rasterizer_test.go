package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

func solidColorPipeline(vp Viewport, cull CullMode, depth DepthState) Pipeline[shader.ColorUV] {
	return Pipeline[shader.ColorUV]{
		Viewport: vp,
		CullMode: cull,
		Depth:    depth,
		Program: shader.Program[shader.ColorUV]{
			Vertex:   shader.SolidColorVertex,
			Fragment: shader.SolidColorFragment,
		},
	}
}

func TestDrawIndexedFullScreenQuadFillsEveryPixel(t *testing.T) {
	target := NewRenderTarget(4, 4)
	depth := NewDepthBuffer(4, 4)
	pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullNone, DepthState{Test: CompareAlways, Write: true})

	red := vecmath.Vec4[float32](1, 0, 0, 1)
	in := &shader.SolidColorInput{
		Positions: []vecmath.Vector3[float32]{
			vecmath.Vec3[float32](-1, -1, 0),
			vecmath.Vec3[float32](1, -1, 0),
			vecmath.Vec3[float32](1, 1, 0),
			vecmath.Vec3[float32](-1, 1, 0),
		},
		MVP:   vecmath.Identity4(),
		Color: red,
	}

	pipeline.DrawIndexed(target, depth, []int{0, 1, 2, 0, 2, 3}, in, nil)

	want := vecmath.ColorFromVector4(red)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, want, target.Get(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// TestDrawIndexedNilDepthBufferSkipsDepthEntirely checks that a draw
// with no depth buffer neither tests nor writes depth, regardless of
// the pipeline's Depth state, instead of panicking on a nil dereference.
func TestDrawIndexedNilDepthBufferSkipsDepthEntirely(t *testing.T) {
	target := NewRenderTarget(4, 4)
	pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullNone, DepthState{Test: CompareLess, Write: true})

	red := vecmath.Vec4[float32](1, 0, 0, 1)
	in := &shader.SolidColorInput{
		Positions: []vecmath.Vector3[float32]{
			vecmath.Vec3[float32](-1, -1, 0),
			vecmath.Vec3[float32](1, -1, 0),
			vecmath.Vec3[float32](1, 1, 0),
			vecmath.Vec3[float32](-1, 1, 0),
		},
		MVP:   vecmath.Identity4(),
		Color: red,
	}

	assert.NotPanics(t, func() {
		pipeline.DrawIndexed(target, nil, []int{0, 1, 2, 0, 2, 3}, in, nil)
	})

	want := vecmath.ColorFromVector4(red)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, want, target.Get(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// A triangle whose NDC winding is counter-clockwise becomes
// clockwise in screen space because the viewport transform flips y.
// This fixture exercises that inversion.
func yFlippedWindingInput(color vecmath.Vector4[float32], z float32) *shader.SolidColorInput {
	return &shader.SolidColorInput{
		Positions: []vecmath.Vector3[float32]{
			vecmath.Vec3[float32](0, 0, z),
			vecmath.Vec3[float32](1, 0, z),
			vecmath.Vec3[float32](0, 1, z),
		},
		MVP:   vecmath.Identity4(),
		Color: color,
	}
}

func TestDrawIndexedCullModes(t *testing.T) {
	red := vecmath.Vec4[float32](1, 0, 0, 1)
	empty := vecmath.Color{}

	t.Run("front-face culls a source-counter-clockwise triangle", func(t *testing.T) {
		target := NewRenderTarget(4, 4)
		depth := NewDepthBuffer(4, 4)
		pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullFrontFace, DepthState{Test: CompareAlways, Write: true})
		pipeline.DrawIndexed(target, depth, []int{0, 1, 2}, yFlippedWindingInput(red, 0), nil)
		assert.Equal(t, empty, target.Get(2, 1))
	})

	t.Run("back-face keeps the same triangle", func(t *testing.T) {
		target := NewRenderTarget(4, 4)
		depth := NewDepthBuffer(4, 4)
		pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullBackFace, DepthState{Test: CompareAlways, Write: true})
		pipeline.DrawIndexed(target, depth, []int{0, 1, 2}, yFlippedWindingInput(red, 0), nil)
		assert.Equal(t, vecmath.ColorFromVector4(red), target.Get(2, 1))
	})

	t.Run("cull none always draws", func(t *testing.T) {
		target := NewRenderTarget(4, 4)
		depth := NewDepthBuffer(4, 4)
		pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullNone, DepthState{Test: CompareAlways, Write: true})
		pipeline.DrawIndexed(target, depth, []int{0, 1, 2}, yFlippedWindingInput(red, 0), nil)
		assert.Equal(t, vecmath.ColorFromVector4(red), target.Get(2, 1))
	})
}

func TestDrawIndexedDepthTestPicksNearestRegardlessOfOrder(t *testing.T) {
	red := vecmath.Vec4[float32](1, 0, 0, 1)
	blue := vecmath.Vec4[float32](0, 0, 1, 1)
	quad := []int{0, 1, 2, 0, 2, 3}
	positions := []vecmath.Vector3[float32]{
		vecmath.Vec3[float32](-1, -1, 0),
		vecmath.Vec3[float32](1, -1, 0),
		vecmath.Vec3[float32](1, 1, 0),
		vecmath.Vec3[float32](-1, 1, 0),
	}

	t.Run("far drawn first, near drawn second", func(t *testing.T) {
		target := NewRenderTarget(4, 4)
		depth := NewDepthBuffer(4, 4)
		pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullNone, DepthState{Test: CompareLess, Write: true})

		far := &shader.SolidColorInput{Positions: withZ(positions, 0.8), MVP: vecmath.Identity4(), Color: blue}
		near := &shader.SolidColorInput{Positions: withZ(positions, 0.2), MVP: vecmath.Identity4(), Color: red}

		pipeline.DrawIndexed(target, depth, quad, far, nil)
		pipeline.DrawIndexed(target, depth, quad, near, nil)

		assert.Equal(t, vecmath.ColorFromVector4(red), target.Get(2, 2))
	})

	t.Run("near drawn first, far drawn second", func(t *testing.T) {
		target := NewRenderTarget(4, 4)
		depth := NewDepthBuffer(4, 4)
		pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullNone, DepthState{Test: CompareLess, Write: true})

		far := &shader.SolidColorInput{Positions: withZ(positions, 0.8), MVP: vecmath.Identity4(), Color: blue}
		near := &shader.SolidColorInput{Positions: withZ(positions, 0.2), MVP: vecmath.Identity4(), Color: red}

		pipeline.DrawIndexed(target, depth, quad, near, nil)
		pipeline.DrawIndexed(target, depth, quad, far, nil)

		assert.Equal(t, vecmath.ColorFromVector4(red), target.Get(2, 2), "the farther triangle must fail its depth test against the nearer one already written")
	})
}

func withZ(positions []vecmath.Vector3[float32], z float32) []vecmath.Vector3[float32] {
	out := make([]vecmath.Vector3[float32], len(positions))
	for i, p := range positions {
		out[i] = vecmath.Vec3[float32](p.X, p.Y, z)
	}
	return out
}

func TestDrawIndexedYFlip(t *testing.T) {
	// A triangle near the top of NDC space (y close to +1) must land
	// near row 0 of the render target, not the bottom row.
	target := NewRenderTarget(4, 4)
	depth := NewDepthBuffer(4, 4)
	pipeline := solidColorPipeline(Viewport{0, 0, 4, 4}, CullNone, DepthState{Test: CompareAlways, Write: true})

	red := vecmath.Vec4[float32](1, 0, 0, 1)
	in := &shader.SolidColorInput{
		Positions: []vecmath.Vector3[float32]{
			vecmath.Vec3[float32](-1, 0.5, 0),
			vecmath.Vec3[float32](1, 0.5, 0),
			vecmath.Vec3[float32](0, 1, 0),
		},
		MVP:   vecmath.Identity4(),
		Color: red,
	}
	pipeline.DrawIndexed(target, depth, []int{0, 1, 2}, in, nil)

	top := vecmath.ColorFromVector4(red)
	assert.Equal(t, top, target.Get(2, 0), "a near-top NDC triangle must rasterize into the top row of pixels")
	assert.Equal(t, vecmath.Color{}, target.Get(2, 3), "the bottom row must remain untouched")
}

func TestDrawIndexedPanicsOnIncompleteProgram(t *testing.T) {
	var pipeline Pipeline[shader.ColorUV]
	pipeline.Viewport = Viewport{0, 0, 1, 1}

	assert.Panics(t, func() {
		pipeline.DrawIndexed(NewRenderTarget(1, 1), NewDepthBuffer(1, 1), []int{0, 1, 2}, nil, nil)
	})
}

func TestDrawIndexedPanicsOnBadIndexCount(t *testing.T) {
	pipeline := solidColorPipeline(Viewport{0, 0, 1, 1}, CullNone, DepthState{Test: CompareAlways, Write: true})

	assert.Panics(t, func() {
		pipeline.DrawIndexed(NewRenderTarget(1, 1), NewDepthBuffer(1, 1), []int{0, 1}, &shader.SolidColorInput{}, nil)
	})
}
