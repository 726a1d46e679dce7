package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

// Pipeline holds the fixed state of a draw call: where it renders,
// which winding it discards, and how it tests and writes depth. The
// only fill mode supported is solid triangles — there is no
// wireframe or point mode.
type Pipeline[V shader.Interpolatable[V]] struct {
	Viewport Viewport
	CullMode CullMode
	Depth    DepthState
	Program  shader.Program[V]
}

// DrawIndexed draws the triangles described by indices — consumed
// three at a time, each index naming one logical vertex — into target
// and depth. depth may be nil, in which case the draw performs no
// depth test or write regardless of the pipeline's Depth state.
// vertexInput and fragmentInput are passed through unchanged to the
// program's vertex and fragment functions respectively; their shape is
// a contract between the caller and the chosen Program.
//
// len(indices) must be a multiple of 3. DrawIndexed panics if the
// pipeline's Program is not fully set, since that is a programming
// error at the call site rather than recoverable draw-time data.
func (p *Pipeline[V]) DrawIndexed(target *RenderTarget, depth *DepthBuffer, indices []int, vertexInput, fragmentInput any) {
	if !p.Program.IsValid() {
		panic("raster: DrawIndexed called with an incomplete Program (Vertex and Fragment must both be set)")
	}
	if len(indices)%3 != 0 {
		panic("raster: DrawIndexed called with an index count that is not a multiple of 3")
	}

	for i := 0; i+2 < len(indices); i += 3 {
		rec0, pos0 := p.Program.Vertex(indices[i], vertexInput)
		rec1, pos1 := p.Program.Vertex(indices[i+1], vertexInput)
		rec2, pos2 := p.Program.Vertex(indices[i+2], vertexInput)

		tri := clipTriangle[V]{
			{Position: pos0, Record: rec0},
			{Position: pos1, Record: rec1},
			{Position: pos2, Record: rec2},
		}

		clipped, n := ClipTriangle[V]([3]ClipVertex[V](tri))
		for t := 0; t < n; t++ {
			p.rasterizeTriangle(target, depth, clipped[t], fragmentInput)
		}
	}
}

// rasterizeTriangle carries one already-clipped triangle through
// perspective divide, viewport transform, culling, winding fix-up,
// bounding-box traversal, and per-pixel shading.
func (p *Pipeline[V]) rasterizeTriangle(target *RenderTarget, depth *DepthBuffer, tri clipTriangle[V], fragmentInput any) {
	var screen [3]vecmath.Vector4[float32]
	for i, v := range tri {
		screen[i] = p.Viewport.ToScreenSpace(vecmath.PerspectiveDivide(v.Position))
	}

	area := signedArea(screen[0], screen[1], screen[2])
	if area == 0 {
		return
	}
	if shouldCull(p.CullMode, area) {
		return
	}
	if area < 0 {
		screen[1], screen[2] = screen[2], screen[1]
	}
	tri = normalizeWinding(tri, area)
	if area < 0 {
		area = -area
	}

	// A vertex sitting exactly on the w=0 plane has no valid
	// perspective-correct weight; such a triangle survived clipping
	// only in the degenerate case of a camera placed at the vertex
	// itself, and is not worth a special-cased partial rasterization.
	if tri[0].Position.W == 0 || tri[1].Position.W == 0 || tri[2].Position.W == 0 {
		return
	}

	minX := int(math32.Floor(minOf3(screen[0].X, screen[1].X, screen[2].X)))
	maxX := int(math32.Floor(maxOf3(screen[0].X, screen[1].X, screen[2].X)))
	minY := int(math32.Floor(minOf3(screen[0].Y, screen[1].Y, screen[2].Y)))
	maxY := int(math32.Floor(maxOf3(screen[0].Y, screen[1].Y, screen[2].Y)))

	bx0 := maxOfInt3(p.Viewport.XMin, 0, minX)
	bx1 := minInt(p.Viewport.XMax, target.Width()) - 1
	if maxX < bx1 {
		bx1 = maxX
	}
	by0 := maxOfInt3(p.Viewport.YMin, 0, minY)
	by1 := minInt(p.Viewport.YMax, target.Height()) - 1
	if maxY < by1 {
		by1 = maxY
	}

	for y := by0; y <= by1; y++ {
		for x := bx0; x <= bx1; x++ {
			sample := vecmath.Vec4[float32](float32(x)+0.5, float32(y)+0.5, 0, 0)

			e01 := edgeFunc(screen[0], screen[1], sample)
			e12 := edgeFunc(screen[1], screen[2], sample)
			e20 := edgeFunc(screen[2], screen[0], sample)

			// Edge-inclusive coverage test: a pixel on a shared edge
			// belongs to whichever triangle's test it satisfies here,
			// with no top-left tie-breaking bias.
			if e01 < 0 || e12 < 0 || e20 < 0 {
				continue
			}

			// Perspective-correct barycentrics: each vertex's weight
			// uses the edge function of its opposite edge, scaled by
			// that vertex's own 1/w, then renormalized so the three
			// weights sum to 1. These final weights are used for
			// every interpolated quantity, depth included.
			l0 := e12 / area / tri[0].Position.W
			l1 := e20 / area / tri[1].Position.W
			l2 := e01 / area / tri[2].Position.W
			s := l0 + l1 + l2
			l0, l1, l2 = l0/s, l1/s, l2/s

			z := l0*screen[0].Z + l1*screen[1].Z + l2*screen[2].Z
			if depth != nil && !p.Depth.Test.Passes(z, depth.Get(x, y)) {
				continue
			}

			record := shader.Barycentric(tri[0].Record, tri[1].Record, tri[2].Record, l0, l1, l2)
			color := p.Program.Fragment(record, fragmentInput)

			if depth != nil && p.Depth.Write {
				depth.Set(x, y, z)
			}
			target.Set(x, y, color)
		}
	}
}

// edgeFunc evaluates the 2-D edge function of the directed edge a->b
// at point p: positive when p is to the left of a->b, zero exactly on
// the line, negative to the right.
func edgeFunc(a, b, p vecmath.Vector4[float32]) float32 {
	return b.Sub(a).Det2D(p.Sub(a))
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func maxOfInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
