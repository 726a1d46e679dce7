package shader

import "github.com/gogpu/swrast/vecmath"

// Interpolatable is the capability a per-vertex record type must
// implement: a three-way, field-wise linear combination. See the
// package doc for how this single method serves both the rasterizer's
// barycentric blend and the clipper's two-point edge split.
type Interpolatable[V any] interface {
	Interp(v1, v2 V, a, b, c float32) V
}

// Lerp2 performs a two-point linear interpolation using the
// Interpolatable contract: result = v0*(1-t) + v1*t. This is the
// operation the clipper performs at every plane-edge intersection.
func Lerp2[V Interpolatable[V]](v0, v1 V, t float32) V {
	var zero V
	return v0.Interp(v1, zero, 1-t, t, 0)
}

// Barycentric blends three records by barycentric weights:
// result = v0*a + v1*b + v2*c.
func Barycentric[V Interpolatable[V]](v0, v1, v2 V, a, b, c float32) V {
	return v0.Interp(v1, v2, a, b, c)
}

// VertexFunc transforms one vertex, addressed by index, from object
// space to clip space. vertexInput is a pointer to caller-supplied
// data shared across the whole draw call (positions, attribute
// arrays); the function is responsible for indexing into it.
type VertexFunc[V Interpolatable[V]] func(vertexIndex int, vertexInput any) (V, vecmath.Vector4[float32])

// FragmentFunc computes the final color for one fragment from its
// interpolated vertex record and caller-supplied shared data
// (textures, uniforms).
type FragmentFunc[V Interpolatable[V]] func(record V, fragmentInput any) vecmath.Color

// Program pairs a vertex function and a fragment function into one
// shading program for a draw call.
type Program[V Interpolatable[V]] struct {
	Vertex   VertexFunc[V]
	Fragment FragmentFunc[V]
}

// IsValid reports whether both stages of the program are set.
func (p Program[V]) IsValid() bool {
	return p.Vertex != nil && p.Fragment != nil
}
