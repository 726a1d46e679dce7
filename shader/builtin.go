package shader

import "github.com/gogpu/swrast/vecmath"

// ColorUV is a ready-made per-vertex record carrying an RGBA color and
// a texture coordinate — the two attributes most example shaders need.
// It implements Interpolatable[ColorUV].
type ColorUV struct {
	Color vecmath.Vector4[float32]
	UV    vecmath.Vector2[float32]
}

// Interp implements Interpolatable[ColorUV]: each field is combined
// field-wise, recursing into the vector-valued Color and UV fields, as
// required by the shared rasterizer/clipper contract.
func (v ColorUV) Interp(v1, v2 ColorUV, a, b, c float32) ColorUV {
	return ColorUV{
		Color: v.Color.Scale(a).Add(v1.Color.Scale(b)).Add(v2.Color.Scale(c)),
		UV:    v.UV.Scale(a).Add(v1.UV.Scale(b)).Add(v2.UV.Scale(c)),
	}
}

// SolidColorInput is the shared vertex input for SolidColorVertex: a
// flat position array and the model-view-projection matrix to
// transform them by.
type SolidColorInput struct {
	Positions []vecmath.Vector3[float32]
	MVP       vecmath.Matrix4
	Color     vecmath.Vector4[float32]
}

// SolidColorVertex transforms position[vertexIndex] by the shared MVP
// matrix and stamps every vertex with the same uniform color.
func SolidColorVertex(vertexIndex int, vertexInput any) (ColorUV, vecmath.Vector4[float32]) {
	in := vertexInput.(*SolidColorInput)
	clipPos := in.MVP.MulVector4(in.Positions[vertexIndex].AsPoint())
	return ColorUV{Color: in.Color}, clipPos
}

// SolidColorFragment returns the record's interpolated color
// unchanged. Since every vertex carries the same uniform color, the
// interpolated value is that color exactly, regardless of barycentric
// weights.
func SolidColorFragment(record ColorUV, _ any) vecmath.Color {
	return vecmath.ColorFromVector4(record.Color)
}

// TexturedInput is the shared vertex input for TexturedVertex:
// positions and per-vertex UVs to transform/interpolate. The texture
// the fragment stage samples is supplied separately through
// TexturedFragmentInput.
type TexturedInput struct {
	Positions []vecmath.Vector3[float32]
	UVs       []vecmath.Vector2[float32]
	MVP       vecmath.Matrix4
}

// TexturedFragmentInput is the shared fragment input for
// TexturedFragment: the texture to sample.
type TexturedFragmentInput struct {
	Texture interface {
		Sample(u, v float32) vecmath.Color
	}
}

// TexturedVertex transforms position[vertexIndex] by the shared MVP
// matrix and carries the matching UV through as the vertex record.
func TexturedVertex(vertexIndex int, vertexInput any) (ColorUV, vecmath.Vector4[float32]) {
	in := vertexInput.(*TexturedInput)
	clipPos := in.MVP.MulVector4(in.Positions[vertexIndex].AsPoint())
	return ColorUV{UV: in.UVs[vertexIndex]}, clipPos
}

// TexturedFragment samples fragmentInput's texture at the
// interpolated UV coordinate, nearest-neighbor with clamp-to-edge.
func TexturedFragment(record ColorUV, fragmentInput any) vecmath.Color {
	in := fragmentInput.(*TexturedFragmentInput)
	return in.Texture.Sample(record.UV.X, record.UV.Y)
}
