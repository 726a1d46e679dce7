package raster

import (
	"github.com/gogpu/swrast/shader"
	"github.com/gogpu/swrast/vecmath"
)

// ClipVertex pairs a homogeneous clip-space position with the
// per-vertex record the shader pair produced for it. It is the unit
// the clipper and the triangle traversal both operate on.
type ClipVertex[V shader.Interpolatable[V]] struct {
	Position vecmath.Vector4[float32]
	Record   V
}

type clipTriangle[V shader.Interpolatable[V]] [3]ClipVertex[V]

// Plane equations for the two supported clip planes, expressed as
// (A, B, C, D) so that testing a homogeneous position against the
// plane is a single Vector4.Dot: near keeps z >= 0, far keeps z <= w.
var (
	nearPlane = vecmath.Vec4[float32](0, 0, 1, 0)
	farPlane  = vecmath.Vec4[float32](0, 0, -1, 1)
)

// maxClipTriangles bounds the output of clipping a single triangle
// against both planes in sequence: one plane can split a triangle
// into at most 2, so two planes applied in sequence bound the result
// at 4 triangles — 12 vertices, matching the fixed scratch capacity.
const maxClipTriangles = 4

// edgePoint returns the point where the plane crosses the edge from a
// to b, given each endpoint's signed plane distance, and interpolates
// the vertex record to match via the shared Interpolatable contract.
func edgePoint[V shader.Interpolatable[V]](a, b ClipVertex[V], distA, distB float32) ClipVertex[V] {
	t := distA / (distA - distB)
	pos := a.Position.Scale(1 - t).Add(b.Position.Scale(t))
	rec := shader.Lerp2(a.Record, b.Record, t)
	return ClipVertex[V]{Position: pos, Record: rec}
}

// clipAgainstPlane clips every triangle in in against plane, appending
// the resulting triangles (0, 1 or 2 per input triangle) into out and
// returning the count written. A vertex with plane distance exactly 0
// counts as inside, matching the edge-inclusive convention the
// rasterizer itself uses.
func clipAgainstPlane[V shader.Interpolatable[V]](in []clipTriangle[V], plane vecmath.Vector4[float32], out *[maxClipTriangles]clipTriangle[V]) int {
	n := 0
	for _, tri := range in {
		dist := [3]float32{
			plane.Dot(tri[0].Position),
			plane.Dot(tri[1].Position),
			plane.Dot(tri[2].Position),
		}

		mask := 0
		for i, d := range dist {
			if d < 0 {
				mask |= 1 << i
			}
		}

		switch mask {
		case 0b000:
			out[n] = tri
			n++
		case 0b001:
			v01 := edgePoint(tri[0], tri[1], dist[0], dist[1])
			v02 := edgePoint(tri[0], tri[2], dist[0], dist[2])
			out[n] = clipTriangle[V]{v01, tri[1], tri[2]}
			n++
			out[n] = clipTriangle[V]{v01, tri[2], v02}
			n++
		case 0b010:
			v10 := edgePoint(tri[1], tri[0], dist[1], dist[0])
			v12 := edgePoint(tri[1], tri[2], dist[1], dist[2])
			out[n] = clipTriangle[V]{tri[0], v10, tri[2]}
			n++
			out[n] = clipTriangle[V]{tri[2], v10, v12}
			n++
		case 0b011:
			v02 := edgePoint(tri[0], tri[2], dist[0], dist[2])
			v12 := edgePoint(tri[1], tri[2], dist[1], dist[2])
			out[n] = clipTriangle[V]{v02, v12, tri[2]}
			n++
		case 0b100:
			v20 := edgePoint(tri[2], tri[0], dist[2], dist[0])
			v21 := edgePoint(tri[2], tri[1], dist[2], dist[1])
			out[n] = clipTriangle[V]{tri[0], tri[1], v20}
			n++
			out[n] = clipTriangle[V]{v20, tri[1], v21}
			n++
		case 0b101:
			v01 := edgePoint(tri[0], tri[1], dist[0], dist[1])
			v21 := edgePoint(tri[2], tri[1], dist[2], dist[1])
			out[n] = clipTriangle[V]{v01, tri[1], v21}
			n++
		case 0b110:
			v10 := edgePoint(tri[1], tri[0], dist[1], dist[0])
			v20 := edgePoint(tri[2], tri[0], dist[2], dist[0])
			out[n] = clipTriangle[V]{tri[0], v10, v20}
			n++
		case 0b111:
			// fully outside, nothing to emit
		}
	}
	return n
}

// ClipTriangle clips a single triangle against the near plane (z >= 0)
// and then the far plane (z <= w), in that order, and returns the
// resulting triangles in a fixed-size array along with how many of
// its slots are populated. Both planes are applied through the same
// 8-entry mask table, operating on a bounded two-stage scratch buffer
// rather than a growable slice.
func ClipTriangle[V shader.Interpolatable[V]](tri [3]ClipVertex[V]) ([maxClipTriangles]clipTriangle[V], int) {
	var afterNear [maxClipTriangles]clipTriangle[V]
	nNear := clipAgainstPlane([]clipTriangle[V]{clipTriangle[V](tri)}, nearPlane, &afterNear)

	var afterFar [maxClipTriangles]clipTriangle[V]
	if nNear == 0 {
		return afterFar, 0
	}
	nFar := clipAgainstPlane(afterNear[:nNear], farPlane, &afterFar)
	return afterFar, nFar
}
