// Package shader defines the programmable shading contract the
// rasterizer drives: a vertex function, a fragment function, and the
// interpolation capability any per-vertex record type must implement
// so the rasterizer and the clipper can blend it.
//
// There is no shader bytecode or compiler here — shaders are plain Go
// closures, as in the CPU rasterizer this package's conventions are
// drawn from. A vertex function receives a vertex index and a pointer
// to caller-supplied shared input data and returns a per-vertex record
// plus a clip-space position; a fragment function receives an
// interpolated record and a pointer to shared fragment input and
// returns a color.
//
// # The interpolation contract
//
// Both the rasterizer's perspective-correct barycentric blend and the
// clipper's edge-split interpolation are expressed through one method:
//
//	Interp(v1, v2 V, a, b, c float32) V   // returns v0*a + v1*b + v2*c
//
// A barycentric blend of three records is v0.Interp(v1, v2, l0, l1,
// l2). A two-point edge split at parameter t is the same operation
// with a weightless third record: v0.Interp(v1, zero, 1-t, t, 0) — the
// zero value of V contributes nothing since its coefficient is 0.
// Implementations should apply Interp field-wise, recursing into any
// vector-valued fields.
package shader
