// Package vecmath provides the value-type math layer the rasterizer's
// contracts are stated in terms of: generic 2/3/4-component vectors, a
// packed RGBA color, and a row-major 4x4 matrix with the constructors
// a triangle pipeline needs (translate, scale, the three axis-plane
// rotations, and a perspective projection).
//
// Every type here is a plain value aggregate. There is no hidden
// state, no allocation, and no fallible operation — arithmetic on
// these types can never fail, so none of it returns an error.
//
// Clip-space convention: for a position produced by Matrix4.Perspective4
// and consumed by the raster package, x and y range over [-w, w] and z
// ranges over [0, w], with z=0 at the near plane and z=w at the far
// plane.
package vecmath
