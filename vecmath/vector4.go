package vecmath

// Vector4 is a 4-component homogeneous vector over any numeric element
// type.
type Vector4[T Number] struct {
	X, Y, Z, W T
}

// Vec4 constructs a Vector4 from its components.
func Vec4[T Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Add returns the element-wise sum of v and other.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns the element-wise difference v - other.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul returns the element-wise product of v and other.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div returns the element-wise quotient v / other.
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// Scale returns v scaled by a scalar.
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of v and other.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Det2D returns the signed 2-D cross product of the xy components of v
// and other: v.x*other.y - v.y*other.x. The rasterizer uses this both
// as an edge function (point-vs-edge test) and as twice the signed
// area of a triangle, always with T=float32.
func (v Vector4[T]) Det2D(other Vector4[T]) T {
	return v.X*other.Y - v.Y*other.X
}

// PerspectiveDivide returns v with x, y, z divided by w. w itself is
// left unchanged so callers that still need 1/w (perspective-correct
// interpolation) can recover it.
func PerspectiveDivide(v Vector4[float32]) Vector4[float32] {
	return Vector4[float32]{v.X / v.W, v.Y / v.W, v.Z / v.W, v.W}
}
