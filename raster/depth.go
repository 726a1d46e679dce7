package raster

// CompareFunc selects the test a candidate depth value must pass
// against the value already stored in the depth buffer for the
// fragment to survive.
type CompareFunc int

const (
	// CompareNever fails every fragment.
	CompareNever CompareFunc = iota
	// CompareLess passes when the candidate is strictly nearer.
	CompareLess
	// CompareEqual passes when the candidate exactly matches the
	// stored value.
	CompareEqual
	// CompareLessEqual passes when the candidate is nearer than or
	// equal to the stored value.
	CompareLessEqual
	// CompareGreater passes when the candidate is strictly farther.
	CompareGreater
	// CompareNotEqual passes when the candidate differs from the
	// stored value.
	CompareNotEqual
	// CompareGreaterEqual passes when the candidate is farther than or
	// equal to the stored value.
	CompareGreaterEqual
	// CompareAlways passes every fragment, regardless of depth.
	CompareAlways
)

// Passes evaluates the comparison of a new fragment's depth against
// the value already stored at that pixel.
func (f CompareFunc) Passes(candidate, stored float32) bool {
	switch f {
	case CompareNever:
		return false
	case CompareLess:
		return candidate < stored
	case CompareEqual:
		return candidate == stored
	case CompareLessEqual:
		return candidate <= stored
	case CompareGreater:
		return candidate > stored
	case CompareNotEqual:
		return candidate != stored
	case CompareGreaterEqual:
		return candidate >= stored
	case CompareAlways:
		return true
	default:
		return false
	}
}

// DepthState configures the depth test and write behavior of a draw
// call. There is no mutex here: the rasterizer draws one triangle at
// a time on a single goroutine, so the depth buffer never sees
// concurrent access.
type DepthState struct {
	Test  CompareFunc
	Write bool
}
