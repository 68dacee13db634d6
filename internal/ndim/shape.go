// Package ndim provides the shared vocabulary for the ndview engine:
// shapes, strides, layouts, element types, the expression capability
// interfaces and the stepper traversal protocol.
package ndim

import "fmt"

// Shape represents the extents of an N-dimensional expression.
type Shape []int

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape can back dense storage (all extents > 0).
// View shapes may legally contain zero extents and are not validated here.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Index returns the row-major flat position of a full multi-index.
// No bounds validation is performed.
func (s Shape) Index(indices []int) int {
	flat := 0
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		flat += indices[i] * stride
		stride *= s[i]
	}
	return flat
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ColumnMajorStrides calculates column-major strides for the shape:
// stride[i] = product of all dimensions before i.
func (s Shape) ColumnMajorStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// StridesMatch reports whether strides address the shape exactly like the
// canonical dense strides of the given layout. Axes of extent 1 match any
// stride: downstream consumers treat them as broadcastable (stride 0) and
// their stride never contributes to addressing.
func StridesMatch(shape Shape, strides []int, l Layout) bool {
	if len(strides) != len(shape) {
		return false
	}

	var canonical []int
	switch l {
	case RowMajor:
		canonical = shape.ComputeStrides()
	case ColumnMajor:
		canonical = shape.ColumnMajorStrides()
	default:
		return false
	}

	for i := range shape {
		if shape[i] != 1 && strides[i] != canonical[i] {
			return false
		}
	}
	return true
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// BroadcastIndex maps a multi-index in a broadcast output shape to the
// corresponding multi-index of an input shape, right-aligned: leading axes
// absent from the input are dropped, and extent-1 input axes pin to 0.
func BroadcastIndex(index []int, in Shape) []int {
	result := make([]int, len(in))
	off := len(index) - len(in)
	for i := range in {
		if in[i] != 1 {
			result[i] = index[off+i]
		}
	}
	return result
}
