package view

import (
	"github.com/born-ml/ndview/internal/ndim"
	"github.com/born-ml/ndview/internal/slice"
)

// The axis algebra reconciles three coordinate spaces:
//
//   - view axes: what callers index, 0..rank-1
//   - slice positions: slots in the bound slice list, plus virtual
//     positions past its end for passthrough axes
//   - underlying axes: what the wrapped expression indexes, 0..D-1
//
// A slice position maps to an underlying axis by subtracting the NewAxis
// slots before it (they consume nothing). A view axis maps to a slice
// position by skipping Squeeze slots (they produce nothing).

// newaxisCountBefore counts NewAxis slots among slices[:pos].
// Positions past the list count every NewAxis slot.
func newaxisCountBefore(slices []slice.Slice, pos int) int {
	n := 0
	for i, s := range slices {
		if i >= pos {
			break
		}
		if s.Kind() == slice.KindNewAxis {
			n++
		}
	}
	return n
}

// isNewAxisAt reports whether the slice position is a NewAxis slot.
// Virtual positions past the list are passthrough, never NewAxis.
func isNewAxisAt(slices []slice.Slice, pos int) bool {
	return pos < len(slices) && slices[pos].Kind() == slice.KindNewAxis
}

// integralSkip returns the slice position producing view axis p: the p-th
// slot that is not a Squeeze. When p runs past the slice-produced axes the
// result is a virtual passthrough position at or beyond len(slices).
func integralSkip(slices []slice.Slice, p int) int {
	seen := 0
	for pos, s := range slices {
		if s.Kind() == slice.KindSqueeze {
			continue
		}
		if seen == p {
			return pos
		}
		seen++
	}
	return len(slices) + (p - seen)
}

// deriveShape runs the construction-time shape scan: Squeeze consumes an
// underlying axis and produces nothing, Range produces its computed
// extent, NewAxis produces a unit axis, and every underlying axis not
// consumed by the slice list passes through with its own extent.
func deriveShape(under ndim.Shape, slices []slice.Slice) ndim.Shape {
	shape := make(ndim.Shape, 0, len(under)+len(slices))
	u := 0
	for _, s := range slices {
		switch s.Kind() {
		case slice.KindSqueeze:
			u++
		case slice.KindRange:
			shape = append(shape, s.Len())
			u++
		case slice.KindNewAxis:
			shape = append(shape, 1)
		}
	}
	for ; u < len(under); u++ {
		shape = append(shape, under[u])
	}
	return shape
}
