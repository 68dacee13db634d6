package view

import (
	"fmt"

	"github.com/born-ml/ndview/internal/ndim"
)

// Assign writes e's elements into the view's positions in row-major index
// order, broadcasting e against the view's shape. e is materialized into
// a temporary of the view's shape before the first write: e may alias the
// view's own backing storage (a view over the same array, shifted), and
// evaluating it directly into the view would read already-overwritten
// values.
//
// Returns an error when e's shape does not broadcast to the view's shape.
// Panics if the underlying expression is not settable.
func (v *View[T]) Assign(e ndim.Expression[T]) error {
	if !v.CanSet() {
		panic("view: underlying expression is not settable")
	}

	eShape := e.Shape()
	bShape, _, err := ndim.BroadcastShapes(v.shape, eShape)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	if !bShape.Equal(v.shape) {
		return fmt.Errorf("assign: cannot broadcast shape %v into view shape %v", eShape, v.shape)
	}

	n := v.Size()
	if n == 0 {
		return nil
	}

	tmp := make([]T, n)
	index := make([]int, len(v.shape))
	for i := range tmp {
		tmp[i] = e.Element(ndim.BroadcastIndex(index, eShape))
		increment(index, v.shape)
	}

	clear(index)
	for i := range tmp {
		v.SetElement(index, tmp[i])
		increment(index, v.shape)
	}
	return nil
}

// Fill broadcast-writes a scalar into every view position. No temporary
// is needed: a scalar cannot alias the view's storage.
// Panics if the underlying expression is not settable.
func (v *View[T]) Fill(value T) {
	if !v.CanSet() {
		panic("view: underlying expression is not settable")
	}

	n := v.Size()
	index := make([]int, len(v.shape))
	for i := 0; i < n; i++ {
		v.SetElement(index, value)
		increment(index, v.shape)
	}
}

// SetAt writes value at the given indices after validating the index
// count and every bound against the view's shape.
// Panics if the underlying expression is not settable.
func (v *View[T]) SetAt(value T, indices ...int) error {
	if err := v.checkAccess(indices); err != nil {
		return err
	}
	v.SetElement(indices, value)
	return nil
}

// increment advances a multi-index odometer one position in row-major
// order, wrapping exhausted trailing axes.
func increment(index []int, shape ndim.Shape) {
	for d := len(index) - 1; d >= 0; d-- {
		index[d]++
		if index[d] < shape[d] {
			return
		}
		index[d] = 0
	}
}
