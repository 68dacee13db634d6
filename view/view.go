// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view

import (
	"iter"

	"github.com/born-ml/ndview/internal/ndim"
	"github.com/born-ml/ndview/internal/slice"
	"github.com/born-ml/ndview/internal/view"
)

// DType is the constraint for supported element types.
type DType = ndim.DType

// Shape represents the extents of an N-dimensional value.
type Shape = ndim.Shape

// Layout identifies the memory ordering of a strided expression.
type Layout = ndim.Layout

// Expression is the read capability of every N-dimensional value in the
// engine: shape, unchecked element access by full multi-index, and
// steppers for incremental traversal.
type Expression[T DType] = ndim.Expression[T]

// Settable is the write-through capability.
type Settable[T DType] = ndim.Settable[T]

// DataExpression is the strided data capability: expressions backed by a
// linear buffer addressable as offset + Σ index[i]·stride[i].
type DataExpression[T DType] = ndim.DataExpression[T]

// RefCounted is implemented by expressions with reference-counted
// backing storage.
type RefCounted = ndim.RefCounted

// Stepper is a position-incremental cursor over an expression.
type Stepper[T DType] = ndim.Stepper[T]

// View is a lazy window over an expression, described by a slice list.
// It shares the underlying storage; reads and writes go through an index
// mapping, never a copy.
type View[T DType] = view.View[T]

// New builds a view of e described by the given slice descriptors,
// borrowing e: the caller keeps e alive for the view's lifetime.
//
//	a, _ := array.FromSlice([]float32{0, 1, 2, 3, 4, 5}, array.Shape{2, 3})
//	v, _ := view.New[float32](a, slice.Squeeze(1))   // row 1: [3 4 5]
func New[T DType](e Expression[T], specs ...slice.Spec) (*View[T], error) {
	return view.New(e, specs...)
}

// NewOwned builds a view like New but retaining the reference-counted
// storage at the bottom of e's expression chain, so the view stays valid
// after the caller releases its own reference. Pair it with the view's
// Release.
func NewOwned[T DType](e Expression[T], specs ...slice.Spec) (*View[T], error) {
	return view.NewOwned(e, specs...)
}

// CanSet reports whether e supports write-through element assignment.
func CanSet[T DType](e Expression[T]) bool {
	return ndim.CanSet(e)
}

// HasData reports whether e exposes the strided data capability.
func HasData[T DType](e Expression[T]) bool {
	return ndim.HasData(e)
}

// Iterator enumerates an expression's elements in row-major order.
type Iterator[T DType] = ndim.Iterator[T]

// NewIterator returns an iterator over all of e's elements.
func NewIterator[T DType](e Expression[T]) *Iterator[T] {
	return ndim.NewIterator(e)
}

// Elements returns a row-major (index, value) sequence over e for use
// with range-over-func. The yielded index slice is reused between
// iterations; clone it to retain.
func Elements[T DType](e Expression[T]) iter.Seq2[[]int, T] {
	return ndim.Elements(e)
}
