// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the dense N-dimensional container of the ndview
// library, together with the shared shape and element-type vocabulary.
//
// An Array owns compact row-major storage with reference counting; it is
// the expression most views are built over:
//
//	a, err := array.New[float32](array.Shape{3, 4})
//	m, err := array.FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2})
package array

import (
	"github.com/born-ml/ndview/internal/array"
	"github.com/born-ml/ndview/internal/ndim"
)

// DType is the constraint for supported element types:
// float32, float64, int32, int64, uint8, bool.
type DType = ndim.DType

// DataType represents runtime type information for an array's elements.
type DataType = ndim.DataType

// Data type constants.
const (
	Float32 DataType = ndim.Float32
	Float64 DataType = ndim.Float64
	Int32   DataType = ndim.Int32
	Int64   DataType = ndim.Int64
	Uint8   DataType = ndim.Uint8
	Bool    DataType = ndim.Bool
)

// Shape represents the extents of an N-dimensional value.
// Example: Shape{2, 3, 4} is a 3-D array with dimensions 2×3×4.
type Shape = ndim.Shape

// Layout identifies the memory ordering of a strided expression.
type Layout = ndim.Layout

// Layout constants. Dynamic marks strides matching no dense ordering.
const (
	Dynamic     Layout = ndim.Dynamic
	RowMajor    Layout = ndim.RowMajor
	ColumnMajor Layout = ndim.ColumnMajor
)

// Expression is the capability anything must provide to participate in
// the view engine. Array implements it; so does view.View.
type Expression[T DType] = ndim.Expression[T]

// Array is a dense N-dimensional container with compact row-major
// storage and a reference-counted buffer.
type Array[T DType] = array.Array[T]

// New creates a zero-initialized array with the given shape.
func New[T DType](shape Shape) (*Array[T], error) {
	return array.New[T](shape)
}

// Full creates an array with every element set to value.
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	return array.Full(shape, value)
}

// FromSlice creates an array by copying data into fresh storage.
// len(data) must equal the shape's element count.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	return array.FromSlice(data, shape)
}

// Arange creates a 1-D array with values 0, 1, ..., n-1.
func Arange[T DType](n int) *Array[T] {
	return array.Arange[T](n)
}

// FromExpression materializes any expression into a fresh dense array of
// the expression's shape, reading every element once.
func FromExpression[T DType](e Expression[T]) (*Array[T], error) {
	return array.FromExpression(e)
}

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules. Returns the resulting shape, a flag
// indicating whether broadcasting is needed, and an error when the
// shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return ndim.BroadcastShapes(a, b)
}
