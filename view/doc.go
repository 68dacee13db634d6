// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides lazy, composable slicing over N-dimensional
// expressions for the ndview library.
//
// # Overview
//
// A View combines an expression with an ordered list of per-axis slice
// descriptors and behaves as a new array sharing the original storage:
//   - Squeeze drops an axis at a fixed coordinate
//   - Range/All keeps an axis, optionally narrowed and re-strided
//   - NewAxis inserts a unit-extent axis
//
// Shape and rank are derived at construction; strides are derived lazily
// on the first request. No element data is ever copied.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndview/array"
//	    "github.com/born-ml/ndview/slice"
//	    "github.com/born-ml/ndview/view"
//	)
//
//	func main() {
//	    a, _ := array.New[float32](array.Shape{3, 4})
//
//	    // Rows 1..2, every second column: shape (2, 2).
//	    v, _ := view.New[float32](a,
//	        slice.Range(1, 3),
//	        slice.RangeStep(0, 4, 2),
//	    )
//
//	    x, _ := v.At(0, 1)      // reads a(1, 2)
//	    _ = v.SetAt(7, 1, 0)    // writes a(2, 0)
//	}
//
// # Composition
//
// Views implement the same Expression capability as arrays, so views of
// views compose; strides, offsets and write-through chain to the bottom
// expression:
//
//	inner, _ := view.New[float32](a, slice.Range(1, 3))
//	outer, _ := view.New[float32](inner, slice.Squeeze(0))
//
// # Writing
//
// Assign broadcasts a source expression into the view's shape and writes
// through to the shared storage. The source is materialized before the
// first write, so assigning one view of an array into an overlapping
// view of the same array is safe:
//
//	v1, _ := view.New[float32](a, slice.Range(0, 2), slice.Range(0, 2))
//	v2, _ := view.New[float32](a, slice.Range(1, 3), slice.Range(1, 3))
//	_ = v1.Assign(v2)
//
// # Traversal
//
// Steppers advance along one axis at a time without rebuilding a full
// multi-index; Iterator and Elements drive them in row-major order:
//
//	for index, value := range view.Elements[float32](v) {
//	    fmt.Println(index, value)
//	}
//
// # Concurrency
//
// A view is immutable after construction. Concurrent reads are safe, and
// the lazy stride cache is guarded internally, but the engine never
// locks the shared element storage: coordinating writers is the
// caller's job.
package view
