// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package slice provides the per-axis slice descriptors consumed by the
// ndview engine.
//
// A descriptor starts unbound (Spec) and is resolved against the extent
// of the underlying axis it consumes when a view is constructed:
//
//	v, err := view.New[float32](a,
//	    slice.Squeeze(0),           // drop axis 0 at coordinate 0
//	    slice.Range(1, 4),          // keep coordinates 1..3 of axis 1
//	    slice.NewAxis(),            // insert a unit axis
//	)
//
// Axes beyond those the descriptor list consumes pass through whole.
package slice

import "github.com/born-ml/ndview/internal/slice"

// Kind classifies a slice descriptor.
type Kind = slice.Kind

// Descriptor kinds.
const (
	KindSqueeze  Kind = slice.KindSqueeze
	KindRange    Kind = slice.KindRange
	KindNewAxis  Kind = slice.KindNewAxis
	KindEllipsis Kind = slice.KindEllipsis
)

// ToBegin is the stop sentinel for a negative-step range that runs through
// index 0 inclusive.
const ToBegin = slice.ToBegin

// Spec is an unbound slice descriptor as written by the caller.
type Spec = slice.Spec

// Slice is a descriptor bound against a concrete axis extent.
type Slice = slice.Slice

// Squeeze fixes one underlying axis to the given index, removing it from
// the output shape. Negative indices count from the end of the axis.
func Squeeze(index int) Spec { return slice.Squeeze(index) }

// Range keeps an axis narrowed to [start, stop) with step 1.
// Negative indices count from the end of the axis.
func Range(start, stop int) Spec { return slice.Range(start, stop) }

// RangeStep keeps an axis narrowed to [start, stop) with an explicit
// step. A negative step walks the axis backward; use ToBegin as the stop
// to include index 0.
func RangeStep(start, stop, step int) Spec { return slice.RangeStep(start, stop, step) }

// All keeps an axis whole.
func All() Spec { return slice.All() }

// NewAxis inserts a unit-extent output axis consuming no underlying axis.
func NewAxis() Spec { return slice.NewAxis() }

// Ellipsis is the variable-axis-span wildcard. Views reject it at
// construction; it exists so callers writing against a future descriptor
// set get a clear error instead of silent misinterpretation.
func Ellipsis() Spec { return slice.Ellipsis() }
