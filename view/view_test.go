// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view_test

import (
	"testing"

	"github.com/born-ml/ndview/array"
	"github.com/born-ml/ndview/slice"
	"github.com/born-ml/ndview/view"
)

// TestViewInterfaces verifies that View satisfies the re-exported
// capability interfaces.
func TestViewInterfaces(_ *testing.T) {
	var _ view.Expression[float32] = (*view.View[float32])(nil)
	var _ view.DataExpression[float32] = (*view.View[float32])(nil)
	var _ view.Settable[float32] = (*view.View[float32])(nil)
}

// TestViewEndToEnd exercises the re-exported surface end to end: construct,
// read, write through, iterate.
func TestViewEndToEnd(t *testing.T) {
	a, err := array.FromSlice([]float32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, array.Shape{3, 4})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	v, err := view.New[float32](a, slice.Range(1, 3), slice.RangeStep(0, 4, 2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !v.Shape().Equal(view.Shape{2, 2}) {
		t.Fatalf("Shape() = %v, want [2 2]", v.Shape())
	}

	got, err := v.At(0, 1)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != 6 {
		t.Errorf("At(0,1) = %v, want 6", got)
	}

	if err := v.SetAt(-1, 1, 0); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	if a.Data()[8] != -1 {
		t.Errorf("write did not reach the underlying storage: %v", a.Data())
	}

	var values []float32
	for _, val := range view.Elements[float32](v) {
		values = append(values, val)
	}
	want := []float32{4, 6, -1, 10}
	if len(values) != len(want) {
		t.Fatalf("Elements yielded %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("Elements yielded %v, want %v", values, want)
		}
	}
}

// TestViewComposition verifies that a view over a view maps indices and
// offsets through both layers.
func TestViewComposition(t *testing.T) {
	a := array.Arange[int32](24)
	m, err := array.FromSlice(a.Data(), array.Shape{2, 3, 4})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	inner, err := view.New[int32](m, slice.Squeeze(1), slice.Range(0, 2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	outer, err := view.New[int32](inner, slice.NewAxis(), slice.Squeeze(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !outer.Shape().Equal(view.Shape{1, 4}) {
		t.Fatalf("Shape() = %v, want [1 4]", outer.Shape())
	}

	// outer(0, k) is m(1, 1, k).
	got, err := outer.At(0, 3)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != 19 {
		t.Errorf("At(0,3) = %d, want 19", got)
	}

	if !view.HasData[int32](outer) {
		t.Error("HasData = false for an array-backed chain")
	}
	if outer.DataOffset() != 16 {
		t.Errorf("DataOffset() = %d, want 16", outer.DataOffset())
	}
}

// TestViewLayoutClassification verifies the dense-vs-dynamic layout report.
func TestViewLayoutClassification(t *testing.T) {
	a, err := array.New[float64](array.Shape{4, 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dense, err := view.New[float64](a, slice.Range(0, 2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if dense.Layout() != array.RowMajor {
		t.Errorf("Layout() = %v, want row-major", dense.Layout())
	}

	strided, err := view.New[float64](a, slice.All(), slice.RangeStep(0, 4, 2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if strided.Layout() != array.Dynamic {
		t.Errorf("Layout() = %v, want dynamic", strided.Layout())
	}
}
