package ndim_test

import (
	"testing"

	"github.com/born-ml/ndview/internal/array"
	"github.com/born-ml/ndview/internal/ndim"
)

func TestIteratorRowMajorOrder(t *testing.T) {
	src := array.Arange[float32](24)
	m, err := array.FromSlice(src.Data(), ndim.Shape{2, 3, 4})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	it := ndim.NewIterator[float32](m)
	count := 0
	for it.Next() {
		if got := it.Value(); got != float32(count) {
			t.Fatalf("element %d = %v, want %d", count, got, count)
		}
		if got := m.Shape().Index(it.Index()); got != count {
			t.Fatalf("Index() at element %d maps to flat %d", count, got)
		}
		count++
	}
	if count != 24 {
		t.Errorf("visited %d elements, want 24", count)
	}
	if it.Next() {
		t.Error("Next() = true after exhaustion")
	}
}

func TestIteratorScalar(t *testing.T) {
	a, err := array.Full(ndim.Shape{}, 7.5)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}

	it := ndim.NewIterator[float64](a)
	if !it.Next() {
		t.Fatal("Next() = false for scalar, want one element")
	}
	if got := it.Value(); got != 7.5 {
		t.Errorf("Value() = %v, want 7.5", got)
	}
	if it.Next() {
		t.Error("Next() = true after the single element")
	}
}

func TestElementsSeq(t *testing.T) {
	m, err := array.FromSlice([]int32{10, 11, 12, 13}, ndim.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	var values []int32
	var flats []int
	for index, v := range ndim.Elements[int32](m) {
		values = append(values, v)
		flats = append(flats, m.Shape().Index(index))
	}

	want := []int32{10, 11, 12, 13}
	if len(values) != len(want) {
		t.Fatalf("yielded %d elements, want %d", len(values), len(want))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %d, want %d", i, values[i], want[i])
		}
		if flats[i] != i {
			t.Errorf("flats[%d] = %d, want %d", i, flats[i], i)
		}
	}
}

func TestElementsEarlyStop(t *testing.T) {
	m := array.Arange[int64](8)
	count := 0
	for _, v := range ndim.Elements[int64](m) {
		count++
		if v == 2 {
			break
		}
	}
	if count != 3 {
		t.Errorf("visited %d elements before break, want 3", count)
	}
}
