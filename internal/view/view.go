// Package view implements the lazy slicing engine: a View composes an
// expression with an ordered slice list and exposes the result as a new
// expression sharing the original storage. Shape is derived eagerly at
// construction, strides lazily on first request.
package view

import (
	"fmt"
	"sync"

	"github.com/born-ml/ndview/internal/ndim"
	"github.com/born-ml/ndview/internal/slice"
)

// Compile-time capability checks. The method sets are unconditional;
// whether a given view actually carries the data or write capability
// depends on what it wraps, so callers gate on HasData and CanSet.
var (
	_ ndim.DataExpression[float32] = (*View[float32])(nil)
	_ ndim.Settable[float32]       = (*View[float32])(nil)
	_ ndim.RefCounted              = (*View[float32])(nil)
)

// View is a lazy window over an expression, described by a bound slice
// list. It never copies element storage: reads and writes go through an
// index mapping onto the wrapped expression.
//
// Shape and slice list are fixed at construction. The derived strides are
// computed on first request and cached under a mutex, so concurrent first
// access is safe; everything else is plain immutable state.
type View[T ndim.DType] struct {
	expr   ndim.Expression[T]
	under  ndim.Shape
	slices []slice.Slice
	shape  ndim.Shape

	// References this view holds on the storage at the bottom of its
	// expression chain. Nil and zero for borrowed views.
	retained ndim.RefCounted
	retains  int

	mu         sync.Mutex
	hasStrides bool
	strides    []int
	offset     int
}

// New builds a view of e described by the given slice descriptors. The
// descriptors bind left to right against e's axes; underlying axes beyond
// those the list consumes pass through whole. The view borrows e: the
// caller keeps e alive for the view's lifetime.
//
// Construction fails for an Ellipsis descriptor, for a list consuming
// more axes than e has, and for descriptor binding errors such as a
// Squeeze index outside its axis.
func New[T ndim.DType](e ndim.Expression[T], specs ...slice.Spec) (*View[T], error) {
	under := e.Shape().Clone()

	consumed := 0
	for _, sp := range specs {
		if sp.Kind() == slice.KindEllipsis {
			return nil, fmt.Errorf("ellipsis slices are not supported")
		}
		if sp.Kind() != slice.KindNewAxis {
			consumed++
		}
	}
	if consumed > len(under) {
		return nil, fmt.Errorf("slice list consumes %d axes but expression has rank %d",
			consumed, len(under))
	}

	bound := make([]slice.Slice, len(specs))
	u := 0
	for i, sp := range specs {
		extent := 0
		if sp.Kind() != slice.KindNewAxis {
			extent = under[u]
			u++
		}
		s, err := sp.Bind(extent)
		if err != nil {
			return nil, fmt.Errorf("slice %d: %w", i, err)
		}
		bound[i] = s
	}

	return &View[T]{
		expr:   e,
		under:  under,
		slices: bound,
		shape:  deriveShape(under, bound),
	}, nil
}

// NewOwned builds a view like New but with the view owning a reference to
// the storage at the bottom of e's expression chain: if that storage is
// reference counted the view retains it now and releases it in Release,
// so the view stays valid after the caller drops its own reference.
// Intermediate views in the chain are left untouched.
func NewOwned[T ndim.DType](e ndim.Expression[T], specs ...slice.Spec) (*View[T], error) {
	v, err := New(e, specs...)
	if err != nil {
		return nil, err
	}
	v.Retain()
	return v, nil
}

// Shape returns the view's derived shape.
func (v *View[T]) Shape() ndim.Shape {
	return v.shape
}

// Rank returns the number of view axes.
func (v *View[T]) Rank() int {
	return len(v.shape)
}

// Size returns the total number of view elements.
func (v *View[T]) Size() int {
	return v.shape.NumElements()
}

// Slices returns the bound slice list. Callers must not modify it.
func (v *View[T]) Slices() []slice.Slice {
	return v.slices
}

// Expression returns the wrapped expression.
func (v *View[T]) Expression() ndim.Expression[T] {
	return v.expr
}

// UnderlyingShape returns the wrapped expression's shape as captured at
// construction. Callers must not modify it.
func (v *View[T]) UnderlyingShape() ndim.Shape {
	return v.under
}

// MapIndex maps a view multi-index to the corresponding underlying
// multi-index: Squeeze axes contribute their fixed coordinate, Range axes
// map position k to start+k*step, NewAxis coordinates are discarded, and
// passthrough coordinates copy over. Indices beyond the view's rank are
// appended to the result unchanged; missing trailing coordinates are
// treated as position 0 on their axes.
func (v *View[T]) MapIndex(index []int) []int {
	// TODO: let hot callers pass a scratch buffer instead of allocating
	// the underlying index on every access.
	rank := len(v.shape)
	extra := len(index) - rank
	if extra < 0 {
		extra = 0
	}
	out := make([]int, len(v.under)+extra)
	u, o := 0, 0
	for _, s := range v.slices {
		switch s.Kind() {
		case slice.KindSqueeze:
			out[u] = s.Value(0)
			u++
		case slice.KindRange:
			k := 0
			if o < len(index) {
				k = index[o]
			}
			out[u] = s.Value(k)
			u++
			o++
		case slice.KindNewAxis:
			o++
		}
	}
	for ; u < len(v.under); u++ {
		if o < len(index) {
			out[u] = index[o]
		}
		o++
	}
	if extra > 0 {
		copy(out[len(v.under):], index[rank:])
	}
	return out
}

// Element returns the element at a view multi-index without bounds
// validation. At least rank indices must be supplied; excess trailing
// indices are forwarded to the underlying expression unchanged.
func (v *View[T]) Element(index []int) T {
	return v.expr.Element(v.MapIndex(index))
}

// SetElement writes through to the underlying expression without bounds
// validation. Panics if the underlying expression is not settable.
func (v *View[T]) SetElement(index []int, value T) {
	v.expr.(ndim.Settable[T]).SetElement(v.MapIndex(index), value)
}

// At returns the element at the given indices after validating the index
// count and every bound against the view's shape.
func (v *View[T]) At(indices ...int) (T, error) {
	var zero T
	if err := v.checkAccess(indices); err != nil {
		return zero, err
	}
	return v.Element(indices), nil
}

func (v *View[T]) checkAccess(indices []int) error {
	if len(indices) != len(v.shape) {
		return fmt.Errorf("expected %d indices, got %d", len(v.shape), len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= v.shape[i] {
			return fmt.Errorf("index %d out of bounds for dimension %d (size %d)", idx, i, v.shape[i])
		}
	}
	return nil
}

// HasData reports whether the view can answer Strides, DataOffset and
// Data, which requires the wrapped expression to expose strided storage.
func (v *View[T]) HasData() bool {
	return ndim.HasData(v.expr)
}

// CanSet reports whether writes through the view reach real storage.
func (v *View[T]) CanSet() bool {
	return ndim.CanSet(v.expr)
}

// Strides returns the view's derived strides, computing and caching them
// on first request. Every extent-1 axis carries the canonical stride 0 so
// downstream consumers can treat such axes as broadcastable.
// Panics if the wrapped expression exposes no data interface.
func (v *View[T]) Strides() []int {
	v.ensureStrides()
	return v.strides
}

// DataOffset returns the view's base offset into the shared storage.
// Panics if the wrapped expression exposes no data interface.
func (v *View[T]) DataOffset() int {
	v.ensureStrides()
	return v.offset
}

// Data returns the shared backing buffer, unshifted: the view's first
// element lives at Data()[DataOffset()] when the buffer is dense.
// Panics if the wrapped expression exposes no data interface.
func (v *View[T]) Data() []T {
	if !v.HasData() {
		panic("view: underlying expression exposes no data interface")
	}
	return v.expr.(ndim.DataExpression[T]).Data()
}

// Layout classifies the view's derived strides: RowMajor or ColumnMajor
// when they match that dense layout for the view's shape exactly, Dynamic
// otherwise or when no data interface is available.
func (v *View[T]) Layout() ndim.Layout {
	if !v.HasData() {
		return ndim.Dynamic
	}
	strides := v.Strides()
	if ndim.StridesMatch(v.shape, strides, ndim.RowMajor) {
		return ndim.RowMajor
	}
	if ndim.StridesMatch(v.shape, strides, ndim.ColumnMajor) {
		return ndim.ColumnMajor
	}
	return ndim.Dynamic
}

func (v *View[T]) ensureStrides() {
	if !v.HasData() {
		panic("view: underlying expression exposes no data interface")
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.hasStrides {
		return
	}

	de := v.expr.(ndim.DataExpression[T])
	eStrides := de.Strides()

	strides := make([]int, 0, len(v.shape))
	offset := de.DataOffset()
	u := 0
	for _, s := range v.slices {
		switch s.Kind() {
		case slice.KindSqueeze:
			offset += s.Value(0) * eStrides[u]
			u++
		case slice.KindRange:
			strides = append(strides, s.Step()*eStrides[u])
			offset += s.Value(0) * eStrides[u]
			u++
		case slice.KindNewAxis:
			strides = append(strides, 0)
		}
	}
	for ; u < len(eStrides); u++ {
		strides = append(strides, eStrides[u])
	}
	for i, extent := range v.shape {
		if extent == 1 {
			strides[i] = 0
		}
	}

	v.strides = strides
	v.offset = offset
	v.hasStrides = true
}

// storageOf resolves the reference-counted storage backing e: view chains
// answer with the storage at their bottom, any other expression answers
// for itself when it is reference counted.
func storageOf[T ndim.DType](e ndim.Expression[T]) (ndim.RefCounted, bool) {
	if vv, ok := e.(*View[T]); ok {
		return storageOf(vv.expr)
	}
	rc, ok := e.(ndim.RefCounted)
	return rc, ok
}

// Retain takes a reference on the storage at the bottom of the view's
// expression chain, making this view an owner. Each Retain pairs with one
// Release. A no-op when nothing in the chain is reference counted.
func (v *View[T]) Retain() {
	if v.retained == nil {
		rc, ok := storageOf(v.expr)
		if !ok {
			return
		}
		v.retained = rc
	}
	v.retained.Retain()
	v.retains++
}

// Release hands back one storage reference held by this view. Views built
// with New hold none, so releasing a borrowed view is a no-op, as is
// releasing more times than the view retained.
func (v *View[T]) Release() {
	if v.retains == 0 {
		return
	}
	v.retains--
	rc := v.retained
	if v.retains == 0 {
		v.retained = nil
	}
	rc.Release()
}

// String returns a short description of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View[%s]{shape: %v}", ndim.InferDataType[T](), v.shape)
}
