package array

import (
	"fmt"

	"github.com/born-ml/ndview/internal/ndim"
	"github.com/born-ml/ndview/internal/parallel"
)

// Compile-time capability checks.
var (
	_ ndim.DataExpression[float32] = (*Array[float32])(nil)
	_ ndim.Settable[float32]       = (*Array[float32])(nil)
	_ ndim.RefCounted              = (*Array[float32])(nil)
)

var parallelCfg = parallel.DefaultConfig()

// Array is a dense N-dimensional container with compact row-major storage.
// Its buffer is reference counted: Clone and Retain share it, Release hands
// a reference back. The zero offset and canonical strides make it the
// simplest expression the view engine composes over.
type Array[T ndim.DType] struct {
	buf     *buffer[T]
	shape   ndim.Shape
	strides []int
}

// New creates a zero-initialized array with the given shape.
// All extents must be positive.
func New[T ndim.DType](shape ndim.Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array[T]{
		buf:     newBuffer[T](shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// Full creates an array with every element set to value.
func Full[T ndim.DType](shape ndim.Shape, value T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	a.Fill(value)
	return a, nil
}

// FromSlice creates an array by copying data into fresh storage.
// len(data) must equal the shape's element count.
func FromSlice[T ndim.DType](data []T, shape ndim.Shape) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.buf.data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(a.buf.data, data)
	return a, nil
}

// Arange creates a 1-D array with values 0, 1, ..., n-1.
// Panics for n <= 0 and for bool element types.
func Arange[T ndim.DType](n int) *Array[T] {
	a, err := New[T](ndim.Shape{n})
	if err != nil {
		panic(fmt.Sprintf("Arange(%d): %v", n, err))
	}
	switch data := any(a.buf.data).(type) {
	case []float32:
		for i := range data {
			data[i] = float32(i)
		}
	case []float64:
		for i := range data {
			data[i] = float64(i)
		}
	case []int32:
		for i := range data {
			data[i] = int32(i)
		}
	case []int64:
		for i := range data {
			data[i] = int64(i)
		}
	case []uint8:
		for i := range data {
			data[i] = uint8(i)
		}
	default:
		panic("Arange not supported for this type")
	}
	return a
}

// FromExpression materializes e into a fresh dense array of e's shape.
func FromExpression[T ndim.DType](e ndim.Expression[T]) (*Array[T], error) {
	a, err := New[T](e.Shape().Clone())
	if err != nil {
		return nil, fmt.Errorf("materialize: %w", err)
	}
	if err := a.CopyFrom(e); err != nil {
		return nil, err
	}
	return a, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() ndim.Shape {
	return a.shape
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array[T]) Size() int {
	return a.shape.NumElements()
}

// Strides returns the row-major memory strides.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// DataOffset returns the base offset into Data, always 0 for arrays.
func (a *Array[T]) DataOffset() int {
	return 0
}

// Data returns the backing buffer. The slice aliases the array's storage.
func (a *Array[T]) Data() []T {
	return a.buf.data
}

// Layout reports the storage ordering, always row-major for arrays.
func (a *Array[T]) Layout() ndim.Layout {
	return ndim.RowMajor
}

// DataType returns runtime type information for the element type.
func (a *Array[T]) DataType() ndim.DataType {
	return ndim.InferDataType[T]()
}

// Element returns the element at a full multi-index without bounds
// validation. Excess trailing indices are ignored; missing indices are
// undefined behavior and may panic.
func (a *Array[T]) Element(index []int) T {
	return a.buf.data[a.flatIndex(index)]
}

// SetElement stores value at a full multi-index without bounds validation.
func (a *Array[T]) SetElement(index []int, value T) {
	a.buf.data[a.flatIndex(index)] = value
}

func (a *Array[T]) flatIndex(index []int) int {
	flat := 0
	for i := range a.shape {
		flat += index[i] * a.strides[i]
	}
	return flat
}

// At returns the element at the given indices after validating the index
// count and every bound.
func (a *Array[T]) At(indices ...int) (T, error) {
	var zero T
	if err := a.checkAccess(indices); err != nil {
		return zero, err
	}
	return a.Element(indices), nil
}

// SetAt stores value at the given indices after validating the index count
// and every bound.
func (a *Array[T]) SetAt(value T, indices ...int) error {
	if err := a.checkAccess(indices); err != nil {
		return err
	}
	a.SetElement(indices, value)
	return nil
}

func (a *Array[T]) checkAccess(indices []int) error {
	if len(indices) != len(a.shape) {
		return fmt.Errorf("expected %d indices, got %d", len(a.shape), len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return fmt.Errorf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i])
		}
	}
	return nil
}

// Fill sets every element to value.
func (a *Array[T]) Fill(value T) {
	data := a.buf.data
	parallel.For(len(data), func(i int) {
		data[i] = value
	}, parallelCfg)
}

// CopyFrom evaluates e into the array's existing storage in row-major
// order. e's shape must equal the array's shape exactly.
func (a *Array[T]) CopyFrom(e ndim.Expression[T]) error {
	if !a.shape.Equal(e.Shape()) {
		return fmt.Errorf("copy: expression shape %v does not match array shape %v", e.Shape(), a.shape)
	}

	data := a.buf.data
	strides := a.strides
	rank := len(a.shape)
	parallel.For(len(data), func(i int) {
		index := make([]int, rank)
		tmp := i
		for d := 0; d < rank; d++ {
			index[d] = tmp / strides[d]
			tmp %= strides[d]
		}
		data[i] = e.Element(index)
	}, parallelCfg)
	return nil
}

// Clone returns a new array sharing this array's buffer. The reference
// count is incremented; release the clone independently.
func (a *Array[T]) Clone() *Array[T] {
	a.buf.addRef()
	return &Array[T]{
		buf:     a.buf,
		shape:   a.shape.Clone(),
		strides: a.shape.ComputeStrides(),
	}
}

// Copy returns a deep copy with its own buffer.
func (a *Array[T]) Copy() (*Array[T], error) {
	return FromSlice(a.buf.data, a.shape)
}

// Retain increments the buffer's reference count.
func (a *Array[T]) Retain() {
	a.buf.addRef()
}

// Release decrements the buffer's reference count, deallocating the
// storage when it reaches zero.
func (a *Array[T]) Release() {
	a.buf.release()
}

// IsUnique returns true if no other array or view retains this buffer.
func (a *Array[T]) IsUnique() bool {
	return a.buf.isUnique()
}

// Refs returns the buffer's current reference count.
func (a *Array[T]) Refs() int {
	return a.buf.refs()
}

// String returns a short description of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]{shape: %v}", a.DataType(), a.shape)
}
