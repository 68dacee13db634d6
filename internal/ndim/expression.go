package ndim

// Expression is the capability every N-dimensional value must provide to
// participate in the view engine: a shape, random element access by full
// multi-index, and steppers for incremental traversal.
//
// Element performs no bounds validation. Callers must supply at least one
// index per axis; excess trailing indices are ignored by dense containers
// and forwarded by adapters such as views. Behavior on out-of-range or
// missing indices is undefined and may panic.
//
// StepperBegin and StepperEnd take the shape of the requested traversal,
// which may have higher rank than the expression when it is iterated inside
// a broadcast context; the extra leading axes are never advanced by the
// returned stepper.
type Expression[T DType] interface {
	Shape() Shape
	Element(index []int) T
	StepperBegin(traversal Shape) Stepper[T]
	StepperEnd(traversal Shape, l Layout) Stepper[T]
}

// Settable is the write-through capability: expressions that can store an
// element at a full multi-index. SetElement performs no bounds validation,
// mirroring Element.
type Settable[T DType] interface {
	SetElement(index []int, value T)
}

// DataExpression is the strided data capability: expressions backed by a
// linear buffer addressable as offset + Σ index[i]·stride[i].
type DataExpression[T DType] interface {
	Expression[T]
	Strides() []int
	DataOffset() int
	Data() []T
	Layout() Layout
}

// RefCounted is implemented by expressions whose backing storage is
// reference counted. Retain and Release adjust the count; releasing the
// last reference invalidates the storage.
type RefCounted interface {
	Retain()
	Release()
}

// CanSet reports whether e supports write-through element assignment.
// An expression whose method set is unconditional but whose capability
// depends on what it wraps (a view) answers through its own CanSet method;
// otherwise the Settable interface decides.
func CanSet[T DType](e Expression[T]) bool {
	if c, ok := e.(interface{ CanSet() bool }); ok {
		return c.CanSet()
	}
	_, ok := e.(Settable[T])
	return ok
}

// HasData reports whether e exposes the strided data capability, honoring
// an expression's own HasData method before falling back to the interface
// assertion, for the same reason as CanSet.
func HasData[T DType](e Expression[T]) bool {
	if h, ok := e.(interface{ HasData() bool }); ok {
		return h.HasData()
	}
	_, ok := e.(DataExpression[T])
	return ok
}
