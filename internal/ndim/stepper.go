package ndim

import "iter"

// Stepper is a position-incremental cursor over an expression. It advances
// along one traversal axis at a time instead of recomputing a full
// multi-index per move, which is what makes generic traversal cheap.
//
// Axes are numbered in traversal space, outermost first. When the stepper
// was created for a traversal of higher rank than its expression, the
// leading broadcast axes are no-ops for every movement operation.
//
// A stepper has two kinds of states: positioned (on an element, Value is
// valid) and end (one past the last element, Value is undefined).
type Stepper[T DType] interface {
	// Step advances n positions along axis dim.
	Step(dim, n int)
	// StepBack retreats n positions along axis dim.
	StepBack(dim, n int)
	// Reset rewinds axis dim from its last position to its first,
	// the bulk equivalent of StepBack(dim, extent-1).
	Reset(dim int)
	// ResetBack advances axis dim from its first position to its last.
	ResetBack(dim int)
	// ToBegin moves to the first element in traversal order.
	ToBegin()
	// ToEnd moves to the end state for the given traversal layout.
	ToEnd(l Layout)
	// Value returns the element at the current position.
	Value() T
}

// Iterator enumerates an expression's elements in row-major order by
// driving a stepper with an index odometer: Step on an axis increment,
// Reset on a wrap, ToEnd once exhausted.
type Iterator[T DType] struct {
	st      Stepper[T]
	shape   Shape
	index   []int
	started bool
	done    bool
}

// NewIterator returns an iterator over all of e's elements.
func NewIterator[T DType](e Expression[T]) *Iterator[T] {
	shape := e.Shape()
	return &Iterator[T]{
		st:    e.StepperBegin(shape),
		shape: shape,
		index: make([]int, len(shape)),
	}
}

// Next advances to the next element. It returns false once all elements
// have been visited (or immediately for an empty shape), leaving the
// stepper in its end state.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		if it.shape.NumElements() == 0 {
			it.done = true
			return false
		}
		return true
	}

	for d := len(it.shape) - 1; d >= 0; d-- {
		if it.index[d]+1 < it.shape[d] {
			it.index[d]++
			it.st.Step(d, 1)
			return true
		}
		it.index[d] = 0
		it.st.Reset(d)
	}

	it.done = true
	it.st.ToEnd(RowMajor)
	return false
}

// Value returns the element at the current position.
func (it *Iterator[T]) Value() T {
	return it.st.Value()
}

// Index returns the current multi-index. The slice is reused across Next
// calls; clone it to retain.
func (it *Iterator[T]) Index() []int {
	return it.index
}

// Elements returns a row-major (index, value) sequence over e.
// The yielded index slice is reused between iterations.
func Elements[T DType](e Expression[T]) iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		it := NewIterator(e)
		for it.Next() {
			if !yield(it.index, it.st.Value()) {
				return
			}
		}
	}
}
