package view

import (
	"github.com/born-ml/ndview/internal/ndim"
	"github.com/born-ml/ndview/internal/slice"
)

var _ ndim.Stepper[float32] = (*viewStepper[float32])(nil)

// viewStepper walks a view by driving a stepper of the wrapped expression
// in underlying-axis space. Every movement on a view axis translates to
// its slice position: NewAxis axes never move the underlying cursor, and
// slice-consumed axes scale the magnitude by the slice's step size.
// offset is the rank difference to the requested traversal; axes below it
// belong to an outer broadcast context and are no-ops.
type viewStepper[T ndim.DType] struct {
	v      *View[T]
	sub    ndim.Stepper[T]
	offset int
}

// StepperBegin returns a stepper positioned on the view's first element:
// the underlying stepper at its begin position advanced once by each
// slice's starting coordinate.
func (v *View[T]) StepperBegin(traversal ndim.Shape) ndim.Stepper[T] {
	st := &viewStepper[T]{
		v:      v,
		sub:    v.expr.StepperBegin(v.under),
		offset: len(traversal) - len(v.shape),
	}
	st.applyStarts()
	return st
}

// StepperEnd returns a stepper in the view's end state for the given
// traversal layout.
func (v *View[T]) StepperEnd(traversal ndim.Shape, l ndim.Layout) ndim.Stepper[T] {
	st := &viewStepper[T]{
		v:      v,
		sub:    v.expr.StepperBegin(v.under),
		offset: len(traversal) - len(v.shape),
	}
	st.ToEnd(l)
	return st
}

// applyStarts advances the underlying stepper by each non-NewAxis slice's
// coordinate for view position 0: the Squeeze value or the Range start.
func (st *viewStepper[T]) applyStarts() {
	for i, s := range st.v.slices {
		if s.Kind() == slice.KindNewAxis {
			continue
		}
		st.sub.Step(i-newaxisCountBefore(st.v.slices, i), s.Value(0))
	}
}

func (st *viewStepper[T]) Step(dim, n int) {
	if dim < st.offset {
		return
	}
	st.move(dim-st.offset, n, st.sub.Step)
}

func (st *viewStepper[T]) StepBack(dim, n int) {
	if dim < st.offset {
		return
	}
	st.move(dim-st.offset, n, st.sub.StepBack)
}

// move translates view axis p to its slice position and forwards the
// scaled magnitude to the underlying stepper. Passthrough positions past
// the slice list keep step size 1.
func (st *viewStepper[T]) move(p, n int, f func(dim, n int)) {
	slices := st.v.slices
	pos := integralSkip(slices, p)
	if isNewAxisAt(slices, pos) {
		return
	}
	step := 1
	if pos < len(slices) {
		step = slices[pos].Step()
	}
	f(pos-newaxisCountBefore(slices, pos), step*n)
}

func (st *viewStepper[T]) Reset(dim int) {
	if dim < st.offset {
		return
	}
	st.rewind(dim-st.offset, st.sub.StepBack)
}

func (st *viewStepper[T]) ResetBack(dim int) {
	if dim < st.offset {
		return
	}
	st.rewind(dim-st.offset, st.sub.Step)
}

// rewind moves view axis p across its full sweep, (extent-1) positions
// scaled by the slice's step size.
func (st *viewStepper[T]) rewind(p int, f func(dim, n int)) {
	slices := st.v.slices
	pos := integralSkip(slices, p)
	if isNewAxisAt(slices, pos) {
		return
	}
	step := 1
	var extent int
	if pos < len(slices) {
		step = slices[pos].Step()
		extent = slices[pos].Len()
	} else {
		extent = st.v.shape[p]
	}
	if extent != 0 {
		extent--
	}
	f(pos-newaxisCountBefore(slices, pos), step*extent)
}

// ToBegin rewinds to the view's first element.
func (st *viewStepper[T]) ToBegin() {
	st.sub.ToBegin()
	st.applyStarts()
}

// ToEnd moves to the view's end state: the underlying end state corrected
// backward on every slice-consumed axis by the distance between the
// underlying axis's last coordinate and the slice's last coordinate.
func (st *viewStepper[T]) ToEnd(l ndim.Layout) {
	st.sub.ToEnd(l)
	for i, s := range st.v.slices {
		if s.Kind() == slice.KindNewAxis {
			continue
		}
		u := i - newaxisCountBefore(st.v.slices, i)
		last := s.Value(s.Len() - 1)
		st.sub.StepBack(u, st.v.under[u]-1-last)
	}
}

func (st *viewStepper[T]) Value() T {
	return st.sub.Value()
}
