package array

import "github.com/born-ml/ndview/internal/ndim"

var _ ndim.Stepper[float32] = (*stepper[float32])(nil)

// stepper walks an array by maintaining a single flat storage position.
// offset is the rank difference between the traversal shape and the array:
// movement on the leading broadcast axes is a no-op.
type stepper[T ndim.DType] struct {
	a      *Array[T]
	pos    int
	offset int
}

// StepperBegin returns a stepper positioned on the first element.
func (a *Array[T]) StepperBegin(traversal ndim.Shape) ndim.Stepper[T] {
	return &stepper[T]{a: a, offset: len(traversal) - len(a.shape)}
}

// StepperEnd returns a stepper in its end state: one past the last storage
// element, for any traversal layout.
func (a *Array[T]) StepperEnd(traversal ndim.Shape, _ ndim.Layout) ndim.Stepper[T] {
	return &stepper[T]{a: a, pos: a.Size(), offset: len(traversal) - len(a.shape)}
}

func (s *stepper[T]) Step(dim, n int) {
	if dim >= s.offset {
		s.pos += n * s.a.strides[dim-s.offset]
	}
}

func (s *stepper[T]) StepBack(dim, n int) {
	if dim >= s.offset {
		s.pos -= n * s.a.strides[dim-s.offset]
	}
}

func (s *stepper[T]) Reset(dim int) {
	if dim >= s.offset {
		d := dim - s.offset
		s.pos -= (s.a.shape[d] - 1) * s.a.strides[d]
	}
}

func (s *stepper[T]) ResetBack(dim int) {
	if dim >= s.offset {
		d := dim - s.offset
		s.pos += (s.a.shape[d] - 1) * s.a.strides[d]
	}
}

func (s *stepper[T]) ToBegin() {
	s.pos = 0
}

func (s *stepper[T]) ToEnd(_ ndim.Layout) {
	s.pos = s.a.Size()
}

func (s *stepper[T]) Value() T {
	return s.a.buf.data[s.pos]
}
