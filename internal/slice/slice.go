package slice

import (
	"fmt"
	"math"
)

// ToBegin is the stop sentinel for a negative-step range that runs through
// index 0 inclusive: RangeStep(n, ToBegin, -1) sweeps an axis in reverse.
// With a positive step it produces an empty range.
const ToBegin = math.MinInt

// Spec is an unbound slice descriptor: what the caller writes. It becomes
// usable only after binding against the extent of the underlying axis it
// consumes.
type Spec interface {
	// Kind classifies the descriptor.
	Kind() Kind
	// Bind resolves the descriptor against an axis extent, normalizing
	// negative indices (counted from the end) and clamping ranges to the
	// axis. NewAxis ignores the extent since it consumes no axis.
	Bind(extent int) (Slice, error)
}

// Slice is a bound descriptor. It reports the output extent it produces,
// its step size, and the underlying coordinate for each output position.
type Slice interface {
	Kind() Kind
	// Len is the output extent. It is 1 for Squeeze and NewAxis; for
	// Squeeze the value is meaningless since no output axis is produced.
	Len() int
	// Step is the step size in underlying coordinates per output
	// position. It is 0 for Squeeze and NewAxis.
	Step() int
	// Value returns the underlying coordinate for output position k.
	Value(k int) int
}

// Squeeze fixes one underlying axis to the given index, removing it from
// the output shape. Negative indices count from the end of the axis.
func Squeeze(index int) Spec { return squeezeSpec{index: index} }

// Range keeps an axis narrowed to [start, stop) with step 1.
// Negative indices count from the end of the axis.
func Range(start, stop int) Spec { return rangeSpec{start: start, stop: stop, step: 1} }

// RangeStep keeps an axis narrowed to [start, stop) with an explicit step.
// A negative step walks the axis backward; its stop is exclusive below, so
// use ToBegin to include index 0. A zero step fails at binding.
func RangeStep(start, stop, step int) Spec { return rangeSpec{start: start, stop: stop, step: step} }

// All keeps an axis whole. It binds to a full Range with step 1.
func All() Spec { return allSpec{} }

// NewAxis inserts a unit-extent output axis consuming no underlying axis.
func NewAxis() Spec { return newAxisSpec{} }

// Ellipsis is the variable-axis-span wildcard. The view mechanism does not
// support it: view construction rejects any list containing one, and Bind
// fails so no other caller can smuggle one through.
func Ellipsis() Spec { return ellipsisSpec{} }

type squeezeSpec struct {
	index int
}

func (squeezeSpec) Kind() Kind { return KindSqueeze }

func (s squeezeSpec) Bind(extent int) (Slice, error) {
	index := s.index
	if index < 0 {
		index += extent
	}
	if index < 0 || index >= extent {
		return nil, fmt.Errorf("squeeze index %d out of bounds for axis of size %d", s.index, extent)
	}
	return boundSqueeze{value: index}, nil
}

type rangeSpec struct {
	start, stop, step int
}

func (rangeSpec) Kind() Kind { return KindRange }

func (s rangeSpec) Bind(extent int) (Slice, error) {
	if s.step == 0 {
		return nil, fmt.Errorf("range step must be non-zero")
	}
	if extent == 0 {
		return boundRange{step: s.step}, nil
	}

	start, stop := s.start, s.stop
	if start < 0 {
		start += extent
	}

	if s.step > 0 {
		start = min(max(start, 0), extent)
		if stop < 0 {
			stop += extent
		}
		stop = min(max(stop, 0), extent)
		n := 0
		if stop > start {
			n = (stop - start + s.step - 1) / s.step
		}
		return boundRange{start: start, step: s.step, n: n}, nil
	}

	// Negative step: stop is exclusive below, so its floor is the virtual
	// coordinate -1 (reached via ToBegin).
	start = min(max(start, 0), extent-1)
	if stop == ToBegin {
		stop = -1
	} else {
		if stop < 0 {
			stop += extent
		}
		stop = min(max(stop, -1), extent-1)
	}
	n := 0
	if start > stop {
		n = (start - stop - s.step - 1) / (-s.step)
	}
	return boundRange{start: start, step: s.step, n: n}, nil
}

type allSpec struct{}

func (allSpec) Kind() Kind { return KindRange }

func (allSpec) Bind(extent int) (Slice, error) {
	return boundRange{start: 0, step: 1, n: extent}, nil
}

type newAxisSpec struct{}

func (newAxisSpec) Kind() Kind { return KindNewAxis }

func (newAxisSpec) Bind(int) (Slice, error) { return boundNewAxis{}, nil }

type ellipsisSpec struct{}

func (ellipsisSpec) Kind() Kind { return KindEllipsis }

func (ellipsisSpec) Bind(int) (Slice, error) {
	return nil, fmt.Errorf("ellipsis slices are not supported")
}

type boundSqueeze struct {
	value int
}

func (boundSqueeze) Kind() Kind { return KindSqueeze }

func (boundSqueeze) Len() int { return 1 }

func (boundSqueeze) Step() int { return 0 }

func (b boundSqueeze) Value(int) int { return b.value }

type boundRange struct {
	start, step, n int
}

func (boundRange) Kind() Kind { return KindRange }

func (b boundRange) Len() int { return b.n }

func (b boundRange) Step() int { return b.step }

func (b boundRange) Value(k int) int { return b.start + k*b.step }

type boundNewAxis struct{}

func (boundNewAxis) Kind() Kind { return KindNewAxis }

func (boundNewAxis) Len() int { return 1 }

func (boundNewAxis) Step() int { return 0 }

func (boundNewAxis) Value(int) int { return 0 }
