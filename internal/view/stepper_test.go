package view

import (
	"math/rand"
	"testing"

	"github.com/born-ml/ndview/internal/ndim"
	"github.com/born-ml/ndview/internal/slice"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepperManualWalk(t *testing.T) {
	a := arange(t, ndim.Shape{3, 4})

	// Rows 1..2, columns 1..3: values 5 6 7 / 9 10 11.
	v, err := New[float32](a, slice.Range(1, 3), slice.Range(1, 4))
	require.NoError(t, err)

	st := v.StepperBegin(v.Shape())
	assert.Equal(t, float32(5), st.Value(), "begin sits on the first view element")

	st.Step(1, 2)
	assert.Equal(t, float32(7), st.Value())

	st.Reset(1)
	assert.Equal(t, float32(5), st.Value(), "reset rewinds a fully swept axis to its start")

	st.ResetBack(1)
	assert.Equal(t, float32(7), st.Value())

	st.Step(0, 1)
	assert.Equal(t, float32(11), st.Value())

	st.StepBack(1, 1)
	assert.Equal(t, float32(10), st.Value())

	st.ToBegin()
	assert.Equal(t, float32(5), st.Value())
}

func TestStepperNegativeStep(t *testing.T) {
	a := arange(t, ndim.Shape{5})

	v, err := New[float32](a, slice.RangeStep(3, slice.ToBegin, -1))
	require.NoError(t, err)
	require.Equal(t, ndim.Shape{4}, v.Shape())

	var got []float32
	it := ndim.NewIterator[float32](v)
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []float32{3, 2, 1, 0}, got)
}

func TestStepperNewAxisNoOp(t *testing.T) {
	a := arange(t, ndim.Shape{4})

	v, err := New[float32](a, slice.NewAxis(), slice.All())
	require.NoError(t, err)

	st := v.StepperBegin(v.Shape())
	before := st.Value()
	st.Step(0, 1)
	assert.Equal(t, before, st.Value(), "a unit axis never moves storage")
	st.Reset(0)
	assert.Equal(t, before, st.Value())

	st.Step(1, 2)
	assert.Equal(t, float32(2), st.Value())
}

func TestStepperBroadcastContext(t *testing.T) {
	a := arange(t, ndim.Shape{2, 3})

	v, err := New[float32](a, slice.All(), slice.Range(1, 3))
	require.NoError(t, err)

	// Traversal of rank 4: the two leading axes belong to an outer
	// broadcast and must be ignored.
	traversal := ndim.Shape{5, 7, 2, 2}
	st := v.StepperBegin(traversal)
	first := st.Value()

	st.Step(0, 3)
	st.Step(1, 2)
	st.Reset(0)
	assert.Equal(t, first, st.Value(), "outer axes are no-ops")

	st.Step(3, 1)
	assert.Equal(t, float32(2), st.Value())
	st.Step(2, 1)
	assert.Equal(t, float32(5), st.Value())
}

func TestStepperToEnd(t *testing.T) {
	a := arange(t, ndim.Shape{5})

	v, err := New[float32](a, slice.Range(1, 4))
	require.NoError(t, err)

	// The end state is identical whether reached fresh or after a walk.
	fresh := v.StepperEnd(v.Shape(), ndim.RowMajor)
	walked := v.StepperBegin(v.Shape())
	walked.Step(0, 2)
	walked.ToEnd(ndim.RowMajor)

	fresh.StepBack(0, 1)
	walked.StepBack(0, 1)
	assert.Equal(t, float32(3), fresh.Value(), "one step back from end is the last element")
	assert.Equal(t, float32(3), walked.Value())
}

func TestStepperToEnd2D(t *testing.T) {
	a := arange(t, ndim.Shape{3, 4})

	v, err := New[float32](a, slice.Range(1, 3), slice.Range(0, 3))
	require.NoError(t, err)

	end := v.StepperEnd(v.Shape(), ndim.RowMajor)
	end.StepBack(1, 1)
	assert.Equal(t, float32(10), end.Value(), "last view element is A(2,2)")
}

func TestStepperMatchesNestedLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 300; i++ {
		under, specs, _, _ := randomCase(rng)
		a := arange(t, under)

		v, err := New[float32](a, specs...)
		require.NoError(t, err)

		var want []float32
		index := make([]int, v.Rank())
		for n := 0; n < v.Size(); n++ {
			val, err := v.At(index...)
			require.NoError(t, err)
			want = append(want, val)
			increment(index, v.Shape())
		}

		var got []float32
		it := ndim.NewIterator[float32](v)
		for it.Next() {
			got = append(got, it.Value())
		}

		assert.Equal(t, want, got, "case %d\n%s", i, spew.Sdump(under, specs))
	}
}

func TestStepperViewOfView(t *testing.T) {
	a := arange(t, ndim.Shape{4, 4})

	inner, err := New[float32](a, slice.Range(1, 4), slice.RangeStep(0, 4, 2))
	require.NoError(t, err)
	outer, err := New[float32](inner, slice.RangeStep(2, slice.ToBegin, -1), slice.Squeeze(1))
	require.NoError(t, err)
	require.Equal(t, ndim.Shape{3}, outer.Shape())

	var got []float32
	it := ndim.NewIterator[float32](outer)
	for it.Next() {
		got = append(got, it.Value())
	}

	// inner is rows 1..3, columns 0 and 2; outer reverses the rows and
	// fixes column index 1 (storage column 2).
	assert.Equal(t, []float32{14, 10, 6}, got)
}

func TestStepperEmptyView(t *testing.T) {
	a := arange(t, ndim.Shape{3, 4})

	v, err := New[float32](a, slice.Range(2, 2), slice.All())
	require.NoError(t, err)
	require.Equal(t, 0, v.Size())

	it := ndim.NewIterator[float32](v)
	assert.False(t, it.Next(), "an empty view yields nothing")
}
