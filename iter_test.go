package simplevector

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	v := Of("a", "b", "c")
	v.Reserve(8)

	var idx []int
	var vals []string
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)
}

func TestAllEarlyStop(t *testing.T) {
	v := Of(1, 2, 3, 4)
	var seen []int
	for _, x := range v.All() {
		if x == 3 {
			break
		}
		seen = append(seen, x)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestValuesRestartable(t *testing.T) {
	v := Of(1, 2, 3)
	seq := v.Values()
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
}

func TestBackward(t *testing.T) {
	v := Of(1, 2, 3)
	var got []int
	for i, x := range v.Backward() {
		assert.Equal(t, v.Get(i), x)
		got = append(got, x)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestIterateEmpty(t *testing.T) {
	var v Vector[int]
	for range v.All() {
		t.Fatal("All yielded on an empty vector")
	}
	for range v.Backward() {
		t.Fatal("Backward yielded on an empty vector")
	}
	assert.Empty(t, v.Slice())

	// after Clear the stale contents stay hidden
	w := Of(1, 2)
	w.Clear()
	assert.Empty(t, slices.Collect(w.Values()))
}

func TestSliceIsClipped(t *testing.T) {
	v := Of(1, 2, 3)
	v.Reserve(10)

	s := v.Slice()
	assert.Equal(t, 3, len(s))
	assert.Equal(t, 3, cap(s))

	// appending through the view must not write into the vector's spare slots
	s = append(s, 4)
	v.PushBack(5)
	assert.Equal(t, []int{1, 2, 3, 5}, v.Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, s)
}
