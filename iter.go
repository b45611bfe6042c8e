package simplevector

import "iter"

// All returns an iterator over index-value pairs of the live range, front
// to back. The sequence may be ranged over any number of times; mutating
// v during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := v.live()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Slice returns the live range as a slice sharing v's storage. Its capacity
// equals its length, so appending to it never writes into v. The slice is
// invalidated by any operation that reallocates.
func (v *Vector[T]) Slice() []T {
	return v.live()
}
