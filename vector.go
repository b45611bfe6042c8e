package simplevector

import "fmt"

// Vector is a resizable sequence of T stored in one contiguous Buffer.
// Elements in [0, Size()) are live; slots in [Size(), Capacity()) are
// allocated but not part of the sequence.
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied by value: use Clone for a deep copy and Move or MoveFrom to
// transfer ownership. Not goroutine-safe; use SafeVector for shared access.
type Vector[T any] struct {
	buf      Buffer[T]
	size     int
	reallocs int
}

// New creates a vector of size zero-valued elements with capacity == size.
func New[T any](size int) *Vector[T] {
	return &Vector[T]{buf: NewBuffer[T](size), size: size}
}

// NewFilled creates a vector of size elements, all equal to value.
func NewFilled[T any](size int, value T) *Vector[T] {
	v := New[T](size)
	fillBlock(v.buf.block(), value)
	return v
}

// Of creates a vector holding elems in order, with capacity == len(elems).
func Of[T any](elems ...T) *Vector[T] {
	v := New[T](len(elems))
	copy(v.buf.block(), elems)
	return v
}

// Clone returns a deep copy of v with the same capacity. The copy shares
// no storage with v.
func (v *Vector[T]) Clone() *Vector[T] {
	tmp := NewBuffer[T](v.Capacity())
	copy(tmp.block(), v.live())

	c := &Vector[T]{size: v.size}
	c.buf.Swap(&tmp)
	return c
}

// Move transfers v's storage to a new vector in O(1). v is left empty with
// zero capacity.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf.Move(), size: v.size, reallocs: v.reallocs}
	v.size, v.reallocs = 0, 0
	return m
}

// Assign replaces v's contents with a deep copy of other. The copy is fully
// built before v is touched, so a failure while copying leaves v unchanged.
// Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.buf.Swap(&tmp.buf)
	v.size = tmp.size
}

// MoveFrom takes over other's storage in O(1), releasing v's previous block.
// other is left empty with zero capacity.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf.Swap(&other.buf)
	other.buf.release()
	v.size, other.size = other.size, 0
	v.reallocs, other.reallocs = other.reallocs, 0
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements v can hold without reallocating.
func (v *Vector[T]) Capacity() int {
	return v.buf.Len()
}

// IsEmpty reports whether v has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i.
//
// Get is unchecked: i must be in [0, Size()). Indices in
// [Size(), Capacity()) are not detected; larger ones panic in the runtime.
func (v *Vector[T]) Get(i int) T {
	return v.buf.Get(i)
}

// Set stores x at index i. Like Get, it is unchecked.
func (v *Vector[T]) Set(i int, x T) {
	v.buf.Set(i, x)
}

// Ref returns a pointer to the element at index i. Like Get, it is unchecked.
// The pointer is invalidated by any operation that reallocates.
func (v *Vector[T]) Ref(i int) *T {
	return v.buf.Ref(i)
}

// At returns the element at index i, or an error matching ErrOutOfRange
// if i is not in [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange(i, v.size)
	}
	return v.buf.Get(i), nil
}

// RefAt is the checked form of Ref.
func (v *Vector[T]) RefAt(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return v.buf.Ref(i), nil
}

// SetAt is the checked form of Set.
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return outOfRange(i, v.size)
	}
	v.buf.Set(i, x)
	return nil
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.live())
}

// live returns the live range [0, size) with its capacity clipped to size.
func (v *Vector[T]) live() []T {
	return v.buf.block()[:v.size:v.size]
}
