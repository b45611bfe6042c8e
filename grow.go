package simplevector

// PushBack appends x. When v is full the block is replaced by one of
// max(Size()+1, 2*Capacity()) elements, so appends are amortized O(1).
func (v *Vector[T]) PushBack(x T) {
	if v.size == v.Capacity() {
		v.grow(v.size + 1)
	}
	v.buf.Set(v.size, x)
	v.size++
}

// PopBack drops the last element. It does nothing on an empty vector and
// never shrinks capacity.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places x at position pos, shifting [pos, Size()) one slot toward
// the end, and returns pos. pos == Size() appends.
//
// Insert panics with *IndexError if pos is outside [0, Size()].
func (v *Vector[T]) Insert(pos int, x T) int {
	if pos < 0 || pos > v.size {
		panic(&IndexError{Op: "insert", Index: pos, Size: v.size})
	}
	if v.size == v.Capacity() {
		v.grow(v.size + 1)
	}
	data := v.buf.block()
	copy(data[pos+1:v.size+1], data[pos:v.size])
	data[pos] = x
	v.size++
	return pos
}

// Erase removes the element at pos, shifting the following elements one
// slot toward the front, and returns pos, which now indexes the element
// that followed the erased one (or Size() if it was the last).
//
// Erase panics with *IndexError if pos is outside [0, Size()), which
// includes every call on an empty vector.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(&IndexError{Op: "erase", Index: pos, Size: v.size})
	}
	data := v.live()
	copy(data[pos:], data[pos+1:])
	v.size--
	return pos
}

// Resize sets the logical size to n. Growing past capacity reallocates to
// max(n, 2*Capacity()); every newly exposed slot holds the zero value.
// Shrinking only lowers the size.
//
// Resize panics with *IndexError if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(&IndexError{Op: "resize", Index: n, Size: v.size})
	}
	switch {
	case n > v.Capacity():
		// fresh blocks are already zeroed past the moved elements
		v.grow(n)
	case n > v.size:
		zeroBlock(v.buf.block()[v.size:n])
	}
	v.size = n
}

// Reserve makes sure v can hold n elements without reallocating. If n is
// larger than Capacity() the block is replaced by one of exactly n elements;
// otherwise nothing happens. Size is unchanged.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Capacity() {
		return
	}
	v.reallocate(n)
}

// Clear sets the size to 0. Capacity and block contents are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// grow reallocates to the larger of required and twice the current capacity.
func (v *Vector[T]) grow(required int) {
	v.reallocate(max(required, v.Capacity()*2))
}

// reallocate moves the live elements into a new block of n elements and
// drops the old one. The new block is fully built before v changes.
func (v *Vector[T]) reallocate(n int) {
	tmp := NewBuffer[T](n)
	copy(tmp.block(), v.live())
	v.buf.Swap(&tmp)
	v.reallocs++
}
