package simplevector

// noCopy makes go vet's copylocks check reject value copies of its container.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns a single block of exactly Len() elements. It has no notion of
// a logical size. A Buffer must not be copied; use Move or Swap to hand the
// block to another owner.
type Buffer[T any] struct {
	_    noCopy
	data []T
}

// NewBuffer allocates a buffer of length zero-valued elements.
// A length of 0 allocates nothing. Negative or oversized lengths panic
// with *AllocationError.
func NewBuffer[T any](length int) Buffer[T] {
	return Buffer[T]{data: allocBlock[T](length)}
}

// Len returns the number of allocated elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Ref returns a pointer to the element at offset i. No bounds checking is
// done beyond what the runtime performs against Len().
func (b *Buffer[T]) Ref(i int) *T {
	return &b.data[i]
}

// Get returns the element at offset i.
func (b *Buffer[T]) Get(i int) T {
	return b.data[i]
}

// Set stores v at offset i.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// Swap exchanges the blocks owned by b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Move transfers the block to a new Buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	data := b.data
	b.data = nil
	return Buffer[T]{data: data}
}

// release drops the block, leaving b empty.
func (b *Buffer[T]) release() {
	b.data = nil
}

// block exposes the whole allocated block, live or not.
func (b *Buffer[T]) block() []T {
	return b.data
}
