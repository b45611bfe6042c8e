package simplevector

import "sync"

// SafeVector lets several goroutines share one Vector. Each method holds the
// lock for a single operation; use Do to run several under one lock.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafe wraps v. The caller must not use v directly afterwards.
// A nil v starts an empty vector.
func NewSafe[T any](v *Vector[T]) *SafeVector[T] {
	if v == nil {
		v = &Vector[T]{}
	}
	return &SafeVector[T]{v: v}
}

// PushBack thread-safely appends x.
func (s *SafeVector[T]) PushBack(x T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PushBack(x)
}

// PopBack thread-safely drops the last element, if any.
func (s *SafeVector[T]) PopBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PopBack()
}

// Insert thread-safely inserts x at pos. It panics like Vector.Insert.
func (s *SafeVector[T]) Insert(pos int, x T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Insert(pos, x)
}

// Erase thread-safely removes the element at pos. It panics like Vector.Erase.
func (s *SafeVector[T]) Erase(pos int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Erase(pos)
}

// At thread-safely returns the element at i with bounds checking.
func (s *SafeVector[T]) At(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.At(i)
}

// SetAt thread-safely stores x at i with bounds checking.
func (s *SafeVector[T]) SetAt(i int, x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SetAt(i, x)
}

// Resize thread-safely sets the logical size to n.
func (s *SafeVector[T]) Resize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Resize(n)
}

// Reserve thread-safely grows capacity to at least n.
func (s *SafeVector[T]) Reserve(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Reserve(n)
}

// Clear thread-safely sets the size to 0.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Snapshot thread-safely returns a deep copy of the wrapped vector.
func (s *SafeVector[T]) Snapshot() *Vector[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Clone()
}

// Do runs fn with exclusive access to the wrapped vector. fn must not keep
// the pointer or any slice of it after returning.
func (s *SafeVector[T]) Do(fn func(v *Vector[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.v)
}
