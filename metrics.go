package simplevector

// Reallocations returns how many times v replaced its block to grow.
// Construction does not count; Swap, Move and MoveFrom carry the count
// along with the storage.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if v has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	size := int(elemSize[T]())
	return Metrics{
		Size:          v.size,
		Capacity:      v.Capacity(),
		Reallocations: v.reallocs,
		Utilization:   v.Utilization(),
		ElemSize:      size,
		CapacityBytes: size * v.Capacity(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     `yaml:"size"`           // Live elements
	Capacity      int     `yaml:"capacity"`       // Allocated elements
	Reallocations int     `yaml:"reallocations"`  // Block replacements caused by growth
	Utilization   float64 `yaml:"utilization"`    // Ratio of size to capacity (0.0-1.0)
	ElemSize      int     `yaml:"elem_size"`      // Bytes per element
	CapacityBytes int     `yaml:"capacity_bytes"` // Bytes held by the block
}

// Thread-safe metrics for SafeVector

// Size thread-safely returns the number of live elements.
func (s *SafeVector[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Size()
}

// Capacity thread-safely returns the capacity.
func (s *SafeVector[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Capacity()
}

// IsEmpty thread-safely reports whether the vector has no live elements.
func (s *SafeVector[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.IsEmpty()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
