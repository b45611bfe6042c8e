// Package simplevector implements a generic dynamic array for Go.
//
// # Overview
//
// A Vector[T] is a resizable, random-access sequence of T stored in a
// single contiguous block that it owns exclusively. The block is held by
// a Buffer[T], which knows only its length; the Vector tracks the logical
// size on top of it. Slots between Size() and Capacity() are allocated but
// are not part of the sequence.
//
// # Basic Usage
//
//	v := simplevector.Of(1, 2, 3)
//	v.PushBack(4)
//	v.Insert(1, 99)           // [1 99 2 3 4]
//	v.Erase(0)                // [99 2 3 4]
//
//	x, err := v.At(10)        // err matches simplevector.ErrOutOfRange
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Construction
//
//	simplevector.New[int](3)                                // [0 0 0]
//	simplevector.NewFilled(3, "x")                          // [x x x]
//	simplevector.Of(1, 2, 3)                                // [1 2 3]
//	simplevector.NewReserved[int](simplevector.Reserve(64)) // empty, capacity 64
//
// # Value Semantics
//
// Vectors are handled through pointers and must not be copied by value.
// Copying and moving are explicit:
//
//   - Clone returns a deep copy; Assign replaces contents with a deep copy
//   - Move and MoveFrom transfer the block in O(1) and leave the source
//     empty with zero capacity
//   - Swap exchanges two vectors in O(1)
//
// Assign builds the full copy before touching the receiver, so a failure
// while copying never changes it.
//
// # Growth
//
// When more room is needed the block is replaced by one of
// max(required, 2*Capacity()) elements and the live elements are moved
// over. Appending N elements therefore costs amortized O(1) per element
// and O(log N) reallocations. Reserve allocates exactly what is asked for.
//
// # Access Tiers
//
// Get, Set and Ref are unchecked: the index must be below Size(). At,
// RefAt and SetAt check the index and return an error matching
// ErrOutOfRange. Insert and Erase validate their position and panic with
// an *IndexError on misuse, the same way the runtime reports a bad slice
// index. Requests for a block larger than MaxBufferBytes, or one the runtime
// refuses to make, panic with an *AllocationError.
//
// # Thread Safety
//
// Vector is not thread-safe. For concurrent access, use SafeVector:
//
//	s := simplevector.NewSafe(simplevector.Of(1, 2, 3))
//	s.PushBack(4)
//	snap := s.Snapshot()
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// The promvec subpackage exports these metrics to Prometheus.
package simplevector
