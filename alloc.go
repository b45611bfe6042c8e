package simplevector

import (
	"math"
	"runtime"
	"unsafe"
)

// MaxBufferBytes is the largest block, in bytes, a Buffer will try to allocate.
// Requests above it are treated as fatal allocation failures. The runtime may
// refuse smaller blocks; allocBlock reports those the same way.
const MaxBufferBytes = math.MaxInt >> 1

// elemSize returns the in-memory size of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// MaxLen returns the largest element count a Buffer[T] can hold.
func MaxLen[T any]() int {
	size := elemSize[T]()
	if size == 0 {
		return math.MaxInt
	}
	return MaxBufferBytes / int(size)
}

// allocBlock returns a zeroed block of exactly n elements, or nil when n is 0.
// It panics with *AllocationError if n is negative, too large for T, or
// rejected by the runtime.
func allocBlock[T any](n int) []T {
	if n == 0 {
		return nil
	}
	limit := MaxLen[T]()
	if n < 0 || n > limit {
		panic(&AllocationError{Requested: n, Max: limit, ElemSize: elemSize[T]()})
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(&AllocationError{Requested: n, Max: limit, ElemSize: elemSize[T]()})
			}
			panic(r)
		}
	}()
	return make([]T, n)
}

// fillBlock sets every element of dst to v.
func fillBlock[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// zeroBlock resets every element of dst to the zero value of T.
func zeroBlock[T any](dst []T) {
	clear(dst)
}
