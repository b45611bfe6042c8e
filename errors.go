package simplevector

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned by the checked accessors when the index is
	// not within [0, Size()).
	ErrOutOfRange = errors.New("simplevector: index out of range")

	// ErrInvalidPosition is carried by the panic raised when Insert or Erase
	// is given a position outside the live range.
	ErrInvalidPosition = errors.New("simplevector: invalid position")

	// ErrAllocation is carried by the panic raised when a buffer of the
	// requested length cannot be allocated.
	ErrAllocation = errors.New("simplevector: cannot allocate buffer")
)

// AllocationError describes a buffer request that exceeds the allocation
// limit or that the runtime refused. It is used as a panic value; there is no recovery path.
type AllocationError struct {
	Requested int // element count that was asked for
	Max       int // largest element count allowed for this element type
	ElemSize  uintptr
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%v: requested %d elements of %d bytes, max %d",
		ErrAllocation, e.Requested, e.ElemSize, e.Max)
}

func (e *AllocationError) Unwrap() error { return ErrAllocation }

// IndexError is the panic value for Insert and Erase calls whose position
// does not satisfy the operation's precondition.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %s at %d with size %d", ErrInvalidPosition, e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrInvalidPosition }

func outOfRange(index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, size)
}
