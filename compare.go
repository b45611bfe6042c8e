package simplevector

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// A nil *Vector compares as an empty one.
func view[T any](v *Vector[T]) []T {
	if v == nil {
		return nil
	}
	return v.live()
}

// Equal reports whether a and b have the same size and equal elements in
// the same order. Sizes are compared before any element.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(view(a), view(b))
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(view(a), view(b), eq)
}

// Compare compares a and b lexicographically. It returns -1 if a < b,
// 0 if they are equal and +1 if a > b. A proper prefix is less than the
// longer sequence.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(view(a), view(b))
}

// CompareFunc is like Compare but uses cmp to order elements.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(view(a), view(b), cmp)
}

func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
