package simplevector

// Reservation carries a capacity request from Reserve to NewReserved.
// It exposes nothing and has no other use. It is meant to be passed once,
// straight from Reserve; Go cannot stop a caller from keeping one and
// passing it again, which just reserves the same capacity again.
type Reservation struct {
	capacity int
}

// Reserve returns a Reservation for n elements. Negative n is treated as 0.
//
//	v := simplevector.NewReserved[string](simplevector.Reserve(64))
func Reserve(n int) Reservation {
	return Reservation{capacity: max(n, 0)}
}

// NewReserved creates an empty vector whose capacity is the one carried
// by r.
func NewReserved[T any](r Reservation) *Vector[T] {
	return &Vector[T]{buf: NewBuffer[T](r.capacity)}
}
