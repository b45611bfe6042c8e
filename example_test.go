package simplevector

import (
	"errors"
	"fmt"
	"sync"
)

// Example demonstrates basic vector usage
func Example() {
	v := Of(1, 2, 3)

	// Insert before the second element
	v.Insert(1, 99)
	fmt.Println(v, v.Size())

	// Append and remove
	v.PushBack(4)
	v.Erase(0)
	fmt.Println(v)

	// Checked access
	if _, err := v.At(100); errors.Is(err, ErrOutOfRange) {
		fmt.Println("index 100 is out of range")
	}

	// Output:
	// [1 99 2 3] 4
	// [99 2 3 4]
	// index 100 is out of range
}

// ExampleVector_Resize shows that growing fills new slots with zero values
func ExampleVector_Resize() {
	v := New[int](3)
	v.Resize(10)
	fmt.Println(v.Size(), v.Capacity())
	fmt.Println(v)

	// Output:
	// 10 10
	// [0 0 0 0 0 0 0 0 0 0]
}

// ExampleNewReserved demonstrates construction-time capacity reservation
func ExampleNewReserved() {
	v := NewReserved[string](Reserve(8))
	fmt.Println(v.Size(), v.Capacity())

	for _, s := range []string{"a", "b", "c"} {
		v.PushBack(s)
	}
	fmt.Println(v.Size(), v.Capacity(), v.Reallocations())

	// Output:
	// 0 8
	// 3 8 0
}

// ExampleVector_Move demonstrates ownership transfer
func ExampleVector_Move() {
	a := Of("x", "y")
	b := a.Move()
	fmt.Println(b, b.Capacity())
	fmt.Println(a, a.Capacity())

	// Output:
	// [x y] 2
	// [] 0
}

// ExampleVector_Clone demonstrates that copies are independent
func ExampleVector_Clone() {
	a := Of(1, 2, 3)
	b := a.Clone()
	b.Set(0, 100)
	fmt.Println(a, b, Equal(a, b))

	// Output:
	// [1 2 3] [100 2 3] false
}

// ExampleVector_All demonstrates iteration over the live range
func ExampleVector_All() {
	v := Of("a", "b", "c")
	v.Reserve(16)
	for i, s := range v.All() {
		fmt.Println(i, s)
	}

	// Output:
	// 0 a
	// 1 b
	// 2 c
}

// ExampleCompare demonstrates lexicographic ordering
func ExampleCompare() {
	fmt.Println(Compare(Of(1, 2), Of(1, 2, 3)))
	fmt.Println(Compare(Of(2), Of(1, 9)))
	fmt.Println(Equal(Of(1, 2), Of(1, 2, 3)))

	// Output:
	// -1
	// 1
	// false
}

// ExampleSafeVector demonstrates thread-safe vector usage
func ExampleSafeVector() {
	s := NewSafe[int](nil)

	var wg sync.WaitGroup
	const numWorkers = 3

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.PushBack(id)
		}(i)
	}

	wg.Wait()
	fmt.Println("size:", s.Size())

	// Output:
	// size: 3
}

// ExampleVector_Metrics demonstrates growth statistics
func ExampleVector_Metrics() {
	v := New[int](0)
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}
	m := v.Metrics()
	fmt.Printf("size=%d capacity=%d reallocations=%d\n", m.Size, m.Capacity, m.Reallocations)
	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)

	// Output:
	// size=5 capacity=8 reallocations=4
	// Utilization: 62.50%
}
