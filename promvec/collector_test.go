package promvec

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/simplevector"
)

func TestCollector(t *testing.T) {
	v := simplevector.New[int](0)
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}
	// capacity grows 1, 2, 4, 8

	c := NewCollector("test")
	c.Add("ints", v)
	c.Add("reserved", simplevector.NewSafe(simplevector.NewReserved[int](simplevector.Reserve(4))))

	expected := `
# HELP test_vector_capacity The current number of allocated elements.
# TYPE test_vector_capacity gauge
test_vector_capacity{vector="ints"} 8
test_vector_capacity{vector="reserved"} 4
# HELP test_vector_reallocations_total The total number of block replacements caused by growth.
# TYPE test_vector_reallocations_total counter
test_vector_reallocations_total{vector="ints"} 4
test_vector_reallocations_total{vector="reserved"} 0
# HELP test_vector_size The current number of live elements.
# TYPE test_vector_size gauge
test_vector_size{vector="ints"} 5
test_vector_size{vector="reserved"} 0
# HELP test_vector_utilization The ratio of live elements to capacity.
# TYPE test_vector_utilization gauge
test_vector_utilization{vector="ints"} 0.625
test_vector_utilization{vector="reserved"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollectorRemove(t *testing.T) {
	c := NewCollector("test")
	c.Add("a", simplevector.Of(1, 2, 3))
	c.Add("b", simplevector.Of(1))
	require.Equal(t, 8, testutil.CollectAndCount(c))

	c.Remove("a")
	require.Equal(t, 4, testutil.CollectAndCount(c))

	c.Remove("missing")
	require.Equal(t, 4, testutil.CollectAndCount(c))
}

func TestCollectorRegister(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := NewCollector("test")
	require.NoError(t, reg.Register(c))

	c.Add("v", simplevector.Of("a", "b"))
	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 4)
}
