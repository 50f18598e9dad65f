package lru

import (
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys[K comparable, V any](q *LRU[K, V]) []K {
	return slices.Collect(q.Keys())
}

func TestLRU(t *testing.T) {
	var evicted []int
	onEvict := func(key int, v string) { evicted = append(evicted, key) }
	q := NewLRU[int, string](3, onEvict)

	q.Add(1, "a")
	q.Add(2, "b")
	q.Add(3, "c")
	require.Equal(t, []int{1, 2, 3}, keys(q))

	// Get refreshes.
	v, ok := q.Get(1)
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, []int{2, 3, 1}, keys(q))

	// Full: the oldest entry is evicted.
	q.Add(4, "d")
	require.Equal(t, []int{3, 1, 4}, keys(q))
	require.Equal(t, []int{2}, evicted)
	_, ok = q.Get(2)
	require.False(t, ok)

	// Update existing.
	q.Add(3, "cc")
	require.Equal(t, []int{1, 4, 3}, keys(q))
	v, _ = q.Peek(3)
	require.Equal(t, "cc", v)
	require.Equal(t, 3, q.Len())

	q.Del(4)
	q.Del(100)
	require.Equal(t, []int{1, 3}, keys(q))
	require.Equal(t, []int{2, 4}, evicted)

	require.Equal(t, Stats{Hits: 1, Misses: 1, Evictions: 1}, q.Stats())
}

func TestLRU_Peek(t *testing.T) {
	q := NewLRU[string, int](2, nil)
	q.Add("a", 1)
	q.Add("b", 2)

	v, ok := q.Peek("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, []string{"a", "b"}, keys(q))

	_, ok = q.Peek("c")
	require.False(t, ok)
	require.Equal(t, Stats{}, q.Stats())
}

func TestLRU_PopOldest(t *testing.T) {
	q := NewLRU[int, int](4, func(key, v int) { t.Fatal("PopOldest must not call onEvict") })
	for i := 0; i < 4; i++ {
		q.Add(i, i*10)
	}

	for i := 0; i < 4; i++ {
		k, v, ok := q.PopOldest()
		require.True(t, ok)
		require.Equal(t, i, k)
		require.Equal(t, i*10, v)
	}
	_, _, ok := q.PopOldest()
	require.False(t, ok)
	require.Equal(t, 0, q.Len())
}

func TestLRU_Clean(t *testing.T) {
	q := NewLRU[int, int](16, nil)
	for i := 0; i < 16; i++ {
		q.Add(i, i)
	}
	removed := q.Clean(func(key, v int) bool { return v%2 == 0 })
	require.Equal(t, 8, removed)
	require.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15}, keys(q))

	for i := 0; i < 16; i += 2 {
		_, ok := q.Peek(i)
		require.False(t, ok)
	}
}

func TestLRU_Overflow(t *testing.T) {
	q := NewLRU[int, int](128, nil)
	for i := 0; i < 1024; i++ {
		q.Add(i, i)
		require.LessOrEqual(t, q.Len(), 128)
	}
	require.Equal(t, 128, q.Len())
	require.Equal(t, uint64(1024-128), q.Stats().Evictions)

	k, _, _ := q.PopOldest()
	require.Equal(t, 1024-128, k)
}

func TestNewLRU_InvalidSize(t *testing.T) {
	assert.PanicsWithValue(t, "LRU: invalid max size: 0", func() { NewLRU[int, int](0, nil) })
}

func TestNewFromConfig(t *testing.T) {
	q, err := NewFromConfig[string, int](map[string]any{"max_size": "2"}, nil)
	require.NoError(t, err)
	q.Add("a", 1)
	q.Add("b", 2)
	q.Add("c", 3)
	require.Equal(t, []string{"b", "c"}, keys(q))

	_, err = NewFromConfig[string, int](map[string]any{"max_size": 0}, nil)
	require.Error(t, err)
	_, err = NewFromConfig[string, int](map[string]any{"size": 10}, nil)
	require.Error(t, err)
	_, err = NewFromConfig[string, int](map[string]any{"max_size": "big"}, nil)
	require.Error(t, err)
}

func TestLRU_Collector(t *testing.T) {
	q := NewLRU[int, int](2, nil)
	q.Add(1, 1)
	q.Add(2, 2)
	q.Add(3, 3)
	q.Get(3)
	q.Get(1)
	q.Get(1)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(q.Collector("test_cache")))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	got := make(map[string]float64)
	for _, mf := range mfs {
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		if g := m.GetGauge(); g != nil {
			got[mf.GetName()] = g.GetValue()
		} else {
			got[mf.GetName()] = m.GetCounter().GetValue()
		}
	}
	require.Equal(t, map[string]float64{
		"test_cache_size":           2,
		"test_cache_hit_total":      1,
		"test_cache_miss_total":     2,
		"test_cache_eviction_total": 1,
	}, got)
}
