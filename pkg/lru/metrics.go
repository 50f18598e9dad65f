package lru

import "github.com/prometheus/client_golang/prometheus"

type collector[K comparable, V any] struct {
	q *LRU[K, V]

	size      *prometheus.Desc
	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
}

// Collector returns a prometheus.Collector that reports the size and the
// Stats of q under the given metric name prefix. Collect reads q, so
// gathering must not run concurrently with other calls on q.
func (q *LRU[K, V]) Collector(name string) prometheus.Collector {
	return &collector[K, V]{
		q:         q,
		size:      prometheus.NewDesc(name+"_size", "The number of entries in the cache", nil, nil),
		hits:      prometheus.NewDesc(name+"_hit_total", "The total number of Get calls that found the key", nil, nil),
		misses:    prometheus.NewDesc(name+"_miss_total", "The total number of Get calls that missed the key", nil, nil),
		evictions: prometheus.NewDesc(name+"_eviction_total", "The total number of entries evicted by Add on a full cache", nil, nil),
	}
}

func (c *collector[K, V]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
}

func (c *collector[K, V]) Collect(ch chan<- prometheus.Metric) {
	s := c.q.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.q.Len()))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
}
