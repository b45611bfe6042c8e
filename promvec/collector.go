// Package promvec exports simplevector metrics to Prometheus.
package promvec

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/simplevector"
)

// Source is anything that can report vector metrics. *simplevector.Vector
// and *simplevector.SafeVector both satisfy it; sources that are mutated
// while being scraped must be SafeVectors.
type Source interface {
	Metrics() simplevector.Metrics
}

// Collector is a prometheus.Collector reporting the metrics of a set of
// named vectors.
type Collector struct {
	sizeDesc     *prometheus.Desc
	capacityDesc *prometheus.Desc
	utilDesc     *prometheus.Desc
	reallocDesc  *prometheus.Desc

	mu      sync.Mutex
	sources map[string]Source
}

// NewCollector creates a Collector whose metric names are prefixed by namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"vector"}
	return &Collector{
		sizeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "size"),
			"The current number of live elements.",
			labels,
			nil,
		),
		capacityDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "capacity"),
			"The current number of allocated elements.",
			labels,
			nil,
		),
		utilDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "utilization"),
			"The ratio of live elements to capacity.",
			labels,
			nil,
		),
		reallocDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", "reallocations_total"),
			"The total number of block replacements caused by growth.",
			labels,
			nil,
		),
		sources: make(map[string]Source),
	}
}

// Add starts reporting src under name, replacing any source with that name.
func (c *Collector) Add(name string, src Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[name] = src
}

// Remove stops reporting the source registered under name.
func (c *Collector) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sources, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.sizeDesc
	ch <- c.capacityDesc
	ch <- c.utilDesc
	ch <- c.reallocDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sources := make([]Source, 0, len(names))
	sort.Strings(names)
	for _, name := range names {
		sources = append(sources, c.sources[name])
	}
	c.mu.Unlock()

	for i, src := range sources {
		m := src.Metrics()
		ch <- prometheus.MustNewConstMetric(c.sizeDesc, prometheus.GaugeValue, float64(m.Size), names[i])
		ch <- prometheus.MustNewConstMetric(c.capacityDesc, prometheus.GaugeValue, float64(m.Capacity), names[i])
		ch <- prometheus.MustNewConstMetric(c.utilDesc, prometheus.GaugeValue, m.Utilization, names[i])
		ch <- prometheus.MustNewConstMetric(c.reallocDesc, prometheus.CounterValue, float64(m.Reallocations), names[i])
	}
}
