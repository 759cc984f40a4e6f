package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Keyspace is the part of the store the collector reads.
type Keyspace interface {
	Len() int
	ShardKeys() []int
}

// Collector reports key-space size each time it is scraped.
type Collector struct {
	store Keyspace

	keys      *prometheus.Desc
	shardKeys *prometheus.Desc
}

// NewCollector creates a collector over store.
func NewCollector(store Keyspace) *Collector {
	return &Collector{
		store: store,
		keys: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "keys"),
			"Number of keys in the store.",
			nil, nil,
		),
		shardKeys: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "shard_keys"),
			"Number of keys held by each lock shard.",
			[]string{"shard"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keys
	ch <- c.shardKeys
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(c.store.Len()))
	for i, n := range c.store.ShardKeys() {
		ch <- prometheus.MustNewConstMetric(c.shardKeys, prometheus.GaugeValue, float64(n), strconv.Itoa(i))
	}
}
