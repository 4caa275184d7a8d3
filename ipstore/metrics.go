package ipstore

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aglyzov/go-ipstore/addrkey"
	"github.com/aglyzov/go-ipstore/bittrie"
)

// StatsSource is implemented by Store and SyncStore.
type StatsSource interface {
	FamilyStats() (v4, v6 bittrie.Stats)
}

// Collector exports the size of a store as prometheus gauges, read at scrape time.
// Register a SyncStore rather than a Store when the store is written concurrently.
type Collector struct {
	source  StatsSource
	entries *prometheus.Desc
	nodes   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector with metrics <namespace>_entries and <namespace>_trie_nodes.
func NewCollector(namespace string, source StatsSource) *Collector {
	return &Collector{
		source: source,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "entries"),
			"Number of addresses stored, by family.",
			[]string{"family"}, nil,
		),
		nodes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "trie", "nodes"),
			"Number of allocated trie nodes, by family.",
			[]string{"family"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.nodes
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	v4, v6 := c.source.FamilyStats()

	for _, fam := range []struct {
		family addrkey.Family
		stats  bittrie.Stats
	}{
		{addrkey.V4, v4},
		{addrkey.V6, v6},
	} {
		label := fam.family.String()
		ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(fam.stats.Entries), label)
		ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(fam.stats.Nodes), label)
	}
}
