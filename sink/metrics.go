package sink

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes sink statistics as Prometheus counters.
// Labels: sink
type Collector struct {
	stats   *Stats
	written *prometheus.Desc
	failed  *prometheus.Desc
}

// NewCollector creates a collector reporting stats under the given
// namespace, labelled with name. Register it with a prometheus.Registerer.
func NewCollector(namespace, name string, stats *Stats) *Collector {
	labels := prometheus.Labels{"sink": name}
	return &Collector{
		stats: stats,
		written: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sink", "lines_written_total"),
			"Total number of log lines written successfully",
			nil, labels,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sink", "write_failures_total"),
			"Total number of log lines whose write failed",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.written
	ch <- c.failed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.stats.GetSnapshot()
	ch <- prometheus.MustNewConstMetric(c.written, prometheus.CounterValue, float64(snap.WrittenTotal))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(snap.FailedTotal))
}
