package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/pollflow/pkg/streaming/peek"
)

// PeekableCollectors exposes a Peekable's counters as Prometheus
// collectors. stats is typically the adapter's Stats method:
//
//	p := peek.New(upstream)
//	for _, c := range metrics.PeekableCollectors("jobs", p.Stats) {
//		registry.MustRegister(c)
//	}
func PeekableCollectors(name string, stats func() peek.Stats) []prometheus.Collector {
	opts := func(metric, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace:   "pollflow",
			Subsystem:   "peek",
			Name:        metric,
			Help:        help,
			ConstLabels: prometheus.Labels{"stream": name},
		}
	}

	return []prometheus.Collector{
		prometheus.NewCounterFunc(opts("peeks_total", "Total number of Peek calls"), func() float64 {
			return float64(stats().Peeks)
		}),
		prometheus.NewCounterFunc(opts("hits_total", "Peek calls answered from the cache"), func() float64 {
			return float64(stats().PeekHits)
		}),
		prometheus.NewCounterFunc(opts("drains_total", "PollNext calls answered from the cache"), func() float64 {
			return float64(stats().Drains)
		}),
		prometheus.NewCounterFunc(opts("upstream_polls_total", "Polls forwarded to the fused upstream"), func() float64 {
			return float64(stats().UpstreamPolls)
		}),
	}
}
