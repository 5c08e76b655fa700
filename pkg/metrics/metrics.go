// Package metrics provides Prometheus instrumentation for pollflow
// streams.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

// Registry holds the metric instances for pollflow components.
type Registry struct {
	// StreamPolls counts poll attempts per named stream.
	StreamPolls *prometheus.CounterVec

	// StreamItems counts items produced per named stream.
	StreamItems *prometheus.CounterVec

	// StreamPending counts polls that returned pending per named stream.
	StreamPending *prometheus.CounterVec

	// StreamEnds counts polls that reported end of stream per named stream.
	StreamEnds *prometheus.CounterVec
}

// DefaultRegistry is the registry used when none is supplied.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a metrics registry backed by the given registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		StreamPolls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pollflow",
				Subsystem: "stream",
				Name:      "polls_total",
				Help:      "Total number of poll attempts",
			},
			[]string{"stream"},
		),

		StreamItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pollflow",
				Subsystem: "stream",
				Name:      "items_total",
				Help:      "Total number of items produced",
			},
			[]string{"stream"},
		),

		StreamPending: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pollflow",
				Subsystem: "stream",
				Name:      "pending_total",
				Help:      "Total number of polls that returned pending",
			},
			[]string{"stream"},
		),

		StreamEnds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pollflow",
				Subsystem: "stream",
				Name:      "ends_total",
				Help:      "Total number of polls that reported end of stream",
			},
			[]string{"stream"},
		),
	}
}

// instrumentedStream counts poll outcomes for a named stream.
type instrumentedStream[T any] struct {
	name     string
	inner    stream.Stream[T]
	registry *Registry
}

// Instrument wraps s so every poll outcome is counted under the given
// stream name. A nil registry falls back to DefaultRegistry.
func Instrument[T any](name string, s stream.Stream[T], registry *Registry) stream.Stream[T] {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &instrumentedStream[T]{name: name, inner: s, registry: registry}
}

func (m *instrumentedStream[T]) PollNext(cx *stream.Context) stream.Poll[T] {
	m.registry.StreamPolls.WithLabelValues(m.name).Inc()
	p := m.inner.PollNext(cx)
	switch {
	case p.IsPending():
		m.registry.StreamPending.WithLabelValues(m.name).Inc()
	case p.IsEnd():
		m.registry.StreamEnds.WithLabelValues(m.name).Inc()
	default:
		m.registry.StreamItems.WithLabelValues(m.name).Inc()
	}
	return p
}
