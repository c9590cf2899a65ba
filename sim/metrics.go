package sim

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes Prometheus-compatible instrumentation for Execute runs,
// namespaced "eventrex". A simulator has no retries, no concurrent nodes,
// and no merge conflicts — unlike the graph engine this is adapted from —
// so the surface is smaller: events dispatched, queue depth, run outcomes,
// and run duration.
type Metrics struct {
	eventsDispatched prometheus.Counter
	queueDepth       prometheus.Gauge
	runDuration      *prometheus.HistogramVec
	outcomes         *prometheus.CounterVec

	enabled bool
}

// NewMetrics registers the eventrex metric family with registry (the
// default registerer if nil).
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		enabled: true,
		eventsDispatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "eventrex",
			Name:      "events_dispatched_total",
			Help:      "Cumulative count of events popped off the pending queue and applied.",
		}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "eventrex",
			Name:      "pending_queue_depth",
			Help:      "Size of the pending event queue immediately after the last dispatch.",
		}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "eventrex",
			Name:      "run_duration_ms",
			Help:      "Wall-clock duration of one Execute run, in milliseconds.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000},
		}, []string{"outcome"}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventrex",
			Name:      "run_outcomes_total",
			Help:      "Count of Execute runs by how they ended.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncEventsDispatched() {
	if m == nil || !m.enabled {
		return
	}
	m.eventsDispatched.Inc()
}

func (m *Metrics) ObserveQueueDepth(depth int) {
	if m == nil || !m.enabled {
		return
	}
	m.queueDepth.Set(float64(depth))
}

// ObserveOutcome increments the outcome counter. Run duration is recorded
// separately by ObserveDuration since Execute measures wall-clock time
// around the whole loop, not per-event.
func (m *Metrics) ObserveOutcome(outcome Outcome) {
	if m == nil || !m.enabled {
		return
	}
	m.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) ObserveDuration(outcome Outcome, d time.Duration) {
	if m == nil || !m.enabled {
		return
	}
	m.runDuration.WithLabelValues(string(outcome)).Observe(float64(d.Microseconds()) / 1000)
}

// Disable stops Metrics from recording further observations without
// unregistering it from its registry.
func (m *Metrics) Disable() { m.enabled = false }

// Enable resumes recording after Disable.
func (m *Metrics) Enable() { m.enabled = true }
