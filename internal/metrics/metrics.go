// Package metrics exposes prometheus collectors for route resolution.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a lookup, used as label values.
const (
	OutcomeMatched        = "matched"
	OutcomeNotFound       = "not_found"
	OutcomeInvalidPath    = "invalid_path"
	OutcomeNotInitialised = "not_initialised"
	OutcomeError          = "error"
)

// Metrics holds the resolution collectors.
type Metrics struct {
	lookups  *prometheus.CounterVec
	duration prometheus.Histogram
	routes   prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total number of route lookups by view and outcome",
		}, []string{"view", "outcome"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Route lookup duration in seconds",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}),

		routes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "routes",
			Help:      "Number of registered routes",
		}),
	}
}

// ObserveLookup records a lookup. view is empty unless a route matched.
func (m *Metrics) ObserveLookup(view, outcome string, d time.Duration) {
	if m == nil {
		return
	}

	m.lookups.WithLabelValues(view, outcome).Inc()
	m.duration.Observe(d.Seconds())
}

// SetRoutes records the number of registered routes.
func (m *Metrics) SetRoutes(n int) {
	if m == nil {
		return
	}

	m.routes.Set(float64(n))
}
