package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "test")

	m.SetRoutes(3)
	m.ObserveLookup("movie", OutcomeMatched, time.Microsecond)
	m.ObserveLookup("movie", OutcomeMatched, time.Microsecond)
	m.ObserveLookup("", OutcomeNotFound, time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues("movie", OutcomeMatched)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues("", OutcomeNotFound)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.routes))

	count, err := testutil.GatherAndCount(reg, "test_lookup_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SetRoutes(1)
		m.ObserveLookup("", OutcomeError, 0)
	})
}
