package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAgendaMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAgendaMetrics(reg)

	m.ObserveBackend("appointments.list", "200", 120*time.Millisecond)
	m.ObserveBackend("appointments.list", "200", 80*time.Millisecond)
	m.ObserveLifecycle("create", nil)
	m.ObserveLifecycle("create", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.backendTotal.WithLabelValues("appointments.list", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lifecycleTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lifecycleTotal.WithLabelValues("create", "error")))
}

func TestAgendaMetricsNilSafe(t *testing.T) {
	var m *AgendaMetrics
	m.ObserveBackend("appointments.list", "error", time.Second)
	m.ObserveLifecycle("confirm", nil)
}
