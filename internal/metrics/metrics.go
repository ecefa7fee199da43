package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AgendaMetrics exposes counters/histograms for backend calls and the
// appointment lifecycle.
type AgendaMetrics struct {
	backendTotal    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	lifecycleTotal  *prometheus.CounterVec
}

func NewAgendaMetrics(reg prometheus.Registerer) *AgendaMetrics {
	m := &AgendaMetrics{
		backendTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "odoonto",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total requests sent to the clinic backend",
		}, []string{"operation", "status"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "odoonto",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Latency of clinic backend requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		lifecycleTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "odoonto",
			Subsystem: "lifecycle",
			Name:      "operations_total",
			Help:      "Appointment lifecycle operations by result",
		}, []string{"operation", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.backendTotal, m.backendDuration, m.lifecycleTotal)
	return m
}

func (m *AgendaMetrics) ObserveBackend(operation, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendTotal.WithLabelValues(operation, status).Inc()
	m.backendDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *AgendaMetrics) ObserveLifecycle(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.lifecycleTotal.WithLabelValues(operation, result).Inc()
}
