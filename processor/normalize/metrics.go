package normalize

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/unitstream/metric"
)

// normalizeMetrics holds Prometheus metrics for normalizer operations.
// A nil receiver disables recording.
type normalizeMetrics struct {
	normalizationsTotal *prometheus.CounterVec // By component and target unit
	errors              *prometheus.CounterVec // By component and error_type

	normalizeDuration *prometheus.HistogramVec // By component
}

// newNormalizeMetrics creates and registers normalizer metrics with the provided registry.
func newNormalizeMetrics(registry *metric.MetricsRegistry, componentName string) (*normalizeMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &normalizeMetrics{
		normalizationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitstream",
			Subsystem: "normalizer",
			Name:      "normalizations_total",
			Help:      "Total number of measurements normalized",
		}, []string{"component", "target_unit"}),

		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitstream",
			Subsystem: "normalizer",
			Name:      "errors_total",
			Help:      "Total number of normalization errors",
		}, []string{"component", "error_type"}), // error_type: parse, unknown_unit, invalid_value, publish

		normalizeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "unitstream",
			Subsystem: "normalizer",
			Name:      "normalize_duration_seconds",
			Help:      "Measurement normalization duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05},
		}, []string{"component"}),
	}

	if err := registry.RegisterCounterVec(componentName, "normalizations_total", m.normalizationsTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec(componentName, "errors", m.errors); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec(componentName, "normalize_duration", m.normalizeDuration); err != nil {
		return nil, err
	}

	return m, nil
}

// recordNormalization records a successful normalization.
func (m *normalizeMetrics) recordNormalization(componentName, targetUnit string, duration time.Duration) {
	if m == nil {
		return
	}

	m.normalizationsTotal.WithLabelValues(componentName, targetUnit).Inc()
	m.normalizeDuration.WithLabelValues(componentName).Observe(duration.Seconds())
}

// recordError records a normalization error.
func (m *normalizeMetrics) recordError(componentName, errorType string) {
	if m == nil {
		return
	}

	m.errors.WithLabelValues(componentName, errorType).Inc()
}
