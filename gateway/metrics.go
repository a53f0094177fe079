package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/unitstream/metric"
)

// gatewayMetrics holds Prometheus metrics for gateway operations. A nil
// receiver disables recording.
type gatewayMetrics struct {
	requestsTotal   *prometheus.CounterVec   // By component and path
	requestDuration *prometheus.HistogramVec // By component
	errorsTotal     *prometheus.CounterVec   // By component and status code
	rateLimited     *prometheus.CounterVec   // By component

	conversionsTotal *prometheus.CounterVec // By component, source unit, target unit

	wsClients        *prometheus.GaugeVec     // By component
	wsDisconnects    *prometheus.CounterVec   // By component and reason
	broadcastSize    *prometheus.HistogramVec // By component
	broadcastSeconds *prometheus.HistogramVec // By component
}

func newGatewayMetrics(registry *metric.MetricsRegistry, componentName string) (*gatewayMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &gatewayMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total HTTP API requests",
		}, []string{"component", "path"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "HTTP request handling duration in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"component"}),

		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "errors_total",
			Help:      "Total failed HTTP API requests",
		}, []string{"component", "status"}),

		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "rate_limited_total",
			Help:      "Total requests rejected by the rate limiter",
		}, []string{"component"}),

		conversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "conversions_total",
			Help:      "Total unit conversions served",
		}, []string{"component", "from", "to"}),

		wsClients: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "ws_clients",
			Help:      "Currently connected WebSocket clients",
		}, []string{"component"}),

		wsDisconnects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "ws_disconnects_total",
			Help:      "Total WebSocket client disconnections",
		}, []string{"component", "reason"}),

		broadcastSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "broadcast_size_bytes",
			Help:      "Size distribution of broadcast messages",
			Buckets:   prometheus.ExponentialBuckets(64, 2, 10),
		}, []string{"component"}),

		broadcastSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "unitstream",
			Subsystem: "gateway",
			Name:      "broadcast_duration_seconds",
			Help:      "Time to broadcast a message to all clients",
			Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"component"}),
	}

	if err := registry.RegisterCounterVec(componentName, "requests_total", m.requestsTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec(componentName, "request_duration", m.requestDuration); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec(componentName, "errors", m.errorsTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec(componentName, "rate_limited", m.rateLimited); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec(componentName, "conversions", m.conversionsTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterGaugeVec(componentName, "ws_clients", m.wsClients); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec(componentName, "ws_disconnects", m.wsDisconnects); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec(componentName, "broadcast_size", m.broadcastSize); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec(componentName, "broadcast_duration", m.broadcastSeconds); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *gatewayMetrics) recordRequest(componentName, path string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(componentName, path).Inc()
	m.requestDuration.WithLabelValues(componentName).Observe(duration.Seconds())
}

func (m *gatewayMetrics) recordError(componentName string, statusCode int) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(componentName, strconv.Itoa(statusCode)).Inc()
}

func (m *gatewayMetrics) recordRateLimited(componentName string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(componentName).Inc()
}

func (m *gatewayMetrics) recordConversion(componentName, from, to string) {
	if m == nil {
		return
	}
	m.conversionsTotal.WithLabelValues(componentName, from, to).Inc()
}

func (m *gatewayMetrics) recordClientConnected(componentName string, clients int) {
	if m == nil {
		return
	}
	m.wsClients.WithLabelValues(componentName).Set(float64(clients))
}

func (m *gatewayMetrics) recordClientDisconnected(componentName, reason string, clients int) {
	if m == nil {
		return
	}
	m.wsClients.WithLabelValues(componentName).Set(float64(clients))
	m.wsDisconnects.WithLabelValues(componentName, reason).Inc()
}

func (m *gatewayMetrics) recordBroadcast(componentName string, sizeBytes int, duration time.Duration) {
	if m == nil {
		return
	}
	m.broadcastSize.WithLabelValues(componentName).Observe(float64(sizeBytes))
	m.broadcastSeconds.WithLabelValues(componentName).Observe(duration.Seconds())
}
