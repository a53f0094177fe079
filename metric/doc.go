// Package metric provides Prometheus-based metrics collection and HTTP export
// for UnitStream platform monitoring.
//
// The package offers a centralized metrics registry managing both core
// platform metrics (component status, message processing, NATS health) and
// custom component-specific metrics. It includes an HTTP server exposing
// metrics in Prometheus format.
//
// # Basic Usage
//
// Setting up metrics collection and the HTTP server:
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil {
//	        log.Printf("metrics server error: %v", err)
//	    }
//	}()
//
//	core := registry.CoreMetrics()
//	core.ComponentStatus.WithLabelValues("normalizer").Set(1)
//	core.MessagesProcessed.WithLabelValues("normalizer", "success").Inc()
//
// # Component Metrics
//
// Components register their own collectors through the typed Register
// methods. Registration is keyed by component and metric name, so a
// duplicate registration from the same component is rejected before it
// reaches the Prometheus registry:
//
//	conversions := prometheus.NewCounterVec(
//	    prometheus.CounterOpts{Name: "unitstream_conversions_total"},
//	    []string{"from", "to"},
//	)
//	if err := registry.RegisterCounterVec("gateway", "conversions", conversions); err != nil {
//	    return err
//	}
//
// The registry uses a private prometheus.Registry rather than the package
// default so tests can construct isolated registries without collector
// name collisions.
package metric
