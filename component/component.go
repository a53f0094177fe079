// Package component defines the lifecycle contract and shared dependencies
// for UnitStream pipeline components (the normalizer processor and the HTTP
// gateway).
package component

import (
	"context"
	"log/slog"
	"time"

	"github.com/c360/unitstream/metric"
	"github.com/c360/unitstream/natsclient"
)

// Component is the lifecycle interface implemented by every runnable piece of
// the pipeline. Start must be non-blocking; Stop must be safe to call after a
// failed Start.
type Component interface {
	// Meta returns basic component information.
	Meta() Metadata

	// Start begins component operation. It must return promptly, spawning
	// goroutines for any ongoing work.
	Start(ctx context.Context) error

	// Stop gracefully stops the component within the given timeout.
	Stop(timeout time.Duration) error

	// Health returns current health status.
	Health() HealthStatus
}

// Metadata describes what a component is.
type Metadata struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "processor", "gateway"
	Description string `json:"description"`
	Version     string `json:"version"`
}

// HealthStatus reports component liveness for health endpoints.
type HealthStatus struct {
	Healthy      bool          `json:"healthy"`
	LastCheck    time.Time     `json:"last_check"`
	LastActivity time.Time     `json:"last_activity,omitempty"`
	ErrorCount   int           `json:"error_count"`
	Uptime       time.Duration `json:"uptime"`
}

// Dependencies provides the shared external dependencies handed to component
// constructors.
type Dependencies struct {
	NATSClient      *natsclient.Client      // NATS client for messaging (can be nil for NATS-free components)
	MetricsRegistry *metric.MetricsRegistry // Metrics registry for Prometheus (can be nil)
	Logger          *slog.Logger            // Structured logger (can be nil, defaults to slog.Default())
}

// GetLogger returns the configured logger or a default logger if none is provided
func (d *Dependencies) GetLogger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// GetLoggerWithComponent returns a logger configured with component context
func (d *Dependencies) GetLoggerWithComponent(componentName string) *slog.Logger {
	return d.GetLogger().With("component", componentName)
}
