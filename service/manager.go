// Package service orchestrates the lifecycle of UnitStream components. The
// Manager starts components in registration order and stops them in reverse,
// so downstream consumers (the gateway) come up after their producers and go
// down before them.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/c360/unitstream/component"
	"github.com/c360/unitstream/errors"
)

// Manager owns a set of components and coordinates startup and shutdown.
type Manager struct {
	mu         sync.Mutex
	components []component.Component
	started    []component.Component
	logger     *slog.Logger
}

// NewManager creates a component manager. A nil logger falls back to
// slog.Default().
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{logger: logger.With("component", "service-manager")}
}

// Add registers a component. Registration order is start order.
func (m *Manager) Add(c component.Component) {
	if c == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, c)
}

// StartAll starts every registered component in order. If a component fails
// to start, the ones already running are stopped in reverse order before the
// error is returned.
func (m *Manager) StartAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.components {
		meta := c.Meta()
		m.logger.Info("Starting component", "name", meta.Name, "type", meta.Type)
		if err := c.Start(ctx); err != nil {
			m.logger.Error("Component failed to start", "name", meta.Name, "error", err)
			m.stopStartedLocked(10 * time.Second)
			return errors.Wrap(err, "service-manager", "StartAll",
				"check configuration for component "+meta.Name)
		}
		m.started = append(m.started, c)
	}
	return nil
}

// StopAll stops started components in reverse order, giving each the full
// timeout. All stop errors are logged; the first one is returned.
func (m *Manager) StopAll(timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopStartedLocked(timeout)
}

func (m *Manager) stopStartedLocked(timeout time.Duration) error {
	var firstErr error
	for i := len(m.started) - 1; i >= 0; i-- {
		c := m.started[i]
		meta := c.Meta()
		m.logger.Info("Stopping component", "name", meta.Name)
		if err := c.Stop(timeout); err != nil {
			m.logger.Error("Component failed to stop", "name", meta.Name, "error", err)
			if firstErr == nil {
				firstErr = errors.Wrap(err, "service-manager", "StopAll",
					"component "+meta.Name+" did not shut down cleanly")
			}
		}
	}
	m.started = nil
	return firstErr
}

// Health reports the health of every registered component keyed by name.
func (m *Manager) Health() map[string]component.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]component.HealthStatus, len(m.components))
	for _, c := range m.components {
		out[c.Meta().Name] = c.Health()
	}
	return out
}

// Components returns metadata for every registered component.
func (m *Manager) Components() []component.Metadata {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]component.Metadata, 0, len(m.components))
	for _, c := range m.components {
		out = append(out, c.Meta())
	}
	return out
}
