// Package gateway provides the HTTP and WebSocket API for UnitStream.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/c360/unitstream/component"
	"github.com/c360/unitstream/errors"
	"github.com/c360/unitstream/metric"
	"github.com/c360/unitstream/natsclient"
	"github.com/c360/unitstream/units"
	"github.com/c360/unitstream/units/catalog"
)

// Config holds gateway server configuration
type Config struct {
	Addr           string        `json:"addr"`
	ReadTimeout    time.Duration `json:"read_timeout"`
	WriteTimeout   time.Duration `json:"write_timeout"`
	RateLimitRPS   float64       `json:"rate_limit_rps"`
	RateLimitBurst int           `json:"rate_limit_burst"`
	MaxRequestSize int64         `json:"max_request_size"`
	StreamSubject  string        `json:"stream_subject"`
}

// DefaultConfig returns sensible gateway defaults
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		RateLimitRPS:   50,
		RateLimitBurst: 100,
		MaxRequestSize: 64 * 1024,
		StreamSubject:  "measurements.normalized",
	}
}

// Gateway serves the conversion API over HTTP and streams normalized
// measurements over WebSocket.
type Gateway struct {
	name       string
	config     Config
	registry   *units.Registry
	checked    *units.Checked
	natsClient *natsclient.Client
	limiter    *rate.Limiter
	logger     *slog.Logger

	server         *http.Server
	hub            *streamHub
	metricsHandler http.Handler

	// Lifecycle
	running     atomic.Bool
	startTime   time.Time
	mu          sync.RWMutex
	lifecycleMu sync.Mutex
	cancel      context.CancelFunc
	group       *errgroup.Group

	// Request counters
	requestsTotal  atomic.Uint64
	requestsFailed atomic.Uint64
	lastActivity   time.Time

	metrics *gatewayMetrics
}

// NewGateway creates the gateway. A nil registry selects the built-in
// catalog. The NATS client may be nil, which disables the WebSocket stream.
func NewGateway(cfg Config, registry *units.Registry, deps component.Dependencies) (*Gateway, error) {
	if cfg.Addr == "" {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Gateway", "NewGateway",
			"listen address required")
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Gateway", "NewGateway",
			"rate limit cannot be negative")
	}
	if cfg.MaxRequestSize <= 0 {
		cfg.MaxRequestSize = DefaultConfig().MaxRequestSize
	}

	if registry == nil {
		registry = catalog.Default()
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst == 0 {
			burst = int(cfg.RateLimitRPS)
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	metrics, err := newGatewayMetrics(deps.MetricsRegistry, "gateway")
	if err != nil {
		deps.GetLogger().Error("Failed to initialize gateway metrics", "error", err)
		metrics = nil // Continue without metrics
	}

	g := &Gateway{
		name:       "gateway",
		config:     cfg,
		registry:   registry,
		checked:    units.NewChecked(registry),
		natsClient: deps.NATSClient,
		limiter:    limiter,
		logger:     deps.GetLoggerWithComponent("gateway"),
		metrics:    metrics,
	}
	g.hub = newStreamHub(g)
	return g, nil
}

// Meta returns component metadata
func (g *Gateway) Meta() component.Metadata {
	return component.Metadata{
		Name:        g.name,
		Type:        "gateway",
		Description: fmt.Sprintf("HTTP API for unit conversion on %s", g.config.Addr),
		Version:     "0.1.0",
	}
}

// MountMetrics mounts the Prometheus handler on the gateway mux. Must be
// called before Start.
func (g *Gateway) MountMetrics(server *metric.Server) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.metricsHandler = server.Handler()
}

// Start begins serving HTTP. It returns once the listener goroutine is
// running.
func (g *Gateway) Start(ctx context.Context) error {
	g.lifecycleMu.Lock()
	defer g.lifecycleMu.Unlock()

	if g.running.Load() {
		return errors.WrapFatal(errors.ErrAlreadyStarted, "Gateway", "Start", "gateway already running")
	}

	serveCtx, cancel := context.WithCancel(context.Background())
	group, groupCtx := errgroup.WithContext(serveCtx)

	g.server = &http.Server{
		Addr:         g.config.Addr,
		Handler:      g.Handler(),
		ReadTimeout:  g.config.ReadTimeout,
		WriteTimeout: g.config.WriteTimeout,
	}

	// Forward normalized measurements to WebSocket clients
	if g.natsClient != nil && g.config.StreamSubject != "" {
		if err := g.natsClient.Subscribe(ctx, g.config.StreamSubject, g.hub.broadcast); err != nil {
			cancel()
			return errors.WrapTransient(err, "Gateway", "Start",
				fmt.Sprintf("subscribe to %s", g.config.StreamSubject))
		}
	}

	group.Go(func() error {
		if err := g.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.WrapFatal(err, "Gateway", "Start", "HTTP server failed")
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return g.server.Shutdown(shutdownCtx)
	})

	g.mu.Lock()
	g.cancel = cancel
	g.group = group
	g.startTime = time.Now()
	g.mu.Unlock()
	g.running.Store(true)

	g.logger.Info("Gateway started",
		"addr", g.config.Addr,
		"stream_subject", g.config.StreamSubject)

	return nil
}

// Stop shuts the server down gracefully
func (g *Gateway) Stop(timeout time.Duration) error {
	g.lifecycleMu.Lock()
	defer g.lifecycleMu.Unlock()

	if !g.running.Load() {
		return nil
	}

	g.mu.RLock()
	cancel := g.cancel
	group := g.group
	g.mu.RUnlock()

	cancel()
	g.hub.closeAll()

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- group.Wait()
	}()

	select {
	case err := <-waitCh:
		g.running.Store(false)
		if err != nil {
			return errors.WrapTransient(err, "Gateway", "Stop", "shutdown")
		}
		return nil
	case <-time.After(timeout):
		g.running.Store(false)
		return errors.WrapTransient(
			fmt.Errorf("shutdown timeout after %v", timeout),
			"Gateway", "Stop", "graceful shutdown")
	}
}

// Health returns gateway health including NATS connectivity when streaming
// is enabled.
func (g *Gateway) Health() component.HealthStatus {
	g.mu.RLock()
	startTime := g.startTime
	lastActivity := g.lastActivity
	g.mu.RUnlock()

	running := g.running.Load()
	healthy := running

	if running && g.natsClient != nil && g.config.StreamSubject != "" {
		healthy = g.natsClient.IsHealthy()
	}

	return component.HealthStatus{
		Healthy:      healthy,
		LastCheck:    time.Now(),
		LastActivity: lastActivity,
		ErrorCount:   int(g.requestsFailed.Load()),
		Uptime:       time.Since(startTime),
	}
}
