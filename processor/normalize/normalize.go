// Package normalize provides a processor that converts measurement messages
// to canonical target units.
package normalize

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/c360/unitstream/component"
	"github.com/c360/unitstream/errors"
	"github.com/c360/unitstream/natsclient"
	"github.com/c360/unitstream/units"
	"github.com/c360/unitstream/units/catalog"
)

// Config holds configuration for the measurement normalizer
type Config struct {
	InputSubjects []string `json:"input_subjects"`
	OutputSubject string   `json:"output_subject"`
	Targets       []string `json:"targets"`
}

// DefaultConfig returns the default normalizer configuration
func DefaultConfig() Config {
	return Config{
		InputSubjects: []string{"measurements.raw"},
		OutputSubject: "measurements.normalized",
		Targets:       []string{"m", "kg", "s", "K"},
	}
}

// Measurement is an incoming measurement message. Either Quantity carries
// the value and unit in one string ("21.5 degC"), or Value and Unit carry
// them separately.
type Measurement struct {
	ID       string   `json:"id,omitempty"`
	Quantity string   `json:"quantity,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Source   string   `json:"source,omitempty"`
}

// Normalized is the outgoing measurement after conversion to a target unit.
type Normalized struct {
	ID            string    `json:"id"`
	Value         float64   `json:"value"`
	Unit          string    `json:"unit"`
	Dimension     string    `json:"dimension"`
	OriginalValue float64   `json:"original_value"`
	OriginalUnit  string    `json:"original_unit"`
	Source        string    `json:"source,omitempty"`
	NormalizedAt  time.Time `json:"normalized_at"`
}

// Processor converts incoming measurements to configured target units and
// republishes them.
type Processor struct {
	name       string
	subjects   []string
	outputSubj string
	registry   *units.Registry
	targets    map[units.Dim]units.Unit
	natsClient *natsclient.Client
	logger     *slog.Logger

	// Lifecycle management
	shutdown    chan struct{}
	running     bool
	startTime   time.Time
	mu          sync.RWMutex
	lifecycleMu sync.Mutex
	wg          *sync.WaitGroup

	// Atomic counters for health reporting
	messagesProcessed  int64
	messagesNormalized int64
	errorCount         int64
	lastActivity       time.Time

	// Prometheus metrics
	metrics *normalizeMetrics
}

// NewProcessor creates a new measurement normalizer. A nil registry selects
// the built-in catalog.
func NewProcessor(cfg Config, registry *units.Registry, deps component.Dependencies) (*Processor, error) {
	if len(cfg.InputSubjects) == 0 {
		return nil, errors.WrapInvalid(
			errors.ErrInvalidConfig, "Normalizer", "NewProcessor",
			"no input subjects configured")
	}
	if cfg.OutputSubject == "" {
		return nil, errors.WrapInvalid(
			errors.ErrInvalidConfig, "Normalizer", "NewProcessor",
			"no output subject configured")
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.WrapInvalid(
			errors.ErrInvalidConfig, "Normalizer", "NewProcessor",
			"no target units configured")
	}

	if registry == nil {
		registry = catalog.Default()
	}

	targets, err := buildTargets(registry, cfg.Targets)
	if err != nil {
		return nil, err
	}

	metrics, err := newNormalizeMetrics(deps.MetricsRegistry, "normalizer")
	if err != nil {
		deps.GetLogger().Error("Failed to initialize normalizer metrics", "error", err)
		metrics = nil // Continue without metrics
	}

	return &Processor{
		name:       "normalizer",
		subjects:   cfg.InputSubjects,
		outputSubj: cfg.OutputSubject,
		registry:   registry,
		targets:    targets,
		natsClient: deps.NATSClient,
		logger:     deps.GetLoggerWithComponent("normalizer"),
		shutdown:   make(chan struct{}),
		wg:         &sync.WaitGroup{},
		metrics:    metrics,
	}, nil
}

// buildTargets resolves target labels to units, keyed by dimension. Each
// dimension may have at most one target.
func buildTargets(registry *units.Registry, labels []string) (map[units.Dim]units.Unit, error) {
	targets := make(map[units.Dim]units.Unit, len(labels))
	for _, label := range labels {
		unit, err := registry.Unit(label)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Normalizer", "NewProcessor",
				fmt.Sprintf("resolve target unit %q", label))
		}
		if existing, ok := targets[unit.Dim]; ok {
			return nil, errors.WrapInvalid(
				fmt.Errorf("targets %q and %q share dimension %s", existing.Label, label, unit.Dim),
				"Normalizer", "NewProcessor", "duplicate target dimension")
		}
		targets[unit.Dim] = unit
	}
	return targets, nil
}

// Meta returns metadata describing this processor.
func (p *Processor) Meta() component.Metadata {
	return component.Metadata{
		Name:        p.name,
		Type:        "processor",
		Description: "Converts measurement messages to canonical target units",
		Version:     "0.1.0",
	}
}

// Start subscribes to the input subjects and begins normalizing.
func (p *Processor) Start(ctx context.Context) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if p.running {
		return errors.WrapFatal(errors.ErrAlreadyStarted, "Normalizer", "Start", "check running state")
	}

	if p.natsClient == nil {
		return errors.WrapFatal(errors.ErrMissingConfig, "Normalizer", "Start", "NATS client required")
	}

	for _, subject := range p.subjects {
		p.logger.Debug("Subscribing to NATS subject", "subject", subject)

		if err := p.natsClient.Subscribe(ctx, subject, p.dispatch); err != nil {
			p.logger.Error("Failed to subscribe to NATS subject",
				"subject", subject,
				"error", err)
			return errors.WrapTransient(err, "Normalizer", "Start", fmt.Sprintf("subscribe to %s", subject))
		}
	}

	p.mu.Lock()
	p.running = true
	p.startTime = time.Now()
	p.mu.Unlock()

	p.logger.Info("Normalizer started",
		"input_subjects", p.subjects,
		"output_subject", p.outputSubj,
		"targets", len(p.targets))

	return nil
}

// Stop gracefully stops the processor.
func (p *Processor) Stop(timeout time.Duration) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if !p.running {
		return nil
	}

	close(p.shutdown)

	waitCh := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(waitCh)
	}()

	select {
	case <-waitCh:
		// Clean shutdown
	case <-time.After(timeout):
		return errors.WrapTransient(
			fmt.Errorf("shutdown timeout after %v", timeout),
			"Normalizer", "Stop", "graceful shutdown")
	}

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	return nil
}

// Health returns the current health status of this processor.
func (p *Processor) Health() component.HealthStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return component.HealthStatus{
		Healthy:      p.running,
		LastCheck:    time.Now(),
		LastActivity: p.lastActivity,
		ErrorCount:   int(atomic.LoadInt64(&p.errorCount)),
		Uptime:       time.Since(p.startTime),
	}
}

// dispatch is the subscription handler. It tracks in-flight messages on the
// WaitGroup so Stop can wait them out, and drops messages once shutdown has
// begun.
func (p *Processor) dispatch(ctx context.Context, msgData []byte) {
	p.wg.Add(1)
	defer p.wg.Done()

	select {
	case <-p.shutdown:
		return
	default:
	}

	p.handleMessage(ctx, msgData)
}

// handleMessage processes one incoming measurement message.
func (p *Processor) handleMessage(ctx context.Context, msgData []byte) {
	atomic.AddInt64(&p.messagesProcessed, 1)
	p.mu.Lock()
	p.lastActivity = time.Now()
	p.mu.Unlock()

	var m Measurement
	if err := json.Unmarshal(msgData, &m); err != nil {
		atomic.AddInt64(&p.errorCount, 1)
		p.metrics.recordError(p.name, "parse")
		p.logger.Debug("Failed to parse measurement", "error", err)
		return
	}

	start := time.Now()
	normalized, err := p.normalizeMeasurement(m)
	if err != nil {
		atomic.AddInt64(&p.errorCount, 1)
		p.metrics.recordError(p.name, classifyError(err))
		p.logger.Debug("Failed to normalize measurement",
			"id", m.ID,
			"error", err)
		return
	}
	duration := time.Since(start)
	atomic.AddInt64(&p.messagesNormalized, 1)

	data, err := json.Marshal(normalized)
	if err != nil {
		atomic.AddInt64(&p.errorCount, 1)
		p.metrics.recordError(p.name, "marshal")
		p.logger.Error("Failed to marshal normalized measurement", "error", err)
		return
	}

	p.metrics.recordNormalization(p.name, normalized.Unit, duration)

	if err := p.natsClient.Publish(ctx, p.outputSubj, data); err != nil {
		atomic.AddInt64(&p.errorCount, 1)
		p.metrics.recordError(p.name, "publish")
		p.logger.Error("Failed to publish normalized measurement",
			"output_subject", p.outputSubj,
			"error", err)
		return
	}

	p.logger.Debug("Normalized measurement",
		"id", normalized.ID,
		"from", normalized.OriginalUnit,
		"to", normalized.Unit)
}

// normalizeMeasurement parses the measurement, picks the target unit for its
// dimension, and converts.
func (p *Processor) normalizeMeasurement(m Measurement) (*Normalized, error) {
	q, err := p.parseQuantity(m)
	if err != nil {
		return nil, err
	}

	target, ok := p.targets[q.Dim()]
	if !ok {
		return nil, errors.WrapInvalid(
			fmt.Errorf("no target unit for dimension %s", q.Dim()),
			"Normalizer", "normalizeMeasurement", "resolve target")
	}

	converted, err := units.To(target, q)
	if err != nil {
		return nil, err
	}

	id := m.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Normalized{
		ID:            id,
		Value:         converted.Value,
		Unit:          converted.Label,
		Dimension:     q.Dim().String(),
		OriginalValue: q.Value,
		OriginalUnit:  q.Label,
		Source:        m.Source,
		NormalizedAt:  time.Now().UTC(),
	}, nil
}

// parseQuantity accepts either the combined quantity string or the separate
// value and unit fields.
func (p *Processor) parseQuantity(m Measurement) (units.Quantity, error) {
	if m.Quantity != "" {
		return p.registry.Parse(m.Quantity)
	}

	if m.Unit == "" || m.Value == nil {
		return units.Quantity{}, errors.WrapInvalid(
			errors.ErrInvalidInput, "Normalizer", "parseQuantity",
			"measurement needs quantity or value and unit")
	}

	unit, err := p.registry.Unit(m.Unit)
	if err != nil {
		return units.Quantity{}, err
	}
	return unit.Of(*m.Value), nil
}

// classifyError maps normalization failures to metric error types.
func classifyError(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrUnknownUnit):
		return "unknown_unit"
	case stderrors.Is(err, errors.ErrInvalidValue):
		return "invalid_value"
	case stderrors.Is(err, errors.ErrInvalidInput):
		return "invalid_input"
	case stderrors.Is(err, errors.ErrDimensionMismatch):
		return "dimension_mismatch"
	default:
		return "normalize"
	}
}
