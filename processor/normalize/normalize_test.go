package normalize

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/unitstream/component"
	"github.com/c360/unitstream/errors"
	"github.com/c360/unitstream/metric"
)

func newTestProcessor(t *testing.T, cfg Config) *Processor {
	t.Helper()

	p, err := NewProcessor(cfg, nil, component.Dependencies{})
	require.NoError(t, err)
	return p
}

func TestNewProcessor_Defaults(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())

	assert.Equal(t, "normalizer", p.Meta().Name)
	assert.Equal(t, "processor", p.Meta().Type)
	assert.Len(t, p.targets, 4)
}

func TestNewProcessor_ConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "no input subjects",
			cfg: Config{
				OutputSubject: "out",
				Targets:       []string{"m"},
			},
		},
		{
			name: "no output subject",
			cfg: Config{
				InputSubjects: []string{"in"},
				Targets:       []string{"m"},
			},
		},
		{
			name: "no targets",
			cfg: Config{
				InputSubjects: []string{"in"},
				OutputSubject: "out",
			},
		},
		{
			name: "unknown target unit",
			cfg: Config{
				InputSubjects: []string{"in"},
				OutputSubject: "out",
				Targets:       []string{"cubits"},
			},
		},
		{
			name: "two targets for one dimension",
			cfg: Config{
				InputSubjects: []string{"in"},
				OutputSubject: "out",
				Targets:       []string{"m", "km"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProcessor(tt.cfg, nil, component.Dependencies{})
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestNormalizeMeasurement_QuantityString(t *testing.T) {
	p := newTestProcessor(t, Config{
		InputSubjects: []string{"in"},
		OutputSubject: "out",
		Targets:       []string{"m"},
	})

	n, err := p.normalizeMeasurement(Measurement{
		ID:       "msg-1",
		Quantity: "1.5 km",
		Source:   "sensor-7",
	})
	require.NoError(t, err)

	assert.Equal(t, "msg-1", n.ID)
	assert.InDelta(t, 1500.0, n.Value, 1e-9)
	assert.Equal(t, "m", n.Unit)
	assert.Equal(t, "L^1", n.Dimension)
	assert.Equal(t, 1.5, n.OriginalValue)
	assert.Equal(t, "km", n.OriginalUnit)
	assert.Equal(t, "sensor-7", n.Source)
	assert.False(t, n.NormalizedAt.IsZero())
}

func TestNormalizeMeasurement_SeparateValueAndUnit(t *testing.T) {
	p := newTestProcessor(t, Config{
		InputSubjects: []string{"in"},
		OutputSubject: "out",
		Targets:       []string{"K"},
	})

	val := 100.0
	n, err := p.normalizeMeasurement(Measurement{
		Value: &val,
		Unit:  "degC",
	})
	require.NoError(t, err)

	assert.InDelta(t, 373.15, n.Value, 1e-9)
	assert.Equal(t, "K", n.Unit)
	assert.Equal(t, "degC", n.OriginalUnit)
	// A missing ID gets a generated one
	assert.NotEmpty(t, n.ID)
}

func TestNormalizeMeasurement_AlreadyCanonical(t *testing.T) {
	p := newTestProcessor(t, Config{
		InputSubjects: []string{"in"},
		OutputSubject: "out",
		Targets:       []string{"m"},
	})

	n, err := p.normalizeMeasurement(Measurement{Quantity: "42 m"})
	require.NoError(t, err)

	assert.Equal(t, 42.0, n.Value)
	assert.Equal(t, "m", n.Unit)
}

func TestNormalizeMeasurement_Errors(t *testing.T) {
	p := newTestProcessor(t, Config{
		InputSubjects: []string{"in"},
		OutputSubject: "out",
		Targets:       []string{"m"},
	})

	val := 3.0

	tests := []struct {
		name string
		m    Measurement
	}{
		{name: "empty measurement", m: Measurement{}},
		{name: "value without unit", m: Measurement{Value: &val}},
		{name: "unit without value", m: Measurement{Unit: "m"}},
		{name: "unknown unit", m: Measurement{Value: &val, Unit: "cubits"}},
		{name: "malformed quantity", m: Measurement{Quantity: "fast"}},
		{name: "no target for dimension", m: Measurement{Quantity: "3 kg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.normalizeMeasurement(tt.m)
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestClassifyError(t *testing.T) {
	p := newTestProcessor(t, Config{
		InputSubjects: []string{"in"},
		OutputSubject: "out",
		Targets:       []string{"m"},
	})

	_, unknownErr := p.normalizeMeasurement(Measurement{Quantity: "3 cubits"})
	assert.Equal(t, "unknown_unit", classifyError(unknownErr))

	_, valueErr := p.normalizeMeasurement(Measurement{Quantity: "fast m"})
	assert.Equal(t, "invalid_value", classifyError(valueErr))

	_, inputErr := p.normalizeMeasurement(Measurement{})
	assert.Equal(t, "invalid_input", classifyError(inputErr))
}

func TestStart_RequiresNATSClient(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())

	err := p.Start(t.Context())
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestStop_NotRunning(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())

	assert.NoError(t, p.Stop(time.Second))
}

func TestDispatch_TracksAndDropsAfterShutdown(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())

	p.dispatch(t.Context(), []byte("not json"))
	assert.Equal(t, int64(1), atomic.LoadInt64(&p.messagesProcessed))
	assert.Equal(t, int64(1), atomic.LoadInt64(&p.errorCount))

	close(p.shutdown)
	p.dispatch(t.Context(), []byte("not json"))
	assert.Equal(t, int64(1), atomic.LoadInt64(&p.messagesProcessed),
		"messages arriving after shutdown are dropped")

	// Every dispatch balanced its WaitGroup entry.
	p.wg.Wait()
}

func TestHealth_ReportsLastActivity(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())

	assert.True(t, p.Health().LastActivity.IsZero())

	p.dispatch(t.Context(), []byte("not json"))
	assert.False(t, p.Health().LastActivity.IsZero())
}

func TestHealth_BeforeStart(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())

	health := p.Health()
	assert.False(t, health.Healthy)
	assert.Equal(t, 0, health.ErrorCount)
}

func TestNewProcessor_WithMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	deps := component.Dependencies{MetricsRegistry: registry}

	p, err := NewProcessor(DefaultConfig(), nil, deps)
	require.NoError(t, err)
	require.NotNil(t, p.metrics)

	p.metrics.recordNormalization("normalizer", "m", time.Millisecond)
	p.metrics.recordError("normalizer", "parse")

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["unitstream_normalizer_normalizations_total"])
	assert.True(t, names["unitstream_normalizer_errors_total"])
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *normalizeMetrics

	m.recordNormalization("normalizer", "m", time.Millisecond)
	m.recordError("normalizer", "parse")
}
