package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Default(t *testing.T) {
	assert.Equal(t, "5 m", Format(meter.Of(5)))
	assert.Equal(t, "2.5 km", Format(kilometer.Of(2.5)))
	assert.Equal(t, "-40 degC", Format(celsius.Of(-40)))
	assert.Equal(t, "1e-09 m", Format(meter.Of(1e-9)))
}

func TestFormat_RoundTripsValue(t *testing.T) {
	// Default formatting must preserve full precision.
	q := meter.Of(0.1 + 0.2)
	assert.Equal(t, "0.30000000000000004 m", Format(q))
}

func TestFormat_WithPrecision(t *testing.T) {
	q := kilometer.Of(2.5678)

	assert.Equal(t, "2.57 km", Format(q, WithPrecision(2)))
	assert.Equal(t, "3 km", Format(q, WithPrecision(0)))
	assert.Equal(t, "2.5678000 km", Format(q, WithPrecision(7)))
}
