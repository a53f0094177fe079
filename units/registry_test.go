package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/unitstream/errors"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(meter, kilometer, second)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	u, ok := r.Lookup("km")
	require.True(t, ok)
	assert.Equal(t, 1000.0, u.Scale)

	_, ok = r.Lookup("mi")
	assert.False(t, ok)
}

func TestNewRegistry_DuplicateLabel(t *testing.T) {
	// Labels must be unique across the entire registry, even across
	// different dimensions.
	clash := Unit{Label: "m", Scale: 1, Dim: testDuration}

	_, err := NewRegistry(meter, clash)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateUnit)
}

func TestNewRegistry_InvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
	}{
		{"empty label", Unit{Label: "", Scale: 1}},
		{"zero scale", Unit{Label: "x", Scale: 0}},
		{"nan scale", Unit{Label: "x", Scale: math.NaN()}},
		{"inf scale", Unit{Label: "x", Scale: math.Inf(1)}},
		{"nan offset", Unit{Label: "x", Scale: 1, Offset: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.unit)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidData)
		})
	}
}

func TestRegistry_Unit(t *testing.T) {
	r := testRegistry(t)

	u, err := r.Unit("degC")
	require.NoError(t, err)
	assert.Equal(t, 273.15, u.Offset)

	_, err = r.Unit("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownUnit)
}

func TestRegistry_Lookup_CaseSensitive(t *testing.T) {
	r := testRegistry(t)

	_, ok := r.Lookup("M")
	assert.False(t, ok, "lookup must be exact and case-sensitive")
}

func TestRegistry_UnitsOrderedCopy(t *testing.T) {
	r := testRegistry(t)

	got := r.Units()
	require.Len(t, got, r.Len())
	assert.Equal(t, "m", got[0].Label)
	assert.Equal(t, "km", got[1].Label)

	// Mutating the copy must not affect the registry.
	got[0].Label = "tampered"
	u, ok := r.Lookup("m")
	require.True(t, ok)
	assert.Equal(t, "m", u.Label)
}

func TestMustRegistry_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustRegistry(meter, meter)
	})
}
