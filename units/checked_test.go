package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/unitstream/errors"
)

func TestNewChecked_IndependentInstances(t *testing.T) {
	r := testRegistry(t)

	a := NewChecked(r)
	b := NewChecked(r)

	require.NotSame(t, a, b)
	// Each instance owns its lookup table, built once from the registry.
	assert.Len(t, a.dims, r.Len())
	assert.Len(t, b.dims, r.Len())
}

func TestChecked_ImplementsValidator(t *testing.T) {
	var _ Validator = NewChecked(testRegistry(t))
}

func TestChecked_Factories(t *testing.T) {
	c := NewChecked(testRegistry(t))

	q, err := c.Of("m", 5)
	require.NoError(t, err)
	assert.Equal(t, meter.Of(5), q)

	q, err = c.FromString("km", "2.5")
	require.NoError(t, err)
	assert.Equal(t, kilometer.Of(2.5), q)

	_, err = c.Of("bogus", 1)
	assert.ErrorIs(t, err, errors.ErrUnknownUnit)

	_, err = c.FromString("m", "not-a-number")
	assert.ErrorIs(t, err, errors.ErrInvalidValue)

	u, err := c.Unit("degC")
	require.NoError(t, err)
	assert.Equal(t, 273.15, u.Offset)
}

func TestChecked_Add(t *testing.T) {
	c := NewChecked(testRegistry(t))

	sum, err := c.Add(meter.Of(1), meter.Of(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum.Value)

	_, err = c.Add(meter.Of(1), second.Of(1))
	assert.ErrorIs(t, err, errors.ErrDimensionMismatch)

	_, err = c.Add(meter.Of(1), kilometer.Of(1))
	assert.ErrorIs(t, err, errors.ErrUnitMismatch)
}

func TestChecked_Sub(t *testing.T) {
	c := NewChecked(testRegistry(t))

	diff, err := c.Sub(meter.Of(5), meter.Of(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, diff.Value)

	_, err = c.Sub(kelvin.Of(1), second.Of(1))
	assert.ErrorIs(t, err, errors.ErrDimensionMismatch)
}

func TestChecked_Add_UnknownLabel(t *testing.T) {
	c := NewChecked(testRegistry(t))

	// A quantity whose label the registry has never seen cannot be
	// validated.
	rogue := Unit{Label: "cubit", Scale: 0.4572, Dim: testLength}

	_, err := c.Add(rogue.Of(1), meter.Of(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownUnit)
}

func TestChecked_To(t *testing.T) {
	c := NewChecked(testRegistry(t))

	q, err := c.To("degF", celsius.Of(100))
	require.NoError(t, err)
	assert.InDelta(t, 212, q.Value, 1e-9)

	_, err = c.To("s", meter.Of(1))
	assert.ErrorIs(t, err, errors.ErrDimensionMismatch)

	_, err = c.To("bogus", meter.Of(1))
	assert.ErrorIs(t, err, errors.ErrUnknownUnit)
}

func TestChecked_MulDiv_PassThrough(t *testing.T) {
	c := NewChecked(testRegistry(t))

	area, err := c.Mul(meter.Of(3), meter.Of(4))
	require.NoError(t, err)
	assert.Equal(t, 12.0, area.Value)
	assert.Equal(t, "m*m", area.Label)

	speed, err := c.Div(meter.Of(100), second.Of(10))
	require.NoError(t, err)
	assert.Equal(t, 10.0, speed.Value)

	// The offset validation is dimension-agnostic and still applies.
	_, err = c.Mul(celsius.Of(20), meter.Of(1))
	assert.ErrorIs(t, err, errors.ErrAffineOperand)
}

func TestChecked_Parse(t *testing.T) {
	c := NewChecked(testRegistry(t))

	q, err := c.Parse("5 m")
	require.NoError(t, err)
	assert.Equal(t, meter.Of(5), q)

	_, err = c.Parse("")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}
