package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/unitstream/errors"
)

func TestAdd(t *testing.T) {
	sum, err := Add(meter.Of(3), meter.Of(4))
	require.NoError(t, err)

	assert.Equal(t, 7.0, sum.Value)
	assert.Equal(t, "m", sum.Label)
	assert.Equal(t, 1.0, sum.Scale)
	assert.Equal(t, 0.0, sum.Offset)
	assert.Equal(t, testLength, sum.Dim())
}

func TestAdd_CarriesLeftOperandUnit(t *testing.T) {
	sum, err := Add(celsius.Of(20), celsius.Of(5))
	require.NoError(t, err)

	assert.Equal(t, 25.0, sum.Value)
	assert.Equal(t, "degC", sum.Label)
	assert.Equal(t, 273.15, sum.Offset)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	_, err := Add(meter.Of(1), second.Of(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDimensionMismatch)
}

func TestAdd_UnitMismatch(t *testing.T) {
	// Same dimension, different label: caller must convert first.
	_, err := Add(meter.Of(1), kilometer.Of(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnitMismatch)
}

func TestSub(t *testing.T) {
	diff, err := Sub(meter.Of(10), meter.Of(4))
	require.NoError(t, err)
	assert.Equal(t, 6.0, diff.Value)

	_, err = Sub(meter.Of(1), second.Of(1))
	assert.ErrorIs(t, err, errors.ErrDimensionMismatch)

	_, err = Sub(meter.Of(1), kilometer.Of(1))
	assert.ErrorIs(t, err, errors.ErrUnitMismatch)
}

func TestMul(t *testing.T) {
	area, err := Mul(meter.Of(3), meter.Of(4))
	require.NoError(t, err)

	assert.Equal(t, 12.0, area.Value)
	assert.Equal(t, "m*m", area.Label)
	assert.Equal(t, 1.0, area.Scale)
	assert.Equal(t, 0.0, area.Offset)
	assert.Equal(t, MustDim(2, 0, 0, 0, 0, 0, 0, 0), area.Dim())
}

func TestMul_AcrossDimensions(t *testing.T) {
	work, err := Mul(kilometer.Of(2), second.Of(3))
	require.NoError(t, err)

	assert.Equal(t, 6.0, work.Value)
	assert.Equal(t, "km*s", work.Label)
	assert.Equal(t, 1000.0, work.Scale)
	assert.Equal(t, MustDim(1, 0, 1, 0, 0, 0, 0, 0), work.Dim())
}

func TestDiv(t *testing.T) {
	speed, err := Div(meter.Of(100), second.Of(10))
	require.NoError(t, err)

	assert.Equal(t, 10.0, speed.Value)
	assert.Equal(t, "m/s", speed.Label)
	assert.Equal(t, 1.0, speed.Scale)
	assert.Equal(t, 0.0, speed.Offset)
	assert.Equal(t, MustDim(1, 0, -1, 0, 0, 0, 0, 0), speed.Dim())
}

func TestMulDiv_AffineOperandRejected(t *testing.T) {
	_, err := Mul(celsius.Of(20), meter.Of(2))
	assert.ErrorIs(t, err, errors.ErrAffineOperand)

	_, err = Mul(meter.Of(2), fahrenheit.Of(70))
	assert.ErrorIs(t, err, errors.ErrAffineOperand)

	_, err = Div(celsius.Of(20), second.Of(2))
	assert.ErrorIs(t, err, errors.ErrAffineOperand)

	_, err = Div(second.Of(2), celsius.Of(20))
	assert.ErrorIs(t, err, errors.ErrAffineOperand)

	// Kelvin has no offset, so it composes fine.
	_, err = Mul(kelvin.Of(300), meter.Of(2))
	assert.NoError(t, err)
}

func TestMulDiv_DimensionOverflow(t *testing.T) {
	l5 := Unit{Label: "m5", Scale: 1, Dim: MustDim(5, 0, 0, 0, 0, 0, 0, 0)}

	_, err := Mul(l5.Of(1), l5.Of(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDimensionOverflow)

	lNeg5 := Unit{Label: "m-5", Scale: 1, Dim: MustDim(-5, 0, 0, 0, 0, 0, 0, 0)}
	_, err = Div(l5.Of(1), lNeg5.Of(1))
	assert.ErrorIs(t, err, errors.ErrDimensionOverflow)
}

func TestArithmetic_FloatSemantics(t *testing.T) {
	inf := math.Inf(1)

	// Division by zero yields signed infinity.
	q, err := Div(meter.Of(1), second.Of(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.Value, 1))

	q, err = Div(meter.Of(-1), second.Of(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.Value, -1))

	// 0/0 yields NaN.
	q, err = Div(meter.Of(0), second.Of(0))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(q.Value))

	// NaN operands propagate.
	q, err = Add(meter.Of(math.NaN()), meter.Of(1))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(q.Value))

	// Infinity - Infinity yields NaN.
	q, err = Sub(meter.Of(inf), meter.Of(inf))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(q.Value))
}

func TestArithmetic_DoesNotMutateOperands(t *testing.T) {
	a := meter.Of(3)
	b := meter.Of(4)

	_, err := Add(a, b)
	require.NoError(t, err)
	_, err = Mul(a, b)
	require.NoError(t, err)

	assert.Equal(t, 3.0, a.Value)
	assert.Equal(t, 4.0, b.Value)
	assert.Equal(t, "m", a.Label)
}
