package units

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/unitstream/errors"
)

func TestNewDim(t *testing.T) {
	d, err := NewDim(1, 0, -1, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Exp(Length))
	assert.Equal(t, -1, d.Exp(Time))
	assert.Equal(t, 0, d.Exp(Mass))
}

func TestNewDim_OutOfRange(t *testing.T) {
	_, err := NewDim(9, 0, 0, 0, 0, 0, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDimensionOverflow)

	_, err = NewDim(0, 0, 0, 0, 0, 0, 0, -9)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDimensionOverflow)
}

func TestMustDim_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustDim(0, 0, 9, 0, 0, 0, 0, 0)
	})
}

func TestDim_Equal(t *testing.T) {
	a := MustDim(1, 0, -2, 0, 0, 0, 0, 0)
	b := MustDim(1, 0, -2, 0, 0, 0, 0, 0)
	c := MustDim(1, 0, -1, 0, 0, 0, 0, 0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	// Element-wise equality means Dim works with go-cmp directly.
	assert.Empty(t, cmp.Diff(a, b))
}

func TestDim_IsZero(t *testing.T) {
	assert.True(t, Dim{}.IsZero())
	assert.False(t, MustDim(1, 0, 0, 0, 0, 0, 0, 0).IsZero())
}

func TestDim_Mul(t *testing.T) {
	length := MustDim(1, 0, 0, 0, 0, 0, 0, 0)
	duration := MustDim(0, 0, 1, 0, 0, 0, 0, 0)

	area, err := length.Mul(length)
	require.NoError(t, err)
	assert.Equal(t, MustDim(2, 0, 0, 0, 0, 0, 0, 0), area)

	mixed, err := length.Mul(duration)
	require.NoError(t, err)
	assert.Equal(t, MustDim(1, 0, 1, 0, 0, 0, 0, 0), mixed)
}

func TestDim_Div(t *testing.T) {
	length := MustDim(1, 0, 0, 0, 0, 0, 0, 0)
	duration := MustDim(0, 0, 1, 0, 0, 0, 0, 0)

	velocity, err := length.Div(duration)
	require.NoError(t, err)
	assert.Equal(t, MustDim(1, 0, -1, 0, 0, 0, 0, 0), velocity)

	ratio, err := length.Div(length)
	require.NoError(t, err)
	assert.True(t, ratio.IsZero())
}

func TestDim_ComposeOverflow(t *testing.T) {
	five := MustDim(5, 0, 0, 0, 0, 0, 0, 0)
	negFive := MustDim(-5, 0, 0, 0, 0, 0, 0, 0)

	// length^5 * length^5 would need exponent 10.
	_, err := five.Mul(five)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDimensionOverflow)

	// length^5 / length^-5 likewise.
	_, err = five.Div(negFive)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDimensionOverflow)

	// The bound itself is fine.
	three := MustDim(3, 0, 0, 0, 0, 0, 0, 0)
	d, err := five.Mul(three)
	require.NoError(t, err)
	assert.Equal(t, MaxExp, d.Exp(Length))
}

func TestDim_String(t *testing.T) {
	assert.Equal(t, "1", Dim{}.String())
	assert.Equal(t, "L^1 T^-2", MustDim(1, 0, -2, 0, 0, 0, 0, 0).String())
	assert.Equal(t, "M^1 D^3", MustDim(0, 1, 0, 0, 0, 0, 0, 3).String())
}
