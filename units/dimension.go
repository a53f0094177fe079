package units

import (
	"fmt"
	"strings"

	"github.com/c360/unitstream/errors"
)

// NumAxes is the number of base quantities in a dimension vector.
const NumAxes = 8

// Axis identifies one base quantity in a dimension vector.
type Axis int

// Base quantity axes, in vector order. Data extends the SI base set with a
// digital-data-size axis so byte-like units compose with time (data rates).
const (
	Length Axis = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminous
	Data
)

// axisSymbols are the display symbols for each axis, in vector order.
var axisSymbols = [NumAxes]string{"L", "M", "T", "I", "Th", "N", "J", "D"}

// MaxExp bounds each exponent to [-MaxExp, +MaxExp]. Compositions that would
// leave this range fail with ErrDimensionOverflow rather than saturating:
// clamping would conflate genuinely distinct dimensions.
const MaxExp = 8

// Dim is a dimension vector: one bounded integer exponent per base quantity.
// The zero value is the dimensionless vector. Dim is a comparable value type;
// two quantities share a physical dimension exactly when their vectors are
// equal element-wise.
type Dim [NumAxes]int8

// NewDim builds a dimension vector from per-axis exponents.
// It returns ErrDimensionOverflow if any exponent is outside [-MaxExp, +MaxExp].
func NewDim(length, mass, time, current, temperature, amount, luminous, data int) (Dim, error) {
	exps := [NumAxes]int{length, mass, time, current, temperature, amount, luminous, data}

	var d Dim
	for i, e := range exps {
		if e < -MaxExp || e > MaxExp {
			return Dim{}, fmt.Errorf("units: exponent %d for axis %s outside [-%d, %d]: %w",
				e, axisSymbols[i], MaxExp, MaxExp, errors.ErrDimensionOverflow)
		}
		d[i] = int8(e)
	}
	return d, nil
}

// MustDim is NewDim but panics on an out-of-range exponent. Intended for
// static catalog construction where the exponents are literals.
func MustDim(length, mass, time, current, temperature, amount, luminous, data int) Dim {
	d, err := NewDim(length, mass, time, current, temperature, amount, luminous, data)
	if err != nil {
		panic(err)
	}
	return d
}

// Equal reports whether two dimension vectors are equal element-wise.
func (d Dim) Equal(o Dim) bool {
	return d == o
}

// IsZero reports whether the vector is dimensionless.
func (d Dim) IsZero() bool {
	return d == Dim{}
}

// Exp returns the exponent for a single axis.
func (d Dim) Exp(a Axis) int {
	return int(d[a])
}

// Mul composes two dimensions by element-wise exponent addition, the
// dimension of a product of quantities. Fails with ErrDimensionOverflow if
// any composed exponent leaves [-MaxExp, +MaxExp].
func (d Dim) Mul(o Dim) (Dim, error) {
	var out Dim
	for i := range d {
		sum := int(d[i]) + int(o[i])
		if sum < -MaxExp || sum > MaxExp {
			return Dim{}, fmt.Errorf("units: compose %s with %s: axis %s exponent %d outside [-%d, %d]: %w",
				d, o, axisSymbols[i], sum, MaxExp, MaxExp, errors.ErrDimensionOverflow)
		}
		out[i] = int8(sum)
	}
	return out, nil
}

// Div composes two dimensions by element-wise exponent subtraction, the
// dimension of a quotient of quantities. Fails with ErrDimensionOverflow if
// any composed exponent leaves [-MaxExp, +MaxExp].
func (d Dim) Div(o Dim) (Dim, error) {
	var out Dim
	for i := range d {
		diff := int(d[i]) - int(o[i])
		if diff < -MaxExp || diff > MaxExp {
			return Dim{}, fmt.Errorf("units: compose %s with %s: axis %s exponent %d outside [-%d, %d]: %w",
				d, o, axisSymbols[i], diff, MaxExp, MaxExp, errors.ErrDimensionOverflow)
		}
		out[i] = int8(diff)
	}
	return out, nil
}

// String renders the vector as space-separated "symbol^exponent" terms for
// the non-zero axes, e.g. "L^1 T^-2". The dimensionless vector renders as "1".
func (d Dim) String() string {
	var b strings.Builder
	for i, e := range d {
		if e == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s^%d", axisSymbols[i], e)
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}
