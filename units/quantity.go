package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/c360/unitstream/errors"
)

// Quantity is an immutable measured amount: a numeric value in its own unit
// plus the unit metadata needed to relate it to the base representation of
// its dimension. The four exported fields are the stable public shape; the
// base-representation equivalent of a quantity is Value*Scale + Offset.
//
// Quantities are plain value types. No operation mutates its operands; every
// operation returns a new Quantity.
type Quantity struct {
	// Value is the numeric amount expressed in the quantity's own unit.
	Value float64 `json:"value"`
	// Scale is the multiplier from this unit to the base representation.
	Scale float64 `json:"scale"`
	// Label is the unit's string identity, used for equality and display.
	Label string `json:"label"`
	// Offset is the additive base-representation shift. Zero for purely
	// multiplicative units; non-zero for affine units like degC and degF.
	Offset float64 `json:"offset"`

	dim Dim
}

// Dim returns the quantity's dimension vector.
func (q Quantity) Dim() Dim {
	return q.dim
}

// Base returns the quantity expressed in the base representation of its
// dimension: Value*Scale + Offset.
func (q Quantity) Base() float64 {
	return q.Value*q.Scale + q.Offset
}

// String renders the quantity as "<value> <label>" at full precision.
func (q Quantity) String() string {
	return Format(q)
}

// Unit is a single unit definition: the registry entry relating a label to
// its scale, offset, and dimension. Unit values are treated as immutable
// catalog data.
type Unit struct {
	Label  string  `json:"label"`
	Scale  float64 `json:"scale"`
	Offset float64 `json:"offset"`
	Dim    Dim     `json:"-"`
}

// IsAffine reports whether the unit carries a non-zero additive offset.
func (u Unit) IsAffine() bool {
	return u.Offset != 0
}

// Of stamps a numeric value with this unit's scale, offset, label, and
// dimension. A NaN value is accepted unchanged; rejecting it is the caller's
// concern.
func (u Unit) Of(value float64) Quantity {
	return Quantity{
		Value:  value,
		Scale:  u.Scale,
		Label:  u.Label,
		Offset: u.Offset,
		dim:    u.Dim,
	}
}

// FromString coerces a numeric string and stamps it with this unit.
// Coercion trims surrounding whitespace, accepts decimal and scientific
// notation with sign prefixes and the literals "Infinity"/"-Infinity", and
// fails with ErrInvalidValue for empty strings, thousands separators, the
// literal "NaN", and any other non-numeric text.
func (u Unit) FromString(value string) (Quantity, error) {
	v, err := coerceValue(value)
	if err != nil {
		return Quantity{}, err
	}
	return u.Of(v), nil
}

// coerceValue implements the shared numeric-string coercion used by unit
// factories and the parser.
func coerceValue(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("units: empty value string: %w", errors.ErrInvalidValue)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("units: value %q is not numeric: %w", trimmed, errors.ErrInvalidValue)
	}

	// ParseFloat accepts "NaN"; the string form is rejected even though raw
	// NaN float arguments pass through factories unchanged.
	if math.IsNaN(v) {
		return 0, fmt.Errorf("units: value %q is not numeric: %w", trimmed, errors.ErrInvalidValue)
	}

	return v, nil
}
