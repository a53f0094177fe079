package units

import (
	"fmt"

	"github.com/c360/unitstream/errors"
)

// Add returns a + b. Both operands must share an identical dimension AND an
// identical label; a dimension mismatch fails with ErrDimensionMismatch and a
// label mismatch (same dimension, e.g. m vs km) fails with ErrUnitMismatch —
// the caller converts explicitly first. The result carries a's scale, label,
// and offset.
//
// Float semantics are IEEE-754: NaN operands propagate and Inf + (-Inf) is NaN.
func Add(a, b Quantity) (Quantity, error) {
	if err := checkSameUnit("Add", a, b); err != nil {
		return Quantity{}, err
	}

	out := a
	out.Value = a.Value + b.Value
	return out, nil
}

// Sub returns a - b under the same operand rules as Add.
func Sub(a, b Quantity) (Quantity, error) {
	if err := checkSameUnit("Sub", a, b); err != nil {
		return Quantity{}, err
	}

	out := a
	out.Value = a.Value - b.Value
	return out, nil
}

// Mul returns a * b. Multiplication is defined across any two dimensions:
// the result dimension is the element-wise sum of the operand dimensions,
// the label is "<a>*<b>", the scale is the product of the operand scales,
// and the offset is always zero. Either operand carrying a non-zero offset
// fails with ErrAffineOperand — multiplying degC or degF quantities is
// physically undefined; convert to a zero-offset unit such as K first.
func Mul(a, b Quantity) (Quantity, error) {
	if err := checkLinear("Mul", a, b); err != nil {
		return Quantity{}, err
	}

	dim, err := a.dim.Mul(b.dim)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{
		Value:  a.Value * b.Value,
		Scale:  a.Scale * b.Scale,
		Label:  a.Label + "*" + b.Label,
		Offset: 0,
		dim:    dim,
	}, nil
}

// Div returns a / b. The result dimension is the element-wise difference of
// the operand dimensions, the label is "<a>/<b>", the scale is the quotient
// of the operand scales, and the offset is always zero. Affine operands fail
// with ErrAffineOperand.
//
// Value division follows IEEE-754: x/0 yields signed infinity and 0/0 yields
// NaN; neither is an error.
func Div(a, b Quantity) (Quantity, error) {
	if err := checkLinear("Div", a, b); err != nil {
		return Quantity{}, err
	}

	dim, err := a.dim.Div(b.dim)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{
		Value:  a.Value / b.Value,
		Scale:  a.Scale / b.Scale,
		Label:  a.Label + "/" + b.Label,
		Offset: 0,
		dim:    dim,
	}, nil
}

// checkSameUnit enforces the add/sub operand contract: identical dimension,
// then identical label.
func checkSameUnit(op string, a, b Quantity) error {
	if !a.dim.Equal(b.dim) {
		return fmt.Errorf("units: %s %q (%s) and %q (%s): %w",
			op, a.Label, a.dim, b.Label, b.dim, errors.ErrDimensionMismatch)
	}
	if a.Label != b.Label {
		return fmt.Errorf("units: %s %q and %q: convert before combining: %w",
			op, a.Label, b.Label, errors.ErrUnitMismatch)
	}
	return nil
}

// checkLinear enforces the mul/div operand contract: zero offsets only.
func checkLinear(op string, a, b Quantity) error {
	if a.Offset != 0 {
		return fmt.Errorf("units: %s on affine unit %q (offset %v): %w",
			op, a.Label, a.Offset, errors.ErrAffineOperand)
	}
	if b.Offset != 0 {
		return fmt.Errorf("units: %s on affine unit %q (offset %v): %w",
			op, b.Label, b.Offset, errors.ErrAffineOperand)
	}
	return nil
}
