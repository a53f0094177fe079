package units

import (
	"fmt"

	"github.com/c360/unitstream/errors"
)

// To converts q into the target unit. The target and source must have
// identical dimension vectors; a mismatch fails with ErrDimensionMismatch.
//
// One formula unifies linear and affine units:
//
//	result = (q.Value*q.Scale + q.Offset - target.Offset) / target.Scale
//
// The result carries the target's scale, label, and offset. Self-conversion
// is an identity transform modulo floating-point rounding; round-trip
// conversion through another unit is idempotent only within a floating-point
// tolerance, never guaranteed bit-exact.
func To(target Unit, q Quantity) (Quantity, error) {
	if !target.Dim.Equal(q.dim) {
		return Quantity{}, fmt.Errorf("units: convert %q (%s) to %q (%s): %w",
			q.Label, q.dim, target.Label, target.Dim, errors.ErrDimensionMismatch)
	}

	return Quantity{
		Value:  (q.Value*q.Scale + q.Offset - target.Offset) / target.Scale,
		Scale:  target.Scale,
		Label:  target.Label,
		Offset: target.Offset,
		dim:    target.Dim,
	}, nil
}
