package units

import (
	"fmt"

	"github.com/c360/unitstream/errors"
)

// Validator is the runtime-checked mirror of the unit algebra, for dynamic
// call sites that work with unit labels instead of static Unit values. Go
// has no type-level integer arithmetic rich enough to tag dimensions at
// compile time, so this checked surface is the enforcement mechanism: every
// operation validates its operands against a registry-derived lookup table
// before delegating to the arithmetic and conversion functions.
type Validator interface {
	// Unit resolves a label to its registered unit definition.
	Unit(label string) (Unit, error)
	// Of stamps a numeric value with the unit registered under label.
	Of(label string, value float64) (Quantity, error)
	// FromString coerces a numeric string and stamps it with the unit
	// registered under label.
	FromString(label, value string) (Quantity, error)
	// Parse tokenizes "<value> <unit>" text into a Quantity.
	Parse(text string) (Quantity, error)

	// Add and Sub compare operand dimensions and labels against the lookup
	// table before delegating.
	Add(a, b Quantity) (Quantity, error)
	Sub(a, b Quantity) (Quantity, error)
	// Mul and Div pass straight through; the affine-operand check is
	// dimension-agnostic and performed by the arithmetic engine itself.
	Mul(a, b Quantity) (Quantity, error)
	Div(a, b Quantity) (Quantity, error)
	// To compares dimensions only: converting between different labels of
	// one dimension is the entire point.
	To(targetLabel string, q Quantity) (Quantity, error)
}

// Checked implements Validator against an immutable label-to-dimension table
// built once from a Registry at construction. Each NewChecked call produces
// an independent instance with its own table; there is no shared mutable
// global state, and a Checked is safe for concurrent use.
type Checked struct {
	registry *Registry
	dims     map[string]Dim
}

// NewChecked builds a checked validator over the given registry.
func NewChecked(r *Registry) *Checked {
	dims := make(map[string]Dim, r.Len())
	for _, u := range r.units {
		dims[u.Label] = u.Dim
	}
	return &Checked{
		registry: r,
		dims:     dims,
	}
}

// Unit resolves a label to its registered unit definition.
func (c *Checked) Unit(label string) (Unit, error) {
	return c.registry.Unit(label)
}

// Of stamps a numeric value with the unit registered under label.
func (c *Checked) Of(label string, value float64) (Quantity, error) {
	u, err := c.registry.Unit(label)
	if err != nil {
		return Quantity{}, err
	}
	return u.Of(value), nil
}

// FromString coerces a numeric string and stamps it with the unit registered
// under label.
func (c *Checked) FromString(label, value string) (Quantity, error) {
	u, err := c.registry.Unit(label)
	if err != nil {
		return Quantity{}, err
	}
	return u.FromString(value)
}

// Parse tokenizes "<value> <unit>" text via the underlying registry.
func (c *Checked) Parse(text string) (Quantity, error) {
	return c.registry.Parse(text)
}

// Add validates operand dimensions and labels against the lookup table, then
// delegates to Add.
func (c *Checked) Add(a, b Quantity) (Quantity, error) {
	if err := c.checkSameUnit("Add", a, b); err != nil {
		return Quantity{}, err
	}
	return Add(a, b)
}

// Sub validates operand dimensions and labels against the lookup table, then
// delegates to Sub.
func (c *Checked) Sub(a, b Quantity) (Quantity, error) {
	if err := c.checkSameUnit("Sub", a, b); err != nil {
		return Quantity{}, err
	}
	return Sub(a, b)
}

// Mul delegates to Mul; the offset validation there is dimension-agnostic.
func (c *Checked) Mul(a, b Quantity) (Quantity, error) {
	return Mul(a, b)
}

// Div delegates to Div; the offset validation there is dimension-agnostic.
func (c *Checked) Div(a, b Quantity) (Quantity, error) {
	return Div(a, b)
}

// To resolves the target label, validates that the source and target share a
// dimension, then delegates to To.
func (c *Checked) To(targetLabel string, q Quantity) (Quantity, error) {
	target, err := c.registry.Unit(targetLabel)
	if err != nil {
		return Quantity{}, err
	}

	srcDim, err := c.dim(q.Label)
	if err != nil {
		return Quantity{}, err
	}
	if !target.Dim.Equal(srcDim) {
		return Quantity{}, fmt.Errorf("units: checked convert %q (%s) to %q (%s): %w",
			q.Label, srcDim, target.Label, target.Dim, errors.ErrDimensionMismatch)
	}

	return To(target, q)
}

// checkSameUnit mirrors the add/sub operand contract using registered
// dimensions: dimension comparison first, then label comparison.
func (c *Checked) checkSameUnit(op string, a, b Quantity) error {
	da, err := c.dim(a.Label)
	if err != nil {
		return err
	}
	db, err := c.dim(b.Label)
	if err != nil {
		return err
	}

	if !da.Equal(db) {
		return fmt.Errorf("units: checked %s %q (%s) and %q (%s): %w",
			op, a.Label, da, b.Label, db, errors.ErrDimensionMismatch)
	}
	if a.Label != b.Label {
		return fmt.Errorf("units: checked %s %q and %q: convert before combining: %w",
			op, a.Label, b.Label, errors.ErrUnitMismatch)
	}
	return nil
}

// dim looks up a label's registered dimension in the immutable table.
func (c *Checked) dim(label string) (Dim, error) {
	d, ok := c.dims[label]
	if !ok {
		return Dim{}, fmt.Errorf("units: label %q: %w", label, errors.ErrUnknownUnit)
	}
	return d, nil
}
