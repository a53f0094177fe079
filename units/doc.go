// Package units implements a dimension-checked quantity algebra: dimension
// vectors, immutable quantities, unit composition and conversion with affine
// offsets, the "<value> <unit>" string parser, and a runtime-checked
// validator for dynamic call sites.
//
// # Dimension Model
//
// A physical dimension is a Dim: an ordered vector of eight bounded integer
// exponents over the base quantities length, mass, time, current,
// temperature, amount, luminous intensity, and digital data size. Equality
// is element-wise; multiplication composes by element-wise addition and
// division by element-wise subtraction. Exponents are bounded to
// [-MaxExp, +MaxExp] and compositions that would leave the range fail with
// ErrDimensionOverflow — never silent saturation, which would conflate
// genuinely distinct dimensions.
//
// # Quantities and Units
//
// A Quantity is an immutable value record with four public fields: the
// numeric Value in its own unit, the Scale multiplier to the base
// representation, the Label used for identity and display, and the additive
// Offset that is non-zero only for affine units such as degC and degF. The
// base-representation equivalent is always Value*Scale + Offset.
//
// Unit definitions live in a Registry: an ordered, immutable label-to-unit
// catalog with O(1) lookup and registry-wide unique labels. The registry is
// built once (see the catalog subpackage for the standard one) and shared by
// reference into the parser and checked validators; there is no per-call
// rebuilding and no mutable global state.
//
// # Operations
//
//	sum, err := units.Add(a, b)          // same dimension AND same label
//	area, err := units.Mul(w, h)         // dims add, labels join with "*"
//	speed, err := units.Div(dist, dur)   // dims subtract, labels join with "/"
//	f, err := units.To(catalog.Fahrenheit, c)
//
// Add and Sub require identical dimensions and labels; mixing m with s fails
// with ErrDimensionMismatch and mixing m with km fails with ErrUnitMismatch
// until the caller converts. Mul and Div compose any two dimensions but
// reject affine operands with ErrAffineOperand: multiplying Celsius readings
// is physically undefined, so convert to K first. Conversion uses the single
// affine formula (value*scale + offset - target.Offset) / target.Scale.
//
// Float semantics are IEEE-754 throughout: NaN propagates, x/0 is signed
// infinity, 0/0 and Inf-Inf are NaN.
//
// # Checked Validation
//
// Go cannot encode dimension exponents in the type system the way languages
// with const-generic integer arithmetic can, so there is no compile-time
// enforcement tier: the checked validator is the enforcement mechanism.
// NewChecked builds an independent Validator whose add/sub/to re-derive
// operand dimensions from an immutable label lookup table built once from
// the registry, so even hand-constructed quantities are validated against
// the catalog before any arithmetic runs.
//
// # Concurrency
//
// Everything here is purely synchronous: quantities are immutable values,
// and registries and validators are read-only after construction, so all of
// it may be shared freely across goroutines without locking.
package units
