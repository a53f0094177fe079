package units

import "strconv"

// formatOptions holds resolved formatting settings.
type formatOptions struct {
	precision    int
	hasPrecision bool
}

// FormatOption is a functional option for configuring quantity formatting.
type FormatOption func(*formatOptions)

// WithPrecision formats the value with a fixed number of decimal digits
// instead of the default shortest round-trip representation.
func WithPrecision(digits int) FormatOption {
	return func(o *formatOptions) {
		o.precision = digits
		o.hasPrecision = true
	}
}

// Format renders a quantity as "<value> <label>". Without options the value
// uses the shortest representation that round-trips through float64; with
// WithPrecision it uses fixed-decimal formatting.
func Format(q Quantity, opts ...FormatOption) string {
	var o formatOptions
	for _, opt := range opts {
		opt(&o)
	}

	var value string
	if o.hasPrecision {
		value = strconv.FormatFloat(q.Value, 'f', o.precision, 64)
	} else {
		value = strconv.FormatFloat(q.Value, 'g', -1, 64)
	}

	return value + " " + q.Label
}
