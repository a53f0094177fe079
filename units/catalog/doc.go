// Package catalog holds the standard unit catalog consumed by the units
// package: a flat table of label, scale, offset, and dimension for SI base
// and derived units, common imperial and conventional units, the affine
// temperature scales, and digital data sizes on the data axis.
//
// The catalog is pure data. It is loaded into a single immutable registry at
// package initialization; Default returns that shared registry, and the
// exported Unit values (Meter, Second, Celsius, ...) serve static call
// sites:
//
//	q := catalog.Meter.Of(5)
//	f, err := units.To(catalog.Fahrenheit, catalog.Celsius.Of(100))
//	parsed, err := catalog.Default().Parse("12.5 ft")
package catalog
