package catalog

import "github.com/c360/unitstream/units"

// dim abbreviates dimension construction for the flat tables below.
// Axis order: length, mass, time, current, temperature, amount, luminous, data.
func dim(l, m, t, i, th, n, j, d int) units.Dim {
	return units.MustDim(l, m, t, i, th, n, j, d)
}

// Dimension vectors shared by the definitions below.
var (
	dimless      = dim(0, 0, 0, 0, 0, 0, 0, 0)
	length       = dim(1, 0, 0, 0, 0, 0, 0, 0)
	mass         = dim(0, 1, 0, 0, 0, 0, 0, 0)
	duration     = dim(0, 0, 1, 0, 0, 0, 0, 0)
	current      = dim(0, 0, 0, 1, 0, 0, 0, 0)
	temperature  = dim(0, 0, 0, 0, 1, 0, 0, 0)
	amount       = dim(0, 0, 0, 0, 0, 1, 0, 0)
	luminous     = dim(0, 0, 0, 0, 0, 0, 1, 0)
	data         = dim(0, 0, 0, 0, 0, 0, 0, 1)
	area         = dim(2, 0, 0, 0, 0, 0, 0, 0)
	volume       = dim(3, 0, 0, 0, 0, 0, 0, 0)
	velocity     = dim(1, 0, -1, 0, 0, 0, 0, 0)
	acceleration = dim(1, 0, -2, 0, 0, 0, 0, 0)
	frequency    = dim(0, 0, -1, 0, 0, 0, 0, 0)
	force        = dim(1, 1, -2, 0, 0, 0, 0, 0)
	pressure     = dim(-1, 1, -2, 0, 0, 0, 0, 0)
	energy       = dim(2, 1, -2, 0, 0, 0, 0, 0)
	power        = dim(2, 1, -3, 0, 0, 0, 0, 0)
	charge       = dim(0, 0, 1, 1, 0, 0, 0, 0)
	voltage      = dim(2, 1, -3, -1, 0, 0, 0, 0)
	resistance   = dim(2, 1, -3, -2, 0, 0, 0, 0)
	capacitance  = dim(-2, -1, 4, 2, 0, 0, 0, 0)
	inductance   = dim(2, 1, -2, -2, 0, 0, 0, 0)
	magneticFlux = dim(2, 1, -2, -1, 0, 0, 0, 0)
	fluxDensity  = dim(0, 1, -2, -1, 0, 0, 0, 0)
	illuminance  = dim(-2, 0, 0, 0, 0, 0, 1, 0)
	dataRate     = dim(0, 0, -1, 0, 0, 0, 0, 1)
	flowRate     = dim(3, 0, -1, 0, 0, 0, 0, 0)
	density      = dim(-3, 1, 0, 0, 0, 0, 0, 0)
)

// Named units for static call sites. Scales are the multipliers to the base
// representation of each dimension (SI base units; bit for the data axis).
var (
	// Dimensionless
	Percent = units.Unit{Label: "%", Scale: 0.01, Dim: dimless}
	Radian  = units.Unit{Label: "rad", Scale: 1, Dim: dimless}
	Degree  = units.Unit{Label: "deg", Scale: 0.017453292519943295, Dim: dimless}

	// Length (base m)
	Meter        = units.Unit{Label: "m", Scale: 1, Dim: length}
	Kilometer    = units.Unit{Label: "km", Scale: 1000, Dim: length}
	Centimeter   = units.Unit{Label: "cm", Scale: 0.01, Dim: length}
	Millimeter   = units.Unit{Label: "mm", Scale: 1e-3, Dim: length}
	Inch         = units.Unit{Label: "in", Scale: 0.0254, Dim: length}
	Foot         = units.Unit{Label: "ft", Scale: 0.3048, Dim: length}
	Yard         = units.Unit{Label: "yd", Scale: 0.9144, Dim: length}
	Mile         = units.Unit{Label: "mi", Scale: 1609.344, Dim: length}
	NauticalMile = units.Unit{Label: "nmi", Scale: 1852, Dim: length}

	// Mass (base kg)
	Kilogram = units.Unit{Label: "kg", Scale: 1, Dim: mass}
	Gram     = units.Unit{Label: "g", Scale: 1e-3, Dim: mass}
	Tonne    = units.Unit{Label: "t", Scale: 1000, Dim: mass}
	Pound    = units.Unit{Label: "lb", Scale: 0.45359237, Dim: mass}
	Ounce    = units.Unit{Label: "oz", Scale: 0.028349523125, Dim: mass}

	// Time (base s)
	Second      = units.Unit{Label: "s", Scale: 1, Dim: duration}
	Millisecond = units.Unit{Label: "ms", Scale: 1e-3, Dim: duration}
	Minute      = units.Unit{Label: "min", Scale: 60, Dim: duration}
	Hour        = units.Unit{Label: "h", Scale: 3600, Dim: duration}
	Day         = units.Unit{Label: "d", Scale: 86400, Dim: duration}
	Week        = units.Unit{Label: "wk", Scale: 604800, Dim: duration}
	Year        = units.Unit{Label: "yr", Scale: 31557600, Dim: duration}

	// Current (base A)
	Ampere = units.Unit{Label: "A", Scale: 1, Dim: current}

	// Temperature (base K). degC and degF are the affine units: the offset
	// shifts into the Kelvin base representation.
	Kelvin     = units.Unit{Label: "K", Scale: 1, Dim: temperature}
	Celsius    = units.Unit{Label: "degC", Scale: 1, Offset: 273.15, Dim: temperature}
	Fahrenheit = units.Unit{Label: "degF", Scale: 5.0 / 9.0, Offset: 255.37222222222223, Dim: temperature}

	// Amount (base mol), luminous intensity (base cd)
	Mole    = units.Unit{Label: "mol", Scale: 1, Dim: amount}
	Candela = units.Unit{Label: "cd", Scale: 1, Dim: luminous}

	// Digital data size (base bit)
	Bit      = units.Unit{Label: "bit", Scale: 1, Dim: data}
	Byte     = units.Unit{Label: "B", Scale: 8, Dim: data}
	Kilobyte = units.Unit{Label: "kB", Scale: 8e3, Dim: data}
	Megabyte = units.Unit{Label: "MB", Scale: 8e6, Dim: data}
	Gigabyte = units.Unit{Label: "GB", Scale: 8e9, Dim: data}
	Kibibyte = units.Unit{Label: "KiB", Scale: 8192, Dim: data}
	Mebibyte = units.Unit{Label: "MiB", Scale: 8388608, Dim: data}

	// Area and volume
	SquareMeter = units.Unit{Label: "m2", Scale: 1, Dim: area}
	Hectare     = units.Unit{Label: "ha", Scale: 1e4, Dim: area}
	CubicMeter  = units.Unit{Label: "m3", Scale: 1, Dim: volume}
	Liter       = units.Unit{Label: "L", Scale: 1e-3, Dim: volume}

	// Kinematics
	MeterPerSecond        = units.Unit{Label: "m/s", Scale: 1, Dim: velocity}
	KilometerPerHour      = units.Unit{Label: "km/h", Scale: 0.2777777777777778, Dim: velocity}
	MilePerHour           = units.Unit{Label: "mph", Scale: 0.44704, Dim: velocity}
	Knot                  = units.Unit{Label: "kn", Scale: 0.5144444444444445, Dim: velocity}
	MeterPerSecondSquared = units.Unit{Label: "m/s2", Scale: 1, Dim: acceleration}
	Hertz                 = units.Unit{Label: "Hz", Scale: 1, Dim: frequency}

	// Mechanics and thermodynamics
	Newton       = units.Unit{Label: "N", Scale: 1, Dim: force}
	Pascal       = units.Unit{Label: "Pa", Scale: 1, Dim: pressure}
	Bar          = units.Unit{Label: "bar", Scale: 1e5, Dim: pressure}
	Atmosphere   = units.Unit{Label: "atm", Scale: 101325, Dim: pressure}
	PSI          = units.Unit{Label: "psi", Scale: 6894.757293168361, Dim: pressure}
	Joule        = units.Unit{Label: "J", Scale: 1, Dim: energy}
	KilowattHour = units.Unit{Label: "kWh", Scale: 3.6e6, Dim: energy}
	Calorie      = units.Unit{Label: "cal", Scale: 4.184, Dim: energy}
	Watt         = units.Unit{Label: "W", Scale: 1, Dim: power}
	Kilowatt     = units.Unit{Label: "kW", Scale: 1e3, Dim: power}
	Horsepower   = units.Unit{Label: "hp", Scale: 745.6998715822702, Dim: power}

	// Electromagnetics
	Coulomb = units.Unit{Label: "C", Scale: 1, Dim: charge}
	Volt    = units.Unit{Label: "V", Scale: 1, Dim: voltage}
	Ohm     = units.Unit{Label: "Ohm", Scale: 1, Dim: resistance}
	Farad   = units.Unit{Label: "F", Scale: 1, Dim: capacitance}
	Henry   = units.Unit{Label: "H", Scale: 1, Dim: inductance}
	Weber   = units.Unit{Label: "Wb", Scale: 1, Dim: magneticFlux}
	Tesla   = units.Unit{Label: "T", Scale: 1, Dim: fluxDensity}

	// Photometry
	Lumen = units.Unit{Label: "lm", Scale: 1, Dim: luminous}
	Lux   = units.Unit{Label: "lx", Scale: 1, Dim: illuminance}

	// Data rate (base bit/s)
	BitPerSecond = units.Unit{Label: "bit/s", Scale: 1, Dim: dataRate}
)

// defs is the complete catalog in registration order: the named units above
// plus the prefixed and conventional variants nobody needs a Go identifier
// for.
var defs = []units.Unit{
	Percent, Radian, Degree,
	{Label: "ppm", Scale: 1e-6, Dim: dimless},

	Meter, Kilometer, Centimeter, Millimeter,
	{Label: "um", Scale: 1e-6, Dim: length},
	{Label: "nm", Scale: 1e-9, Dim: length},
	Inch, Foot, Yard, Mile, NauticalMile,

	Kilogram, Gram, Tonne, Pound, Ounce,
	{Label: "mg", Scale: 1e-6, Dim: mass},
	{Label: "ug", Scale: 1e-9, Dim: mass},
	{Label: "st", Scale: 6.35029318, Dim: mass},

	Second, Millisecond, Minute, Hour, Day, Week, Year,
	{Label: "us", Scale: 1e-6, Dim: duration},
	{Label: "ns", Scale: 1e-9, Dim: duration},

	Ampere,
	{Label: "mA", Scale: 1e-3, Dim: current},
	{Label: "kA", Scale: 1e3, Dim: current},

	Kelvin, Celsius, Fahrenheit,
	{Label: "mK", Scale: 1e-3, Dim: temperature},

	Mole,
	{Label: "mmol", Scale: 1e-3, Dim: amount},

	Candela,

	Bit, Byte, Kilobyte, Megabyte, Gigabyte, Kibibyte, Mebibyte,
	{Label: "TB", Scale: 8e12, Dim: data},
	{Label: "GiB", Scale: 8589934592, Dim: data},
	{Label: "TiB", Scale: 8796093022208, Dim: data},
	{Label: "kbit", Scale: 1e3, Dim: data},
	{Label: "Mbit", Scale: 1e6, Dim: data},
	{Label: "Gbit", Scale: 1e9, Dim: data},

	SquareMeter, Hectare,
	{Label: "cm2", Scale: 1e-4, Dim: area},
	{Label: "km2", Scale: 1e6, Dim: area},
	{Label: "acre", Scale: 4046.8564224, Dim: area},
	{Label: "ft2", Scale: 0.09290304, Dim: area},

	CubicMeter, Liter,
	{Label: "mL", Scale: 1e-6, Dim: volume},
	{Label: "cm3", Scale: 1e-6, Dim: volume},
	{Label: "gal", Scale: 3.785411784e-3, Dim: volume},
	{Label: "qt", Scale: 9.46352946e-4, Dim: volume},
	{Label: "floz", Scale: 2.95735295625e-5, Dim: volume},

	MeterPerSecond, KilometerPerHour, MilePerHour, Knot,
	{Label: "ft/s", Scale: 0.3048, Dim: velocity},

	MeterPerSecondSquared,
	{Label: "gn", Scale: 9.80665, Dim: acceleration},

	Hertz,
	{Label: "kHz", Scale: 1e3, Dim: frequency},
	{Label: "MHz", Scale: 1e6, Dim: frequency},
	{Label: "GHz", Scale: 1e9, Dim: frequency},
	{Label: "rad/s", Scale: 1, Dim: frequency},

	Newton,
	{Label: "kN", Scale: 1e3, Dim: force},
	{Label: "lbf", Scale: 4.4482216152605, Dim: force},
	{Label: "dyn", Scale: 1e-5, Dim: force},

	Pascal, Bar, Atmosphere, PSI,
	{Label: "hPa", Scale: 100, Dim: pressure},
	{Label: "kPa", Scale: 1e3, Dim: pressure},
	{Label: "MPa", Scale: 1e6, Dim: pressure},
	{Label: "mbar", Scale: 100, Dim: pressure},
	{Label: "mmHg", Scale: 133.322387415, Dim: pressure},

	Joule, KilowattHour, Calorie,
	{Label: "kJ", Scale: 1e3, Dim: energy},
	{Label: "MJ", Scale: 1e6, Dim: energy},
	{Label: "Wh", Scale: 3600, Dim: energy},
	{Label: "kcal", Scale: 4184, Dim: energy},
	{Label: "BTU", Scale: 1055.05585262, Dim: energy},
	{Label: "eV", Scale: 1.602176634e-19, Dim: energy},

	Watt, Kilowatt, Horsepower,
	{Label: "mW", Scale: 1e-3, Dim: power},
	{Label: "MW", Scale: 1e6, Dim: power},
	{Label: "GW", Scale: 1e9, Dim: power},

	Coulomb,
	{Label: "Ah", Scale: 3600, Dim: charge},
	{Label: "mAh", Scale: 3.6, Dim: charge},

	Volt,
	{Label: "mV", Scale: 1e-3, Dim: voltage},
	{Label: "kV", Scale: 1e3, Dim: voltage},

	Ohm,
	{Label: "kOhm", Scale: 1e3, Dim: resistance},
	{Label: "MOhm", Scale: 1e6, Dim: resistance},

	Farad,
	{Label: "uF", Scale: 1e-6, Dim: capacitance},
	{Label: "nF", Scale: 1e-9, Dim: capacitance},
	{Label: "pF", Scale: 1e-12, Dim: capacitance},

	Henry, Weber, Tesla, Lumen, Lux,

	BitPerSecond,
	{Label: "kbit/s", Scale: 1e3, Dim: dataRate},
	{Label: "Mbit/s", Scale: 1e6, Dim: dataRate},
	{Label: "B/s", Scale: 8, Dim: dataRate},

	{Label: "m3/s", Scale: 1, Dim: flowRate},
	{Label: "L/min", Scale: 1.6666666666666667e-5, Dim: flowRate},

	{Label: "kg/m3", Scale: 1, Dim: density},
}

// defaultRegistry is built once at package initialization and shared by
// reference; it is never rebuilt or mutated afterwards.
var defaultRegistry = units.MustRegistry(defs...)

// Default returns the shared immutable registry holding the standard
// catalog.
func Default() *units.Registry {
	return defaultRegistry
}
