// Package unitstream provides a unit-aware measurement pipeline: a
// dimensional-analysis core for parsing, converting and computing with
// physical quantities, and the streaming infrastructure to normalize
// measurement feeds into canonical units.
//
// # Architecture
//
// UnitStream is built from two layers:
//
// Units Layer (pure, no I/O):
//   - Dimensions: eight-axis integer exponent vectors (length, mass, time,
//     current, temperature, amount, luminosity, data)
//   - Quantities: value, scale and affine offset against SI base units
//   - Registry: label-to-unit catalog with derived-unit parsing
//   - Engines: arithmetic, conversion, formatting and a checked facade
//     that validates before it computes
//
// Pipeline Layer:
//   - Normalizer: subscribes to NATS measurement subjects, rewrites each
//     measurement into its configured canonical unit and republishes it
//   - Gateway: HTTP API for conversion, parsing, arithmetic and unit
//     listing, plus a WebSocket feed of normalized measurements
//   - Infrastructure: Prometheus metrics, health checks, structured logging
//
//	┌─────────────────────────────────────┐
//	│        Service Manager              │  Component lifecycle
//	│   (start, stop, health, rollback)   │
//	└─────────────────────────────────────┘
//	           ↓ orchestrates
//	┌──────────────────┬──────────────────┐
//	│    Normalizer    │     Gateway      │
//	│ (NATS in → out)  │ (HTTP + WS API)  │
//	└──────────────────┴──────────────────┘
//	           ↓ both built on
//	┌─────────────────────────────────────┐
//	│        Units Registry               │  Catalog, parsing,
//	│  (dimensions, quantities, convert)  │  conversion, checking
//	└─────────────────────────────────────┘
//
// # Conversion Model
//
// Every unit is a scale (and, for thermometric units, an offset) against
// its dimension's SI base. Converting between units of the same dimension
// goes through the base representation, so any two compatible units
// convert without pairwise tables. Units of different dimensions never
// convert; the checked engine reports the mismatch instead of computing.
//
// # Getting Started
//
// Library use:
//
//	reg := catalog.Default()
//	q, err := reg.Parse("21.5 degC")
//	out, err := units.To(mustUnit(reg, "K"), q)
//
// Pipeline use: run cmd/unitstream with a JSON or YAML configuration that
// enables the normalizer and lists its input subjects and target units.
package unitstream
