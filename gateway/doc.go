// Package gateway serves the UnitStream HTTP API and WebSocket stream.
//
// # HTTP API
//
// The gateway exposes the unit engine over JSON endpoints:
//
//	POST /v1/convert   convert a quantity to a target unit
//	POST /v1/parse     parse a quantity string like "21.5 degC"
//	POST /v1/compute   add, sub, mul, or div two quantity strings
//	GET  /v1/units     list the registry's units
//	GET  /v1/stream    WebSocket feed of normalized measurements
//	GET  /healthz      gateway health
//	GET  /metrics      Prometheus metrics (when mounted)
//
// Conversion and compute requests go through the registry-checked validator,
// so unknown units and dimension mismatches come back as 400s with the
// underlying reason.
//
// # Rate Limiting
//
// API routes share a token-bucket limiter configured in requests per second
// and burst. Exhausted budgets return 429. The WebSocket and health
// endpoints are not limited.
//
// # Streaming
//
// When a NATS client is provided, the gateway subscribes to the configured
// stream subject and fans every message out to connected WebSocket clients.
// The stream is one-way; client frames are read only to detect disconnect.
package gateway
