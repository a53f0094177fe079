package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/c360/unitstream/errors"
	"github.com/c360/unitstream/units"
)

// Handler builds the gateway's HTTP mux with rate limiting applied to the
// API routes.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/convert", g.limit(g.handleConvert))
	mux.HandleFunc("POST /v1/parse", g.limit(g.handleParse))
	mux.HandleFunc("POST /v1/compute", g.limit(g.handleCompute))
	mux.HandleFunc("GET /v1/units", g.limit(g.handleUnits))
	mux.HandleFunc("GET /v1/stream", g.handleStream)
	mux.HandleFunc("GET /healthz", g.handleHealthz)

	if g.metricsHandler != nil {
		mux.Handle("GET /metrics", g.metricsHandler)
	}

	return mux
}

// limit wraps a handler with the global rate limiter and request counters.
func (g *Gateway) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g.requestsTotal.Add(1)
		g.mu.Lock()
		g.lastActivity = time.Now()
		g.mu.Unlock()

		if g.limiter != nil && !g.limiter.Allow() {
			g.metrics.recordRateLimited(g.name)
			g.writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		start := time.Now()
		next(w, r)
		g.metrics.recordRequest(g.name, r.URL.Path, time.Since(start))
	}
}

// convertRequest carries either a combined quantity string or a separate
// value and unit, plus the conversion target.
type convertRequest struct {
	Quantity  string   `json:"quantity,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Target    string   `json:"target"`
	Precision *int     `json:"precision,omitempty"`
}

type quantityResponse struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Dimension string  `json:"dimension"`
	Base      float64 `json:"base"`
	Formatted string  `json:"formatted"`
}

func (g *Gateway) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !g.decodeBody(w, r, &req) {
		return
	}

	if req.Target == "" {
		g.failRequest(w, http.StatusBadRequest, "target unit required")
		return
	}

	q, err := g.parseRequestQuantity(req.Quantity, req.Value, req.Unit)
	if err != nil {
		g.writeUnitError(w, err)
		return
	}

	converted, err := g.checked.To(req.Target, q)
	if err != nil {
		g.writeUnitError(w, err)
		return
	}

	g.metrics.recordConversion(g.name, q.Label, converted.Label)
	g.writeJSON(w, http.StatusOK, g.quantityResponse(converted, req.Precision))
}

type parseRequest struct {
	Text      string `json:"text"`
	Precision *int   `json:"precision,omitempty"`
}

func (g *Gateway) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !g.decodeBody(w, r, &req) {
		return
	}

	q, err := g.registry.Parse(req.Text)
	if err != nil {
		g.writeUnitError(w, err)
		return
	}

	g.writeJSON(w, http.StatusOK, g.quantityResponse(q, req.Precision))
}

// computeRequest applies a binary operation to two quantity strings.
type computeRequest struct {
	Op        string `json:"op"` // add, sub, mul, div
	A         string `json:"a"`
	B         string `json:"b"`
	Precision *int   `json:"precision,omitempty"`
}

func (g *Gateway) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if !g.decodeBody(w, r, &req) {
		return
	}

	a, err := g.checked.Parse(req.A)
	if err != nil {
		g.writeUnitError(w, err)
		return
	}
	b, err := g.checked.Parse(req.B)
	if err != nil {
		g.writeUnitError(w, err)
		return
	}

	var result units.Quantity
	switch strings.ToLower(req.Op) {
	case "add":
		result, err = g.checked.Add(a, b)
	case "sub":
		result, err = g.checked.Sub(a, b)
	case "mul":
		result, err = g.checked.Mul(a, b)
	case "div":
		result, err = g.checked.Div(a, b)
	default:
		g.failRequest(w, http.StatusBadRequest,
			fmt.Sprintf("unknown operation %q (want add, sub, mul, or div)", req.Op))
		return
	}
	if err != nil {
		g.writeUnitError(w, err)
		return
	}

	g.writeJSON(w, http.StatusOK, g.quantityResponse(result, req.Precision))
}

type unitInfo struct {
	Label     string  `json:"label"`
	Scale     float64 `json:"scale"`
	Offset    float64 `json:"offset,omitempty"`
	Dimension string  `json:"dimension"`
	Affine    bool    `json:"affine"`
}

func (g *Gateway) handleUnits(w http.ResponseWriter, _ *http.Request) {
	defs := g.registry.Units()
	infos := make([]unitInfo, len(defs))
	for i, u := range defs {
		infos[i] = unitInfo{
			Label:     u.Label,
			Scale:     u.Scale,
			Offset:    u.Offset,
			Dimension: u.Dim.String(),
			Affine:    u.IsAffine(),
		}
	}

	g.writeJSON(w, http.StatusOK, map[string]any{
		"count": len(infos),
		"units": infos,
	})
}

func (g *Gateway) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	health := g.Health()
	status := http.StatusOK
	if !health.Healthy {
		status = http.StatusServiceUnavailable
	}
	g.writeJSON(w, status, health)
}

// parseRequestQuantity resolves the two request encodings into a quantity.
func (g *Gateway) parseRequestQuantity(quantity string, value *float64, unit string) (units.Quantity, error) {
	if quantity != "" {
		return g.checked.Parse(quantity)
	}
	if value == nil || unit == "" {
		return units.Quantity{}, errors.WrapInvalid(
			errors.ErrInvalidInput, "Gateway", "parseRequestQuantity",
			"request needs quantity or value and unit")
	}
	return g.checked.Of(unit, *value)
}

func (g *Gateway) quantityResponse(q units.Quantity, precision *int) quantityResponse {
	var opts []units.FormatOption
	if precision != nil {
		opts = append(opts, units.WithPrecision(*precision))
	}
	return quantityResponse{
		Value:     q.Value,
		Unit:      q.Label,
		Dimension: q.Dim().String(),
		Base:      q.Base(),
		Formatted: units.Format(q, opts...),
	}
}

// decodeBody reads and decodes a JSON request body, enforcing the size
// limit. Returns false after writing the error response.
func (g *Gateway) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer func() { _ = r.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(r.Body, g.config.MaxRequestSize+1))
	if err != nil {
		g.failRequest(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	if int64(len(body)) > g.config.MaxRequestSize {
		g.failRequest(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds maximum size of %d bytes", g.config.MaxRequestSize))
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		g.failRequest(w, http.StatusBadRequest, "invalid JSON request body")
		return false
	}
	return true
}

// writeUnitError maps unit algebra errors to HTTP statuses without leaking
// internals.
func (g *Gateway) writeUnitError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsInvalid(err):
		status = http.StatusBadRequest
	case errors.IsTransient(err):
		if strings.Contains(err.Error(), "timeout") {
			status = http.StatusGatewayTimeout
		} else {
			status = http.StatusServiceUnavailable
		}
	}

	g.failRequest(w, status, err.Error())
}

func (g *Gateway) failRequest(w http.ResponseWriter, statusCode int, message string) {
	g.requestsFailed.Add(1)
	g.metrics.recordError(g.name, statusCode)
	g.writeError(w, statusCode, message)
}

func (g *Gateway) writeError(w http.ResponseWriter, statusCode int, message string) {
	g.writeJSON(w, statusCode, map[string]any{
		"error":  message,
		"status": statusCode,
	})
}

func (g *Gateway) writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	data, err := json.Marshal(v)
	if err != nil {
		g.logger.Error("Failed to marshal response", "error", err)
		return
	}
	if _, err := w.Write(data); err != nil {
		g.logger.Debug("Failed to write response", "error", err)
	}
}
