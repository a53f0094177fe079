package units

import (
	"fmt"
	"math"

	"github.com/c360/unitstream/errors"
)

// Registry is an ordered, immutable catalog of unit definitions keyed by
// label. It is the single source of truth consumed by unit factories, the
// parser, and checked validators.
//
// A Registry is read-only after construction and safe for concurrent use
// without locking; build it once and share it by reference.
type Registry struct {
	units   []Unit
	byLabel map[string]Unit
}

// NewRegistry builds a registry from the given unit definitions, preserving
// their order. Labels must be unique across the entire registry, even across
// different dimensions, so lookups are never ambiguous; a duplicate fails
// with ErrDuplicateUnit. Definitions with an empty label or a zero, NaN, or
// infinite scale fail with ErrInvalidData.
func NewRegistry(defs ...Unit) (*Registry, error) {
	r := &Registry{
		units:   make([]Unit, 0, len(defs)),
		byLabel: make(map[string]Unit, len(defs)),
	}

	for _, u := range defs {
		if u.Label == "" {
			return nil, fmt.Errorf("units: unit definition with empty label: %w", errors.ErrInvalidData)
		}
		if u.Scale == 0 || math.IsNaN(u.Scale) || math.IsInf(u.Scale, 0) {
			return nil, fmt.Errorf("units: unit %q has unusable scale %v: %w",
				u.Label, u.Scale, errors.ErrInvalidData)
		}
		if math.IsNaN(u.Offset) || math.IsInf(u.Offset, 0) {
			return nil, fmt.Errorf("units: unit %q has unusable offset %v: %w",
				u.Label, u.Offset, errors.ErrInvalidData)
		}
		if _, exists := r.byLabel[u.Label]; exists {
			return nil, fmt.Errorf("units: label %q registered twice: %w", u.Label, errors.ErrDuplicateUnit)
		}

		r.units = append(r.units, u)
		r.byLabel[u.Label] = u
	}

	return r, nil
}

// MustRegistry is NewRegistry but panics on an invalid catalog. Intended for
// static catalog construction in package init.
func MustRegistry(defs ...Unit) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the unit registered under label. Matching is exact and
// case-sensitive; there is no normalization or fuzzy resolution.
func (r *Registry) Lookup(label string) (Unit, bool) {
	u, ok := r.byLabel[label]
	return u, ok
}

// Unit returns the unit registered under label, failing with ErrUnknownUnit
// when the label is absent.
func (r *Registry) Unit(label string) (Unit, error) {
	u, ok := r.byLabel[label]
	if !ok {
		return Unit{}, fmt.Errorf("units: label %q: %w", label, errors.ErrUnknownUnit)
	}
	return u, nil
}

// Units returns a copy of the catalog in registration order.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	copy(out, r.units)
	return out
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}
