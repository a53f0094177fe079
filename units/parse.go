package units

import (
	"fmt"
	"strings"

	"github.com/c360/unitstream/errors"
)

// Parse tokenizes "<value> <unit>" text into a Quantity using this registry.
//
// The input is trimmed and split on runs of whitespace and must contain
// exactly two tokens: the numeric value followed by the unit label. Empty
// input, a lone token, and extra tokens all fail with ErrInvalidInput;
// permissively skipping interior tokens would silently accept malformed
// input like "5 extra km".
//
// The label is resolved with an exact, case-sensitive registry lookup and
// fails with ErrUnknownUnit when absent. Labels resembling reserved object
// properties (e.g. "constructor") are ordinary unknown labels, never
// specially resolved. The value token uses the same numeric coercion as the
// unit factories and fails with ErrInvalidValue when non-numeric.
func (r *Registry) Parse(text string) (Quantity, error) {
	tokens := strings.Fields(text)
	if len(tokens) != 2 {
		return Quantity{}, fmt.Errorf("units: parse %q: want \"<value> <unit>\", got %d token(s): %w",
			text, len(tokens), errors.ErrInvalidInput)
	}

	u, ok := r.byLabel[tokens[1]]
	if !ok {
		return Quantity{}, fmt.Errorf("units: parse %q: label %q: %w",
			text, tokens[1], errors.ErrUnknownUnit)
	}

	v, err := coerceValue(tokens[0])
	if err != nil {
		return Quantity{}, fmt.Errorf("units: parse %q: %w", text, err)
	}

	return u.Of(v), nil
}
