// Package errors provides standardized error handling patterns for UnitStream.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// It also defines the typed taxonomy for the unit algebra implemented by the
// units package:
//
//   - ErrInvalidValue: a non-numeric string was given to a unit factory or parser
//   - ErrInvalidInput: a malformed parse target (empty, wrong token count)
//   - ErrUnknownUnit: a unit label absent from the registry
//   - ErrDimensionMismatch: operand or target dimensions differ
//   - ErrUnitMismatch: same dimension, different label, not converted first
//   - ErrAffineOperand: mul/div attempted on a non-zero-offset operand
//   - ErrDimensionOverflow: a composed exponent left the representable range
//
// Every unit algebra error classifies as Invalid: these represent programmer
// or input errors, not transient failures, and are raised immediately at the
// detecting call site without retry or silent coercion.
//
// # Quick Start
//
// Branch on the taxonomy with the standard library:
//
//	q, err := registry.Parse(text)
//	if errors.Is(err, errors.ErrUnknownUnit) {
//	    // surface to the caller as a recoverable input error
//	}
//
// Wrap errors with context for debugging:
//
//	if err := component.Process(data); err != nil {
//	    return errors.Wrap(err, "Normalizer", "Process", "measurement decode")
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")  // For retryable errors
//	errors.WrapInvalid(err, "Component", "Method", "action")    // For validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")      // For unrecoverable errors
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
