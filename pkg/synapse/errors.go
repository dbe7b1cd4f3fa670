package synapse

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType categorizes engine error kinds by a typed discriminator
// rather than a single untyped error, so callers can branch on kind
// (errors.As) without string-matching messages.
type ErrorType string

const (
	// ErrConstruction is returned when building a Connection violates its
	// structural invariants (child-count or tag mismatch).
	ErrConstruction ErrorType = "construction_error"

	// ErrEvaluation wraps an error raised by a Neuron's function during
	// Connection.Output.
	ErrEvaluation ErrorType = "evaluation_error"

	// ErrSerialization covers JSON load failures: a referenced neuron not
	// found in the Brain, or an unrecognised tag name.
	ErrSerialization ErrorType = "serialization_error"

	// ErrValidation covers invalid configuration or arguments.
	ErrValidation ErrorType = "validation_error"

	// ErrConfiguration covers an invalid *Config.
	ErrConfiguration ErrorType = "configuration_error"
)

// Error is the engine's error type. It carries a Type for programmatic
// dispatch, an optional expression-path string for context, and an
// optional wrapped Cause.
type Error struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s at %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(t ErrorType, path, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...), Path: path}
}

// NewConstructionError reports a structural-invariant violation.
func NewConstructionError(path, format string, args ...interface{}) *Error {
	return newError(ErrConstruction, path, format, args...)
}

// NewEvaluationError wraps a Neuron function's error with expression context.
func NewEvaluationError(path string, cause error) *Error {
	e := newError(ErrEvaluation, path, "%s", cause)
	e.Cause = cause
	return e
}

// NewSerializationError reports a JSON load failure.
func NewSerializationError(format string, args ...interface{}) *Error {
	return newError(ErrSerialization, "", format, args...)
}

// NewValidationError reports an invalid argument.
func NewValidationError(format string, args ...interface{}) *Error {
	return newError(ErrValidation, "", format, args...)
}

// NewConfigurationError reports an invalid *Config.
func NewConfigurationError(format string, args ...interface{}) *Error {
	return newError(ErrConfiguration, "", format, args...)
}

// IsType reports whether err is a *Error of the given type, unwrapping as
// needed. Intended for use with errors.Is-style checks in caller code.
func IsType(err error, t ErrorType) bool {
	var se *Error
	return errors.As(err, &se) && se.Type == t
}

// MultiError aggregates independent failures, e.g. several malformed
// neurons rejected while building a Brain.
type MultiError struct {
	Errors []error
}

func (e MultiError) Error() string {
	lines := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		lines = append(lines, fmt.Sprintf(" - %s", err))
	}
	sort.Strings(lines)
	return fmt.Sprintf("%d error(s) detected:\n%s", len(e.Errors), strings.Join(lines, "\n"))
}

func (e *MultiError) Count() int { return len(e.Errors) }

func (e *MultiError) Append(err error) {
	if err == nil {
		return
	}
	if m, ok := err.(MultiError); ok {
		e.Errors = append(e.Errors, m.Errors...)
		return
	}
	e.Errors = append(e.Errors, err)
}
