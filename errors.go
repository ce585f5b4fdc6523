package schematic

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrParse indicates input text is not syntactically valid JSON.
	ErrParse = errors.New("invalid JSON data")

	// ErrValidation indicates parsed data failed the derived schema.
	ErrValidation = errors.New("validation failed")

	// ErrEncoding indicates the JSON encoding step itself failed.
	ErrEncoding = errors.New("encoding failed")

	// ErrSchema indicates an inconsistent entity declaration.
	ErrSchema = errors.New("invalid schema declaration")
)

// ParseError reports syntactically invalid JSON input. It is raised before
// any schema work and carries the offending text.
type ParseError struct {
	Text  string // Offending input
	Cause error  // Underlying decoder error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrParse.Error(), e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Issue is a single schema violation: the instance path it occurred at, the
// keyword (rule) that failed, and the validator's message.
type Issue struct {
	Path    string // JSON Pointer into the instance; "" is the root
	Keyword string // Violated rule, e.g. "required", "additionalProperties"
	Message string
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s at %s: %s", i.Keyword, path, i.Message)
}

// ValidationError aggregates every schema violation from one validation run
// so callers can report all problems at once rather than fail-fast on the
// first.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// EncodingError reports a failed JSON encoding step. It is distinct from an
// empty document so callers never have to guess which one they got.
type EncodingError struct {
	Cause error
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", ErrEncoding.Error(), e.Cause)
	}
	return ErrEncoding.Error()
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}

// SchemaError reports an inconsistent entity declaration, such as a required
// field with no corresponding hint or a schema the validator cannot compile.
type SchemaError struct {
	Field string // Offending field name, when field-specific
	Cause error  // Underlying compiler error, when present
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: required field %q has no hint", ErrSchema.Error(), e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", ErrSchema.Error(), e.Cause)
	}
	return ErrSchema.Error()
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// newAssignError wraps a field assignment failure during deserialization.
// Validation has already passed at this point, so an assignment failure
// means a declared Set disagrees with its declared hint.
func newAssignError(cause error) error {
	return &ValidationError{Issues: []Issue{{
		Keyword: "assignment",
		Message: cause.Error(),
	}}}
}
