package schematic

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorFormat(t *testing.T) {
	err := &ParseError{Text: `{"oops`, Cause: errors.New("unexpected EOF")}
	if !strings.Contains(err.Error(), "invalid JSON data") {
		t.Errorf("Error() = %q, want parse sentinel text", err.Error())
	}
	if !strings.Contains(err.Error(), `{"oops`) {
		t.Errorf("Error() = %q, want offending text", err.Error())
	}
	if !errors.Is(err, ErrParse) {
		t.Error("ParseError does not unwrap to ErrParse")
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := &ValidationError{Issues: []Issue{
		{Path: "", Keyword: "required", Message: "missing property 'address'"},
		{Path: "/extra", Keyword: "additionalProperties", Message: "undeclared property"},
	}}

	msg := err.Error()
	if !strings.HasPrefix(msg, "validation failed: ") {
		t.Errorf("Error() = %q, want validation prefix", msg)
	}
	// All issues, comma-joined, root path rendered as "/".
	if !strings.Contains(msg, "required at /:") {
		t.Errorf("Error() = %q, want root-path issue", msg)
	}
	if !strings.Contains(msg, "additionalProperties at /extra:") {
		t.Errorf("Error() = %q, want pathed issue", msg)
	}
	if !strings.Contains(msg, ", ") {
		t.Errorf("Error() = %q, want comma-joined issues", msg)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError does not unwrap to ErrValidation")
	}
}

func TestEncodingErrorFormat(t *testing.T) {
	err := &EncodingError{Cause: errors.New("cycle")}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("Error() = %q, want cause", err.Error())
	}
	if !errors.Is(err, ErrEncoding) {
		t.Error("EncodingError does not unwrap to ErrEncoding")
	}

	bare := &EncodingError{}
	if bare.Error() != ErrEncoding.Error() {
		t.Errorf("Error() = %q, want bare sentinel text", bare.Error())
	}
}

func TestSchemaErrorFormat(t *testing.T) {
	err := &SchemaError{Field: "missing"}
	if !strings.Contains(err.Error(), `"missing"`) {
		t.Errorf("Error() = %q, want field name", err.Error())
	}
	if !errors.Is(err, ErrSchema) {
		t.Error("SchemaError does not unwrap to ErrSchema")
	}

	wrapped := &SchemaError{Cause: errors.New("compile: bad keyword")}
	if !strings.Contains(wrapped.Error(), "bad keyword") {
		t.Errorf("Error() = %q, want cause", wrapped.Error())
	}
}

func TestIssueString(t *testing.T) {
	i := Issue{Path: "/items/2", Keyword: "pattern", Message: "does not match"}
	if got := i.String(); got != "pattern at /items/2: does not match" {
		t.Errorf("String() = %q", got)
	}

	root := Issue{Keyword: "required", Message: "missing"}
	if got := root.String(); got != "required at /: missing" {
		t.Errorf("String() = %q", got)
	}
}
