package schematic

import "strings"

// Schema is a minimal JSON Schema representation, rich enough to express
// what Hint declarations compile to. It marshals directly into a document
// the validation collaborator can compile.
type Schema struct {
	// Type holds a type name, or a []string union when nullable.
	Type any `json:"type,omitempty"`

	// Object keywords.
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array keywords.
	Items *Schema `json:"items,omitempty"`

	// String keywords.
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Numeric keywords.
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
}

// deriveSchema compiles a hint map and required list into a closed object
// schema. Hint keys with the reserved prefix are implementation-private and
// never become properties. A required name without a matching hint is a
// declaration bug and fails fast.
func deriveSchema(hints map[string]Hint, required []string) (*Schema, error) {
	props := make(map[string]*Schema, len(hints))
	for name, h := range hints {
		if strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		props[name] = propertySchema(h)
	}

	req := make([]string, len(required))
	copy(req, required)
	for _, name := range req {
		if _, ok := props[name]; !ok {
			return nil, &SchemaError{Field: name}
		}
	}

	return &Schema{
		Type:                 TypeObject,
		Properties:           props,
		Required:             req,
		AdditionalProperties: false,
	}, nil
}

// propertySchema compiles a single hint into its property sub-schema.
func propertySchema(h Hint) *Schema {
	switch {
	case h.Type == TypeArray && h.Items != nil:
		items := h.Items.Schema
		if items == nil {
			items = primitiveSchema(*h.Items)
		}
		return &Schema{
			Type:  schemaType(TypeArray, h.Nullable),
			Items: items,
		}
	case h.Type == TypeObject && h.Schema != nil:
		// Precompiled nested schema embeds verbatim; its own nullability,
		// required list, and additionalProperties are already baked in.
		return h.Schema
	default:
		return primitiveSchema(h)
	}
}

// primitiveSchema copies the hint's type, nullability, and whichever
// constraints are present.
func primitiveSchema(h Hint) *Schema {
	return &Schema{
		Type:      schemaType(h.Type, h.Nullable),
		MinLength: h.MinLength,
		MaxLength: h.MaxLength,
		Pattern:   h.Pattern,
		Minimum:   h.Minimum,
		Maximum:   h.Maximum,
	}
}

// schemaType projects nullability as a type union; draft 2020-12 has no
// nullable keyword.
func schemaType(t string, nullable bool) any {
	if nullable {
		return []string{t, TypeNull}
	}
	return t
}
