package schematic

// Field type names used in Hint declarations. These mirror JSON Schema
// primitive type names; Hint.Type is an open string so forward-compatible
// types pass through untouched.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeNull    = "null"
)

// Hint is a per-field declarative constraint descriptor. Only the fields
// relevant to the declared Type are consulted; absent constraints are
// omitted from the derived schema rather than emitted as null.
type Hint struct {
	// Type is the JSON Schema type name for the field.
	Type string

	// Nullable widens the schema type to accept null. Defaults to false.
	Nullable bool

	// String constraints.
	MinLength *int
	MaxLength *int
	Pattern   string

	// Numeric constraints.
	Minimum *float64
	Maximum *float64

	// Items constrains array elements: either a uniform element hint or,
	// through Items.Schema, a fully precompiled nested schema.
	Items *Hint

	// Schema embeds a precompiled nested object schema verbatim, enabling
	// arbitrary nesting depth. Typically MustSchema of the nested type.
	Schema *Schema
}

// Ptr returns a pointer to v, for optional constraint literals:
//
//	{Type: schematic.TypeString, MaxLength: schematic.Ptr(120)}
func Ptr[T any](v T) *T {
	return &v
}
