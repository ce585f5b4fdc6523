// Package schematic provides schema-validated serialization for declared
// entity types.
//
// An entity declares its fields once — constraint hints, required names,
// maskable names, and an ordered accessor list — and every generic operation
// (schema derivation, validating deserialization, masking serialization,
// cloning) is driven by those declarations with no further per-type code.
//
// # Declarations
//
// A record type implements Entity by declaring its metadata:
//
//	type Person struct {
//	    PostalCode string
//	    Address    string
//	}
//
//	func (Person) Hints() map[string]schematic.Hint {
//	    return map[string]schematic.Hint{
//	        "postalCode": {Type: schematic.TypeString, Pattern: `^\d{3}-\d{4}$`},
//	        "address":    {Type: schematic.TypeString, MaxLength: schematic.Ptr(120)},
//	    }
//	}
//
//	func (Person) Required() []string { return []string{"postalCode", "address"} }
//	func (Person) Maskable() []string { return []string{"postalCode", "address"} }
//
//	func (p *Person) Fields() []schematic.Field {
//	    return []schematic.Field{
//	        {Name: "postalCode", Get: func() any { return p.PostalCode }, Set: schematic.SetString(&p.PostalCode)},
//	        {Name: "address", Get: func() any { return p.Address }, Set: schematic.SetString(&p.Address)},
//	    }
//	}
//
// # Basic Usage
//
//	// Derive the JSON Schema for the type.
//	schema, _ := schematic.DeriveSchema[Person]()
//
//	// Parse and validate in one step.
//	p, err := schematic.FromJSON[Person]([]byte(`{"postalCode":"123-4567","address":"tokyo"}`))
//
//	// Serialize, optionally masked and pretty-printed.
//	out, _ := schematic.ToJSON(p, schematic.Masked())
//	// {"postalCode":"********","address":"*****"}
//
//	// Deep copy through a serialize/deserialize round trip.
//	dup, _ := schematic.Clone(p)
//
// # Schema Derivation
//
// Hints compile into a closed JSON Schema object: every non-reserved hint
// becomes one property, required mirrors the declared list, and
// additionalProperties is always false. Nested entity schemas embed verbatim
// via Hint.Schema, typically obtained with MustSchema of the nested type.
//
// # Masking
//
// Masking replaces maskable field values in the output tree with a run of
// '*' matching the original value's string-form length. The mask is lossy
// and length-revealing on purpose; it never mutates the live entity. Custom
// mask shapes can be installed per processor with SetMasker.
//
// # Errors
//
// Operations fail with typed errors that unwrap to package sentinels:
// ParseError (ErrParse) for malformed JSON, ValidationError (ErrValidation)
// aggregating every violated instance path, EncodingError (ErrEncoding) for
// marshal failures, and SchemaError (ErrSchema) for inconsistent
// declarations such as a required field without a hint.
package schematic

// Entity is the contract a record type implements to participate in schema
// derivation, validation, serialization, and cloning.
//
// Hints, Required, and Maskable describe the type and must be callable on
// the zero value; Fields binds accessors to a concrete instance and is
// declared on the pointer receiver so Set can write through.
type Entity interface {
	// Hints maps each wire field name to its constraint descriptor.
	Hints() map[string]Hint

	// Required lists field names that must be present to validate.
	// Every required name must also appear in Hints.
	Required() []string

	// Maskable lists field names eligible for mask substitution.
	Maskable() []string

	// Fields returns the declared field list in wire order. Serialization
	// and deserialization touch exactly these fields, nothing else.
	Fields() []Field
}

// Ent constrains a pointer-to-entity type for the generic operations.
type Ent[T any] interface {
	*T
	Entity
}

// Field pairs a wire name with instance-bound accessors. The declared list
// is exhaustive: a field left out of Fields never serializes and is silently
// dropped on clone.
type Field struct {
	// Name is the wire name. Names beginning with "_" are implementation-
	// private and never serialize or appear in derived schemas.
	Name string

	// Get reads the current field value.
	Get func() any

	// Set assigns a parsed value to the field. Values arrive as decoded
	// JSON (string, float64, bool, []any, map[string]any, nil); converting
	// to the concrete field type is the entity's business.
	Set func(v any) error
}

// reservedPrefix marks implementation-private field names.
const reservedPrefix = "_"

// DeriveSchema compiles the entity type's hint declarations into a closed
// JSON Schema object. It fails with a SchemaError when the declarations are
// inconsistent, e.g. a required field has no hint.
func DeriveSchema[T any, PT Ent[T]]() (*Schema, error) {
	p, err := Use[T, PT]()
	if err != nil {
		return nil, err
	}
	return p.Schema(), nil
}

// MustSchema is DeriveSchema that panics on declaration errors. Intended for
// embedding a nested entity's schema inside a Hint declaration:
//
//	"shipping": {Type: schematic.TypeObject, Schema: schematic.MustSchema[Address]()}
func MustSchema[T any, PT Ent[T]]() *Schema {
	s, err := DeriveSchema[T, PT]()
	if err != nil {
		panic(err)
	}
	return s
}

// FromJSON parses data, validates it against the type's derived schema, and
// returns a populated instance. It fails with a ParseError for malformed
// JSON and a ValidationError aggregating every schema violation; it never
// returns a partially populated instance.
func FromJSON[T any, PT Ent[T]](data []byte) (PT, error) {
	p, err := Use[T, PT]()
	if err != nil {
		return nil, err
	}
	return p.FromJSON(data)
}

// ToJSON serializes the entity to JSON. Output preserves declared field
// order; Pretty selects two-space indentation and Masked substitutes
// maskable field values with mask strings.
func ToJSON[T any, PT Ent[T]](e PT, opts ...EncodeOption) ([]byte, error) {
	p, err := Use[T, PT]()
	if err != nil {
		return nil, err
	}
	return p.ToJSON(e, opts...)
}

// Clone deep-copies the entity through a compact, unmasked serialize/
// deserialize round trip. The result shares no nested structure with the
// original; anything the schema does not accept does not survive.
func Clone[T any, PT Ent[T]](e PT) (PT, error) {
	p, err := Use[T, PT]()
	if err != nil {
		return nil, err
	}
	return p.Clone(e)
}

// Validate runs the entity through a clone cycle purely for its validation
// side effect, propagating any ParseError or ValidationError unchanged.
func Validate[T any, PT Ent[T]](e PT) error {
	p, err := Use[T, PT]()
	if err != nil {
		return err
	}
	return p.Validate(e)
}
