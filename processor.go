package schematic

import (
	"context"
	"reflect"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/kaptinlin/jsonschema"
)

// Processor holds the per-type compiled artifacts for an entity type: the
// derived schema, its compiled validator, and the masker in effect.
//
// Processors are safe for concurrent use. All operations are pure
// transformations over an entity snapshot; no call mutates the receiver or
// its input entity. SetMasker may be called at any time.
type Processor[T any, PT Ent[T]] struct {
	schema   *Schema
	compiled *jsonschema.Schema

	// Mutable configuration protected by mu
	mu     sync.RWMutex
	masker Masker

	// Type metadata
	typeName string
}

// NewProcessor derives and compiles the schema for type T. It fails with a
// SchemaError when the type's declarations are inconsistent or the derived
// schema does not compile.
//
// Most callers want Use, which caches one processor per type.
func NewProcessor[T any, PT Ent[T]]() (*Processor[T, PT], error) {
	var zero T
	decl := PT(&zero)

	schema, err := deriveSchema(decl.Hints(), decl.Required())
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, &SchemaError{Cause: err}
	}

	compiled, err := jsonschema.NewCompiler().Compile(raw)
	if err != nil {
		return nil, &SchemaError{Cause: err}
	}

	p := &Processor[T, PT]{
		schema:   schema,
		compiled: compiled,
		masker:   LengthMasker(),
		typeName: reflect.TypeFor[T]().Name(),
	}

	emitProcessorCreated(context.Background(), p.typeName)
	return p, nil
}

// Schema returns the derived object schema for type T.
func (p *Processor[T, PT]) Schema() *Schema {
	return p.schema
}

// SetMasker installs a custom masker for this processor's serialization.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T, PT]) SetMasker(m Masker) *Processor[T, PT] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.masker = m
	return p
}

// currentMasker reads the masker under the lock.
func (p *Processor[T, PT]) currentMasker() Masker {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.masker
}
