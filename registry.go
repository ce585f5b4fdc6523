package schematic

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Use returns a cached processor for type T, building and compiling one on
// first use. The generic operations (DeriveSchema, FromJSON, ToJSON, Clone,
// Validate) all delegate here.
func Use[T any, PT Ent[T]]() (*Processor[T, PT], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T, PT]), nil
	}
	registryMu.RUnlock()

	// Built outside the lock: an entity's Hints may embed a nested type's
	// schema, which re-enters Use for that type.
	processor, err := NewProcessor[T, PT]()
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	// A racing caller may have built first; keep the cached one.
	if cached, ok := registry[typ]; ok {
		return cached.(*Processor[T, PT]), nil
	}

	registry[typ] = processor
	return processor, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
