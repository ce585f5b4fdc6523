package schematic

import (
	"fmt"
	"strings"
)

// Set helpers cover the common decoded-JSON to struct-field assignments so
// Fields declarations stay one line per field. Each helper accepts JSON
// null by resetting the destination to its zero value.

// SetString assigns a decoded JSON string.
func SetString(dst *string) func(any) error {
	return func(v any) error {
		if v == nil {
			*dst = ""
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
		*dst = s
		return nil
	}
}

// SetNumber assigns a decoded JSON number.
func SetNumber(dst *float64) func(any) error {
	return func(v any) error {
		if v == nil {
			*dst = 0
			return nil
		}
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("expected number, got %T", v)
		}
		*dst = f
		return nil
	}
}

// SetInt assigns a decoded JSON number to an int field. Fractional values
// are rejected rather than truncated.
func SetInt(dst *int) func(any) error {
	return func(v any) error {
		if v == nil {
			*dst = 0
			return nil
		}
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("expected number, got %T", v)
		}
		n := int(f)
		if float64(n) != f {
			return fmt.Errorf("expected integer, got %v", f)
		}
		*dst = n
		return nil
	}
}

// SetBool assigns a decoded JSON boolean.
func SetBool(dst *bool) func(any) error {
	return func(v any) error {
		if v == nil {
			*dst = false
			return nil
		}
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("expected boolean, got %T", v)
		}
		*dst = b
		return nil
	}
}

// SetStrings assigns a decoded JSON array of strings.
func SetStrings(dst *[]string) func(any) error {
	return func(v any) error {
		if v == nil {
			*dst = nil
			return nil
		}
		elems, ok := v.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", v)
		}
		out := make([]string, len(elems))
		for i, e := range elems {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("expected string at index %d, got %T", i, e)
			}
			out[i] = s
		}
		*dst = out
		return nil
	}
}

// SetValue assigns the decoded value as-is via type assertion. Useful for
// fields deliberately holding raw decoded JSON (any, map[string]any, []any).
func SetValue[V any](dst *V) func(any) error {
	return func(v any) error {
		if v == nil {
			var zero V
			*dst = zero
			return nil
		}
		x, ok := v.(V)
		if !ok {
			return fmt.Errorf("expected %T, got %T", *dst, v)
		}
		*dst = x
		return nil
	}
}

// SetEntity reconstructs a nested entity from a decoded JSON object by
// assigning through the nested type's own declared fields. JSON null clears
// the destination.
func SetEntity[T any, PT Ent[T]](dst **T) func(any) error {
	return func(v any) error {
		if v == nil {
			*dst = nil
			return nil
		}
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("expected object, got %T", v)
		}
		nested, err := populate[T, PT](m)
		if err != nil {
			return err
		}
		*dst = (*T)(nested)
		return nil
	}
}

// SetEntities reconstructs a slice of nested entities element-wise.
func SetEntities[T any, PT Ent[T]](dst *[]*T) func(any) error {
	return func(v any) error {
		if v == nil {
			*dst = nil
			return nil
		}
		elems, ok := v.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", v)
		}
		out := make([]*T, len(elems))
		for i, e := range elems {
			m, ok := e.(map[string]any)
			if !ok {
				return fmt.Errorf("expected object at index %d, got %T", i, e)
			}
			nested, err := populate[T, PT](m)
			if err != nil {
				return err
			}
			out[i] = (*T)(nested)
		}
		*dst = out
		return nil
	}
}

// populate assigns decoded fields onto a zero instance through its declared
// accessors. Shallow by contract: each Set decides how deep to go.
func populate[T any, PT Ent[T]](m map[string]any) (PT, error) {
	var zero T
	out := PT(&zero)
	for _, f := range out.Fields() {
		if strings.HasPrefix(f.Name, reservedPrefix) {
			continue
		}
		v, ok := m[f.Name]
		if !ok {
			continue
		}
		if err := f.Set(v); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return out, nil
}
