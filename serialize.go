package schematic

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// EncodeOption adjusts serialization behavior.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	pretty bool
	masked bool
}

// Pretty selects two-space indented output. Default output is compact.
func Pretty() EncodeOption {
	return func(c *encodeConfig) { c.pretty = true }
}

// Masked substitutes maskable field values with mask strings. Masking is
// applied to the transient output tree only; the live entity is untouched.
func Masked() EncodeOption {
	return func(c *encodeConfig) { c.masked = true }
}

// ToJSON serializes the entity to JSON, preserving declared field order.
// A nil entity serializes to null. Encoding failures return a distinct
// EncodingError rather than an empty document.
func (p *Processor[T, PT]) ToJSON(e PT, opts ...EncodeOption) ([]byte, error) {
	var cfg encodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := context.Background()
	start := time.Now()
	emitSerializeStart(ctx, p.typeName)

	s := &serializer{masker: p.currentMasker()}

	var tree any
	if e != nil {
		tree = s.entityTree(e, cfg.masked)
	}

	var data []byte
	var err error
	if cfg.pretty {
		data, err = json.MarshalIndent(tree, "", "  ")
	} else {
		data, err = json.Marshal(tree)
	}
	if err != nil {
		err = &EncodingError{Cause: err}
		data = nil
	}

	emitSerializeComplete(ctx, p.typeName, len(data), time.Since(start), s.masked, err)
	return data, err
}

// serializer walks one entity snapshot into a JSON-compatible tree,
// counting masked leaves as it goes.
type serializer struct {
	masker Masker
	masked int
}

// entityTree converts an entity into an ordered field tree. Fields with the
// reserved prefix are implementation-private and skipped. The mask flag
// propagates down through nested entities.
func (s *serializer) entityTree(e Entity, mask bool) *object {
	maskable := nameSet(e.Maskable())
	out := newObject()
	for _, f := range e.Fields() {
		if strings.HasPrefix(f.Name, reservedPrefix) {
			continue
		}
		out.set(f.Name, s.processValue(f.Get(), f.Name, maskable, mask))
	}
	return out
}

// processValue transforms a single field value for output. fieldName is the
// name whose maskability governs this value; mask says whether masking is
// in effect at this point of the walk.
func (s *serializer) processValue(v any, fieldName string, maskable map[string]struct{}, mask bool) any {
	if isNil(v) {
		return s.leaf(nil, fieldName, maskable, mask)
	}

	if nested, ok := v.(Entity); ok {
		// Nested entities serialize themselves, inheriting the mask flag;
		// their own maskable declarations take over from here.
		return s.entityTree(nested, mask)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if mask {
			if _, ok := maskable[fieldName]; ok {
				// Each element masks independently by its own string form;
				// element sub-structure is deliberately not recursed.
				out := make([]any, rv.Len())
				for i := range out {
					out[i] = s.maskValue(rv.Index(i).Interface())
				}
				return out
			}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = s.processValue(rv.Index(i).Interface(), fieldName, maskable, mask)
		}
		return out

	case reflect.Map:
		// A plain keyed structure: masking descends only when the
		// containing field was itself declared maskable.
		_, eligible := maskable[fieldName]
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			out[key] = s.processValue(iter.Value().Interface(), key, maskable, mask && eligible)
		}
		return out

	default:
		return s.leaf(v, fieldName, maskable, mask)
	}
}

// leaf emits a primitive value, masked when eligible.
func (s *serializer) leaf(v any, fieldName string, maskable map[string]struct{}, mask bool) any {
	if mask {
		if _, ok := maskable[fieldName]; ok {
			return s.maskValue(v)
		}
	}
	return v
}

func (s *serializer) maskValue(v any) string {
	s.masked++
	return s.masker.Mask(stringForm(v))
}

// stringForm renders a value the way JavaScript's String() would: null for
// nil, bare true/false, and integral numbers without a decimal point. Mask
// lengths are derived from this form.
func stringForm(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// isNil reports whether v is nil, including typed nil pointers, slices, and
// maps hiding behind an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// object is a JSON object that preserves field declaration order; plain maps
// would encode with sorted keys.
type object struct {
	keys   []string
	values map[string]any
}

func newObject() *object {
	return &object{values: make(map[string]any)}
}

func (o *object) set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// MarshalJSON encodes entries in insertion order. Indentation is applied by
// the caller's MarshalIndent pass over the assembled document.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
