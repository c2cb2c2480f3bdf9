package jsondoc

// Package jsondoc decodes JSON and YAML documents into JSON-like Go values
// (map[string]any, []any, string, float64, bool, nil) while remembering the
// order in which object keys were written. Schema diffs report properties in
// document order and bumped schemas are written back with their original
// layout, neither of which a plain map can provide.

import (
	"sort"
)

// Document is a decoded JSON-like value together with the key order of every
// object it contains, indexed by JSON Pointer.
type Document struct {
	Value any
	keys  map[string][]string
}

// FromValue wraps an already-decoded value. Object keys are ordered
// lexicographically since no source order is available.
func FromValue(v any) *Document {
	return &Document{Value: v, keys: map[string][]string{}}
}

// Keys returns the keys of the object at pointer in document order. Keys added
// after decoding follow in lexicographic order; removed keys are skipped. It
// returns nil when pointer does not address an object.
func (d *Document) Keys(pointer string) []string {
	if d == nil {
		return nil
	}
	m, ok := Lookup(d.Value, pointer).(map[string]any)
	if !ok {
		return nil
	}
	return orderedKeys(m, d.keys[pointer])
}

// Object returns the object at pointer, or nil.
func (d *Document) Object(pointer string) map[string]any {
	if d == nil {
		return nil
	}
	m, _ := Lookup(d.Value, pointer).(map[string]any)
	return m
}

// Clone returns a deep copy. Key order is shared by value, not by reference.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	keys := make(map[string][]string, len(d.keys))
	for p, ks := range d.keys {
		keys[p] = append([]string(nil), ks...)
	}
	return &Document{Value: DeepCopy(d.Value), keys: keys}
}

// DeepCopy copies maps and slices recursively. Scalars are shared.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = DeepCopy(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = DeepCopy(t[i])
		}
		return out
	default:
		return v
	}
}

func orderedKeys(m map[string]any, recorded []string) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]struct{}, len(m))
	for _, k := range recorded {
		if _, ok := m[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	if len(out) == len(m) {
		return out
	}
	var rest []string
	for k := range m {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
