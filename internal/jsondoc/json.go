package jsondoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// DuplicateKeyError reports a key that appears twice in the same object. JSON
// input carries only the object's Path; YAML input also carries positions.
type DuplicateKeyError struct {
	Key       string
	Path      string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
	}
	return fmt.Sprintf("duplicate key %q in object %s", e.Key, Render(e.Path))
}

// ErrTrailingData is returned when a JSON document is followed by more values.
var ErrTrailingData = errors.New("jsondoc: unexpected data after top-level value")

// ParseJSON decodes a single JSON document with goccy/go-json's token stream.
// Numbers decode as float64. Duplicate object keys fail with *DuplicateKeyError.
func ParseJSON(data []byte) (*Document, error) {
	w := &jsonWalker{dec: j.NewDecoder(bytes.NewReader(data)), keys: map[string][]string{}}
	tok, err := w.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("jsondoc: empty document")
		}
		return nil, fmt.Errorf("jsondoc: %w", err)
	}
	v, err := w.value(tok, Root)
	if err != nil {
		return nil, err
	}
	if _, err := w.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return &Document{Value: v, keys: w.keys}, nil
}

type jsonWalker struct {
	dec  *j.Decoder
	keys map[string][]string
}

func (w *jsonWalker) value(tok j.Token, ptr string) (any, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return w.object(ptr)
		case '[':
			return w.array(ptr)
		}
		return nil, fmt.Errorf("jsondoc: unexpected delimiter %q at %s", rune(t), Render(ptr))
	case j.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("jsondoc: number at %s: %w", Render(ptr), err)
		}
		return f, nil
	default:
		// string, float64, bool, nil
		return t, nil
	}
}

func (w *jsonWalker) object(ptr string) (any, error) {
	m := map[string]any{}
	var order []string
	for w.dec.More() {
		kt, err := w.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("jsondoc: %w", err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("jsondoc: expected object key at %s", Render(ptr))
		}
		if _, dup := m[key]; dup {
			return nil, &DuplicateKeyError{Key: key, Path: ptr}
		}
		vt, err := w.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("jsondoc: %w", err)
		}
		v, err := w.value(vt, Field(ptr, key))
		if err != nil {
			return nil, err
		}
		m[key] = v
		order = append(order, key)
	}
	if _, err := w.dec.Token(); err != nil {
		return nil, fmt.Errorf("jsondoc: %w", err)
	}
	w.keys[ptr] = order
	return m, nil
}

func (w *jsonWalker) array(ptr string) (any, error) {
	arr := []any{}
	for i := 0; w.dec.More(); i++ {
		tok, err := w.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("jsondoc: %w", err)
		}
		v, err := w.value(tok, Index(ptr, i))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := w.dec.Token(); err != nil {
		return nil, fmt.Errorf("jsondoc: %w", err)
	}
	return arr, nil
}

// Normalize converts an arbitrary Go value (structs, typed slices, integers)
// into the JSON-like value model by a goccy/go-json round trip.
func Normalize(v any) (any, error) {
	b, err := j.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := j.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Compact renders v as compact JSON with sorted object keys.
func Compact(v any) string {
	b, err := j.MarshalNoEscape(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
