package jsondoc

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
)

// Encode renders the document as indented JSON, writing object keys in their
// recorded order, followed by a trailing newline.
func (d *Document) Encode(indent string) ([]byte, error) {
	var b bytes.Buffer
	if err := d.write(&b, d.Value, Root, indent, 0); err != nil {
		return nil, err
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (d *Document) write(b *bytes.Buffer, v any, ptr, indent string, depth int) error {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{\n")
		keys := orderedKeys(t, d.keys[ptr])
		for i, k := range keys {
			writeIndent(b, indent, depth+1)
			kb, err := j.MarshalNoEscape(k)
			if err != nil {
				return err
			}
			b.Write(kb)
			b.WriteString(": ")
			if err := d.write(b, t[k], Field(ptr, k), indent, depth+1); err != nil {
				return err
			}
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, indent, depth)
		b.WriteByte('}')
	case []any:
		if len(t) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		for i, it := range t {
			writeIndent(b, indent, depth+1)
			if err := d.write(b, it, Index(ptr, i), indent, depth+1); err != nil {
				return err
			}
			if i < len(t)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, indent, depth)
		b.WriteByte(']')
	default:
		sb, err := j.MarshalNoEscape(t)
		if err != nil {
			return fmt.Errorf("jsondoc: encode %s: %w", Render(ptr), err)
		}
		b.Write(sb)
	}
	return nil
}

func writeIndent(b *bytes.Buffer, indent string, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}
