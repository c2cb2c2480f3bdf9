package contractkit

import (
	"fmt"
	"strings"

	"github.com/reoring/contractkit/internal/jsondoc"
)

// Bump derives the schema for name.to from the schema of name.from. It
// rewrites the first occurrence of "name.from" in $id, title and the identity
// field's const. Everything else, including key order, is copied unchanged.
func Bump(s *Schema, name, from, to string) (*Schema, error) {
	if s == nil {
		return nil, fmt.Errorf("contractkit: bump %s.%s: %w", name, from, ErrNotFound)
	}
	fromID, err := NewIdentity(name, from)
	if err != nil {
		return nil, err
	}
	toID, err := NewIdentity(name, to)
	if err != nil {
		return nil, err
	}
	fromTag, toTag := fromID.String(), toID.String()

	doc := s.doc.Clone()
	root, _ := doc.Value.(map[string]any)
	replace := func(m map[string]any, key string) {
		if v, ok := m[key].(string); ok {
			m[key] = strings.Replace(v, fromTag, toTag, 1)
		}
	}
	replace(root, "$id")
	replace(root, "title")
	if field := doc.Object(jsondoc.Field("/properties", s.IdentityField)); field != nil {
		replace(field, "const")
	}

	out, err := newSchema(toID, doc, SchemaOptions{IdentityField: s.IdentityField})
	if err != nil {
		return nil, err
	}
	if _, ok := root["$id"]; !ok {
		// Derive from the source's $id so a custom base carries over.
		out.ID = strings.Replace(s.ID, fromTag, toTag, 1)
	}
	return out, nil
}
