package contractkit

import (
	"fmt"

	j "github.com/goccy/go-json"

	"github.com/reoring/contractkit/internal/jsondoc"
)

const (
	// DefaultIdentityField is the property carrying "name.version" in schemas and fixtures.
	DefaultIdentityField = "schema"
	// DefaultIDBase prefixes derived $id values: {base}{name}.{version}.schema.json.
	DefaultIDBase = "https://forge-contracts.amerzel.dev/"
)

// Format is the serialization of a stored document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// SchemaOptions controls how schema documents are interpreted.
type SchemaOptions struct {
	IdentityField string
	IDBase        string
}

func (o SchemaOptions) withDefaults() SchemaOptions {
	if o.IdentityField == "" {
		o.IdentityField = DefaultIdentityField
	}
	if o.IDBase == "" {
		o.IDBase = DefaultIDBase
	}
	return o
}

// Schema is one loaded (name, version) schema document. It is immutable once
// constructed; Document and friends expose shared state that callers must not
// modify.
type Schema struct {
	Identity      Identity
	ID            string // $id, or derived from IDBase when the document has none.
	Title         string
	IdentityField string

	doc *jsondoc.Document
}

// ParseSchema decodes a JSON or YAML schema document. If the identity property
// declares a string const, it must equal id.String().
func ParseSchema(id Identity, data []byte, format Format, opts SchemaOptions) (*Schema, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("contractkit: schema %s: %w", id, err)
	}
	return newSchema(id, doc, opts)
}

// SchemaFromMap builds a Schema from an already decoded document. Properties
// are ordered lexicographically.
func SchemaFromMap(id Identity, doc map[string]any, opts SchemaOptions) (*Schema, error) {
	return newSchema(id, jsondoc.FromValue(jsondoc.DeepCopy(doc)), opts)
}

func newSchema(id Identity, doc *jsondoc.Document, opts SchemaOptions) (*Schema, error) {
	root, ok := doc.Value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("contractkit: schema %s: document is not an object", id)
	}
	opts = opts.withDefaults()
	s := &Schema{Identity: id, IdentityField: opts.IdentityField, doc: doc}
	s.ID, _ = root["$id"].(string)
	if s.ID == "" && !id.IsZero() {
		s.ID = opts.IDBase + id.String() + ".schema.json"
	}
	s.Title, _ = root["title"].(string)
	if c, ok := s.identityConst(); ok && !id.IsZero() && c != id.String() {
		return nil, fmt.Errorf("%w: schema %s declares %s const %q", ErrIdentityMismatch, id, s.IdentityField, c)
	}
	return s, nil
}

func decodeDocument(data []byte, format Format) (*jsondoc.Document, error) {
	if format == FormatYAML {
		return jsondoc.ParseYAML(data)
	}
	return jsondoc.ParseJSON(data)
}

// Document returns the decoded root object.
func (s *Schema) Document() map[string]any {
	if s == nil {
		return nil
	}
	m, _ := s.doc.Value.(map[string]any)
	return m
}

// PropertyNames returns the top-level property names in document order.
func (s *Schema) PropertyNames() []string {
	if s == nil {
		return nil
	}
	return s.doc.Keys("/properties")
}

// Property returns the descriptor node of a top-level property.
func (s *Schema) Property(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	props := s.doc.Object("/properties")
	v, ok := props[name]
	return v, ok
}

// Required returns the names listed under the top-level "required" keyword.
func (s *Schema) Required() []string {
	req, _ := s.Document()["required"].([]any)
	var names []string
	for _, r := range req {
		if n, ok := r.(string); ok {
			names = append(names, n)
		}
	}
	return names
}

// Dialect returns the document's "$schema" value, if any.
func (s *Schema) Dialect() string {
	d, _ := s.Document()["$schema"].(string)
	return d
}

// Encode renders the document as indented JSON in its original key order.
func (s *Schema) Encode() ([]byte, error) {
	return s.doc.Encode("  ")
}

// MarshalJSON renders the document compactly.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return j.Marshal(s.Document())
}

func (s *Schema) identityConst() (string, bool) {
	node, ok := s.Property(s.IdentityField)
	if !ok {
		return "", false
	}
	m, _ := node.(map[string]any)
	c, ok := m["const"].(string)
	return c, ok
}

// Fixture is a golden example document recorded for one schema version.
type Fixture struct {
	Identity Identity
	Value    any
}

// ParseFixture decodes a JSON or YAML fixture.
func ParseFixture(id Identity, data []byte, format Format) (*Fixture, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("contractkit: fixture %s: %w", id, err)
	}
	return &Fixture{Identity: id, Value: doc.Value}, nil
}

// Relabel returns a deep copy of the fixture value whose identity field is set
// to to.String(). Non-object fixtures are copied unchanged.
func (f *Fixture) Relabel(field string, to Identity) any {
	v := jsondoc.DeepCopy(f.Value)
	if m, ok := v.(map[string]any); ok {
		m[field] = to.String()
	}
	return v
}
