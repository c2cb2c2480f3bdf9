package contractkit

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/reoring/contractkit/internal/refs"
)

// SchemaSet is a group of schemas registered together so that references
// between them resolve. It is immutable after construction.
type SchemaSet struct {
	byIdentity map[Identity]*Schema
	byID       map[string]*Schema // root and embedded $id -> owning schema
	order      []Identity
}

// NewSchemaSet registers schemas. It fails with ErrDuplicateID when two
// identities share a document URI and with ErrUnresolvedRef when a $ref
// names a document that is not in the set.
func NewSchemaSet(schemas ...*Schema) (*SchemaSet, error) {
	set := &SchemaSet{
		byIdentity: make(map[Identity]*Schema, len(schemas)),
		byID:       make(map[string]*Schema, len(schemas)),
	}
	for _, s := range schemas {
		if s == nil {
			continue
		}
		if s.Identity.String() == "" {
			return nil, fmt.Errorf("%w: schema without identity", ErrInvalidIdentity)
		}
		if _, dup := set.byIdentity[s.Identity]; dup {
			return nil, fmt.Errorf("%w: identity %s registered twice", ErrDuplicateID, s.Identity)
		}
		set.byIdentity[s.Identity] = s
		set.order = append(set.order, s.Identity)
		uris := []string{s.ID}
		_, embedded := refs.Scan(s.Document())
		for _, e := range embedded {
			if u, ok := resolveURI(s.ID, e); ok {
				uris = append(uris, u)
			}
		}
		for _, u := range uris {
			if prev, dup := set.byID[documentURI(u)]; dup && prev != s {
				return nil, fmt.Errorf("%w: %s and %s both declare %q", ErrDuplicateID, prev.Identity, s.Identity, u)
			}
			set.byID[documentURI(u)] = s
		}
	}
	sort.Slice(set.order, func(i, k int) bool { return set.order[i].String() < set.order[k].String() })

	for _, id := range set.order {
		if err := set.checkRefs(set.byIdentity[id]); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// LoadSchemaSet loads every schema the repository lists.
func LoadSchemaSet(ctx context.Context, repo Repository) (*SchemaSet, error) {
	ids, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	schemas := make([]*Schema, 0, len(ids))
	for _, id := range ids {
		s, err := repo.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return NewSchemaSet(schemas...)
}

func (set *SchemaSet) checkRefs(s *Schema) error {
	targets, _ := refs.Scan(s.Document())
	for _, r := range targets {
		u, ok := resolveURI(s.ID, r)
		if !ok {
			return fmt.Errorf("%w: %s: malformed $ref %q", ErrUnresolvedRef, s.Identity, r)
		}
		doc := documentURI(u)
		if doc == "" || doc == documentURI(s.ID) || isMetaschema(doc) {
			continue
		}
		if _, ok := set.byID[doc]; !ok {
			return fmt.Errorf("%w: %s references %q", ErrUnresolvedRef, s.Identity, r)
		}
	}
	return nil
}

// Get returns the schema registered for id.
func (set *SchemaSet) Get(id Identity) (*Schema, bool) {
	if set == nil {
		return nil, false
	}
	s, ok := set.byIdentity[id]
	return s, ok
}

// Identities returns the registered identities in lexicographic order.
func (set *SchemaSet) Identities() []Identity {
	if set == nil {
		return nil
	}
	return append([]Identity(nil), set.order...)
}

// Schemas returns the registered schemas in identity order.
func (set *SchemaSet) Schemas() []*Schema {
	if set == nil {
		return nil
	}
	out := make([]*Schema, len(set.order))
	for i, id := range set.order {
		out[i] = set.byIdentity[id]
	}
	return out
}

// Len returns the number of registered schemas.
func (set *SchemaSet) Len() int {
	if set == nil {
		return 0
	}
	return len(set.order)
}

func resolveURI(base, ref string) (string, bool) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if base == "" {
		return r.String(), true
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	return b.ResolveReference(r).String(), true
}

// documentURI strips the fragment.
func documentURI(u string) string {
	doc, _, _ := strings.Cut(u, "#")
	return doc
}

func isMetaschema(doc string) bool {
	for d := range dialects {
		if d.matches(doc) {
			return true
		}
	}
	return false
}
