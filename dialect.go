package contractkit

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Dialect is a JSON Schema draft. One dialect applies to a whole schema set.
type Dialect string

const (
	Draft4    Dialect = "draft-04"
	Draft6    Dialect = "draft-06"
	Draft7    Dialect = "draft-07"
	Draft2019 Dialect = "2019-09"
	Draft2020 Dialect = "2020-12"
)

var dialects = map[Dialect]struct {
	draft *jsonschema.Draft
	uri   string
}{
	Draft4:    {jsonschema.Draft4, "http://json-schema.org/draft-04/schema"},
	Draft6:    {jsonschema.Draft6, "http://json-schema.org/draft-06/schema"},
	Draft7:    {jsonschema.Draft7, "http://json-schema.org/draft-07/schema"},
	Draft2019: {jsonschema.Draft2019, "https://json-schema.org/draft/2019-09/schema"},
	Draft2020: {jsonschema.Draft2020, "https://json-schema.org/draft/2020-12/schema"},
}

// ParseDialect accepts the dialect names above; "draft7" style spellings and
// an empty string (draft-07) are accepted too.
func ParseDialect(s string) (Dialect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return Draft7, nil
	case "draft4", "draft-4":
		return Draft4, nil
	case "draft6", "draft-6":
		return Draft6, nil
	case "draft7", "draft-7":
		return Draft7, nil
	case "2019", "draft2019-09", "draft-2019-09":
		return Draft2019, nil
	case "2020", "draft2020-12", "draft-2020-12":
		return Draft2020, nil
	}
	if _, ok := dialects[Dialect(s)]; ok {
		return Dialect(s), nil
	}
	return "", fmt.Errorf("contractkit: unknown dialect %q", s)
}

func (d Dialect) draft() *jsonschema.Draft {
	if e, ok := dialects[d]; ok {
		return e.draft
	}
	return jsonschema.Draft7
}

// matches reports whether a document's "$schema" value names this dialect.
// An empty value always matches.
func (d Dialect) matches(schemaURI string) bool {
	if schemaURI == "" {
		return true
	}
	e, ok := dialects[d]
	if !ok {
		return false
	}
	norm := func(u string) string {
		u = strings.TrimSuffix(strings.TrimSuffix(u, "#"), "/")
		return strings.TrimPrefix(strings.TrimPrefix(u, "https://"), "http://")
	}
	return norm(schemaURI) == norm(e.uri)
}
