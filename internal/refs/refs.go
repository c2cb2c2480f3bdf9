package refs

import "sort"

// dataKeywords hold instance data rather than subschemas; a "$ref" key inside
// them is a literal value and is not followed.
var dataKeywords = map[string]struct{}{
	"const":    {},
	"enum":     {},
	"default":  {},
	"examples": {},
}

// Scan walks a decoded schema document and returns every "$ref" value and
// every embedded (non-root) "$id", in deterministic order.
func Scan(doc any) (refs []string, ids []string) {
	var walk func(node any, root bool)
	walk = func(node any, root bool) {
		switch t := node.(type) {
		case map[string]any:
			if r, ok := t["$ref"].(string); ok {
				refs = append(refs, r)
			}
			if id, ok := t["$id"].(string); ok && !root {
				ids = append(ids, id)
			}
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if _, skip := dataKeywords[k]; skip {
					continue
				}
				walk(t[k], false)
			}
		case []any:
			for _, it := range t {
				walk(it, false)
			}
		}
	}
	walk(doc, true)
	return refs, ids
}
