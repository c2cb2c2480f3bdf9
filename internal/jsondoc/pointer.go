package jsondoc

import (
	"strconv"
	"strings"
)

// Root is the JSON Pointer of the whole document.
const Root = ""

// Field appends an escaped object key to pointer (RFC 6901).
func Field(pointer, name string) string {
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return pointer + "/" + esc
}

// Index appends an array index to pointer.
func Index(pointer string, i int) string {
	return pointer + "/" + strconv.Itoa(i)
}

// Unescape reverses the RFC 6901 escaping of a single reference token.
func Unescape(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
}

// Render formats a pointer for display; the document root renders as "/".
func Render(pointer string) string {
	if pointer == "" {
		return "/"
	}
	return pointer
}

// Lookup resolves pointer against v. It returns nil when any step is missing.
func Lookup(v any, pointer string) any {
	if pointer == "" {
		return v
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil
	}
	cur := v
	for _, raw := range strings.Split(pointer[1:], "/") {
		tok := Unescape(raw)
		switch t := cur.(type) {
		case map[string]any:
			nv, ok := t[tok]
			if !ok {
				return nil
			}
			cur = nv
		case []any:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(t) {
				return nil
			}
			cur = t[i]
		default:
			return nil
		}
	}
	return cur
}
