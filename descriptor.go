package contractkit

import (
	"strings"

	"github.com/reoring/contractkit/internal/jsondoc"
)

// Kind identifies the reduced shape of a property descriptor.
type Kind int

const (
	KindPrimitive Kind = iota
	KindConst
	KindEnum
	KindRef
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindEnum:
		return "enum"
	case KindRef:
		return "ref"
	case KindArray:
		return "array"
	default:
		return "primitive"
	}
}

// Descriptor is the comparison form of one property node.
type Descriptor struct {
	Kind  Kind
	Type  string      // KindPrimitive: the JSON type, "a|b" for type lists, or "any".
	Value any         // KindConst: the constant. KindEnum: the enum value as written.
	Ref   string      // KindRef
	Items *Descriptor // KindArray; never nil.
}

var anyDescriptor = Descriptor{Kind: KindPrimitive, Type: "any"}

// Describe reduces a property node to a Descriptor. Checks run in order:
// const, enum, $ref, array, type. Anything else is the primitive "any".
func Describe(node any) Descriptor {
	m, ok := node.(map[string]any)
	if !ok {
		return anyDescriptor
	}
	if c, ok := m["const"]; ok {
		return Descriptor{Kind: KindConst, Value: c}
	}
	if e, ok := m["enum"]; ok && e != nil {
		return Descriptor{Kind: KindEnum, Value: e}
	}
	if r, ok := m["$ref"].(string); ok && r != "" {
		return Descriptor{Kind: KindRef, Ref: r}
	}
	switch t := m["type"].(type) {
	case string:
		if t == "array" {
			items := anyDescriptor
			if it, ok := m["items"]; ok && it != nil {
				items = Describe(it)
			}
			return Descriptor{Kind: KindArray, Items: &items}
		}
		if t != "" {
			return Descriptor{Kind: KindPrimitive, Type: t}
		}
	case []any:
		names := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				names = append(names, s)
			}
		}
		if len(names) > 0 {
			return Descriptor{Kind: KindPrimitive, Type: strings.Join(names, "|")}
		}
	}
	return anyDescriptor
}

// String renders the kind-string compared by the diff.
func (d Descriptor) String() string {
	switch d.Kind {
	case KindConst:
		return "const(" + jsondoc.Compact(d.Value) + ")"
	case KindEnum:
		return "enum(" + jsondoc.Compact(d.Value) + ")"
	case KindRef:
		return "$ref(" + d.Ref + ")"
	case KindArray:
		items := anyDescriptor
		if d.Items != nil {
			items = *d.Items
		}
		return "array<" + items.String() + ">"
	default:
		if d.Type == "" {
			return "any"
		}
		return d.Type
	}
}

// Equal reports whether two descriptors reduce to the same kind-string.
func (d Descriptor) Equal(o Descriptor) bool { return d.String() == o.String() }
