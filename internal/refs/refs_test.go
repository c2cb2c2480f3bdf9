package refs

import (
	"reflect"
	"testing"
)

func TestScan_CollectsRefsAndNestedIDs(t *testing.T) {
	doc := map[string]any{
		"$id": "https://example.test/root.v1.schema.json",
		"properties": map[string]any{
			"a": map[string]any{"$ref": "https://example.test/other.v1.schema.json"},
			"b": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/item"},
			},
			"c": map[string]any{"const": map[string]any{"$ref": "not-a-ref"}},
		},
		"$defs": map[string]any{
			"item": map[string]any{"$id": "item.json", "type": "string"},
		},
	}
	refs, ids := Scan(doc)
	wantRefs := []string{"https://example.test/other.v1.schema.json", "#/$defs/item"}
	if !reflect.DeepEqual(refs, wantRefs) {
		t.Fatalf("refs = %v, want %v", refs, wantRefs)
	}
	if !reflect.DeepEqual(ids, []string{"item.json"}) {
		t.Fatalf("ids = %v", ids)
	}
}

func TestScan_NonObjectRoot(t *testing.T) {
	refs, ids := Scan(true)
	if len(refs) != 0 || len(ids) != 0 {
		t.Fatalf("expected nothing, got %v %v", refs, ids)
	}
}
