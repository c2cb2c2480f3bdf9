package contractkit_test

import (
	"fmt"
	"strings"
	"testing"

	jschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/contractkit"
	"github.com/reoring/contractkit/internal/jsondoc"
)

// ---- Helpers ----

const orderSchema = `{
  "$id": "https://forge-contracts.amerzel.dev/order.v1.schema.json",
  "type": "object",
  "properties": {
    "schema": {"const": "order.v1"},
    "id": {"type": "string", "minLength": 1},
    "total": {"type": "number", "minimum": 0},
    "lines": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["schema", "id", "total"],
  "additionalProperties": false
}`

func orderJSON() []byte {
	return []byte(`{"schema":"order.v1","id":"o_1","total":12.5,"lines":["a","b","c"]}`)
}

func mustValidator(tb testing.TB) *contractkit.Validator {
	tb.Helper()
	s, err := contractkit.ParseSchema(contractkit.MustParseIdentity("order.v1"), []byte(orderSchema), contractkit.FormatJSON, contractkit.SchemaOptions{})
	if err != nil {
		tb.Fatalf("schema parse failed: %v", err)
	}
	set, err := contractkit.NewSchemaSet(s)
	if err != nil {
		tb.Fatalf("schema set failed: %v", err)
	}
	v, err := contractkit.NewValidator(set)
	if err != nil {
		tb.Fatalf("validator failed: %v", err)
	}
	return v
}

// wideSchema returns a schema document with n properties, every third one required.
func wideSchema(n int, typ string) string {
	var b strings.Builder
	b.WriteString(`{"properties":{`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `"p%d":{"type":%q}`, i, typ)
	}
	b.WriteString(`},"required":[`)
	for i := 0; i < n; i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `"p%d"`, i)
	}
	b.WriteString(`]}`)
	return b.String()
}

// ---- Benchmarks ----

// Validate with the compiled validator already cached.
func Benchmark_Validate_Cached_Small(b *testing.B) {
	v := mustValidator(b)
	doc, err := jsondoc.ParseJSON(orderJSON())
	if err != nil {
		b.Fatal(err)
	}
	if _, err := v.Validate("order.v1", doc.Value); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := v.Validate("order.v1", doc.Value)
		if err != nil || !res.Valid {
			b.Fatalf("unexpected result: %v %v", res.Errors, err)
		}
	}
}

// Validate on a fresh validator each time, paying for compilation.
func Benchmark_Validate_Cold_Small(b *testing.B) {
	doc, err := jsondoc.ParseJSON(orderJSON())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mustValidator(b).Validate("order.v1", doc.Value); err != nil {
			b.Fatal(err)
		}
	}
}

// Same condition on jsonschema/v5 directly, for the wrapper's overhead.
func Benchmark_Validate_jsonschema_v5_Small(b *testing.B) {
	comp := jschema.MustCompileString("mem:order", orderSchema)
	doc, err := jsondoc.ParseJSON(orderJSON())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := comp.Validate(doc.Value); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_DiffSchemas_Wide(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("props=%d", n), func(b *testing.B) {
			id := contractkit.Identity{}
			old, err := contractkit.ParseSchema(id, []byte(wideSchema(n, "string")), contractkit.FormatJSON, contractkit.SchemaOptions{})
			if err != nil {
				b.Fatal(err)
			}
			next, err := contractkit.ParseSchema(id, []byte(wideSchema(n, "number")), contractkit.FormatJSON, contractkit.SchemaOptions{})
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d := contractkit.DiffSchemas(old, next)
				if len(d.TypeChanged) != n {
					b.Fatalf("got %d type changes", len(d.TypeChanged))
				}
			}
		})
	}
}

func Benchmark_ParseSchema_OrderPreserving(b *testing.B) {
	data := []byte(wideSchema(200, "string"))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jsondoc.ParseJSON(data); err != nil {
			b.Fatal(err)
		}
	}
}
