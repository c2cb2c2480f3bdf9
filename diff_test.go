package contractkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/contractkit"
)

func TestDiffSchemas_AddedOptionalIsAdditive(t *testing.T) {
	old := anonymous(t, `{"properties":{"a":{"type":"string"}},"required":["a"]}`)
	next := anonymous(t, `{"properties":{"a":{"type":"string"},"b":{"type":"number"}},"required":["a"]}`)

	d := contractkit.DiffSchemas(old, next)
	assert.Equal(t, []string{"b"}, d.Added)
	assert.Empty(t, d.Removed)
	assert.Empty(t, d.TypeChanged)
	assert.Empty(t, d.NewRequired)
	assert.Equal(t, contractkit.Additive, contractkit.Classify(d))
}

func TestDiffSchemas_TypeChangeIsBreaking(t *testing.T) {
	old := anonymous(t, `{"properties":{"a":{"type":"string"}}}`)
	next := anonymous(t, `{"properties":{"a":{"type":"number"}}}`)

	d := contractkit.DiffSchemas(old, next)
	assert.Equal(t, []contractkit.TypeChange{{Property: "a", From: "string", To: "number"}}, d.TypeChanged)
	assert.Equal(t, contractkit.Breaking, contractkit.Classify(d))
}

func TestDiffSchemas_SelfIsEmpty(t *testing.T) {
	docs := []string{
		`{}`,
		`{"properties":{}}`,
		`{"properties":{"a":{"type":"string"},"b":{"type":"array","items":{"enum":[1,2]}}},"required":["a","b"]}`,
	}
	for _, doc := range docs {
		s := anonymous(t, doc)
		d := contractkit.DiffSchemas(s, s)
		assert.True(t, d.Empty(), doc)
		assert.Nil(t, d.Identity)
		assert.Equal(t, contractkit.Additive, contractkit.Classify(d), doc)
	}
}

func TestDiffSchemas_OrderFollowsDocuments(t *testing.T) {
	old := anonymous(t, `{"properties":{"z":{},"m":{"type":"string"},"a":{"type":"string"},"gone2":{},"gone1":{}}}`)
	next := anonymous(t, `{"properties":{"y":{},"m":{"type":"number"},"a":{"type":"boolean"},"b":{},"z":{}},"required":["b","y"]}`)

	d := contractkit.DiffSchemas(old, next)
	assert.Equal(t, []string{"y", "b"}, d.Added)
	assert.Equal(t, []string{"gone2", "gone1"}, d.Removed)
	require.Len(t, d.TypeChanged, 2)
	assert.Equal(t, "m", d.TypeChanged[0].Property)
	assert.Equal(t, "a", d.TypeChanged[1].Property)
	assert.Equal(t, []string{"y", "b"}, d.NewRequired, "new schema's property order")
}

func TestDiffSchemas_RequiredIsOneDirectional(t *testing.T) {
	old := anonymous(t, `{"properties":{"a":{},"b":{}},"required":["a","b"]}`)
	next := anonymous(t, `{"properties":{"a":{},"b":{}},"required":["a"]}`)

	d := contractkit.DiffSchemas(old, next)
	assert.True(t, d.Empty(), "loosened requiredness is not reported")
	assert.Equal(t, contractkit.Additive, contractkit.Classify(d))

	d = contractkit.DiffSchemas(next, old)
	assert.Equal(t, []string{"b"}, d.NewRequired)
	assert.Equal(t, contractkit.Breaking, contractkit.Classify(d))
}

func TestDiffSchemas_UndeclaredRequiredFollowsDeclared(t *testing.T) {
	old := anonymous(t, `{"properties":{"a":{}}}`)
	next := anonymous(t, `{"properties":{"a":{},"b":{}},"required":["ghost","b","a","b"]}`)

	d := contractkit.DiffSchemas(old, next)
	assert.Equal(t, []string{"a", "b", "ghost"}, d.NewRequired)
}

func TestDiffSchemas_IsShallow(t *testing.T) {
	old := anonymous(t, `{"properties":{"o":{"type":"object","properties":{"x":{"type":"string"}}}}}`)
	next := anonymous(t, `{"properties":{"o":{"type":"object","properties":{"x":{"type":"number"}},"required":["x"]}}}`)

	d := contractkit.DiffSchemas(old, next)
	assert.True(t, d.Empty())
}

func TestDiffSchemas_RefTargetChange(t *testing.T) {
	old := anonymous(t, `{"properties":{"r":{"$ref":"`+idBase+`p.v1.schema.json"}}}`)
	next := anonymous(t, `{"properties":{"r":{"$ref":"`+idBase+`p.v2.schema.json"}}}`)

	d := contractkit.DiffSchemas(old, next)
	require.Len(t, d.TypeChanged, 1)
	assert.Equal(t, "$ref("+idBase+"p.v2.schema.json)", d.TypeChanged[0].To)
}

func TestDiffSchemas_NilIsEmptySchema(t *testing.T) {
	s := anonymous(t, `{"properties":{"a":{}},"required":["a"]}`)

	d := contractkit.DiffSchemas(nil, s)
	assert.Equal(t, []string{"a"}, d.Added)
	assert.Equal(t, []string{"a"}, d.NewRequired)

	d = contractkit.DiffSchemas(s, nil)
	assert.Equal(t, []string{"a"}, d.Removed)

	assert.True(t, contractkit.DiffSchemas(nil, nil).Empty())
}

func TestDiffSchemas_IdentityRelabel(t *testing.T) {
	v1 := mustSchema(t, "x.v1", `{"properties":{"schema":{"const":"x.v1"},"a":{"type":"string"}},"required":["schema","a"]}`)
	v2 := mustSchema(t, "x.v2", `{"properties":{"schema":{"const":"x.v2"},"a":{"type":"string"}},"required":["schema","a"]}`)

	d := contractkit.DiffSchemas(v1, v2)
	assert.True(t, d.Empty())
	require.NotNil(t, d.Identity)
	assert.Equal(t, contractkit.TypeChange{Property: "schema", From: `const("x.v1")`, To: `const("x.v2")`}, *d.Identity)
	assert.Equal(t, contractkit.Additive, contractkit.Classify(d))
}

func TestDiffSchemas_ForeignConstIsTypeChange(t *testing.T) {
	// Only a const matching each side's own identity counts as a relabel.
	old := anonymous(t, `{"properties":{"schema":{"const":"x.v1"}}}`)
	next := anonymous(t, `{"properties":{"schema":{"const":"x.v2"}}}`)

	d := contractkit.DiffSchemas(old, next)
	assert.Nil(t, d.Identity)
	require.Len(t, d.TypeChanged, 1)
	assert.Equal(t, contractkit.Breaking, contractkit.Classify(d))
}
