package contractkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/contractkit"
)

func TestFormatDiff_AllSections(t *testing.T) {
	d := contractkit.Diff{
		Added:       []string{"b", "c"},
		Removed:     []string{"old"},
		TypeChanged: []contractkit.TypeChange{{Property: "a", From: "string", To: "number"}},
		NewRequired: []string{"b"},
	}
	want := "Classification: BREAKING\n" +
		"\n" +
		"Added properties:\n" +
		"  + b\n" +
		"  + c\n" +
		"Removed properties:\n" +
		"  - old\n" +
		"Type changes:\n" +
		"  ~ a: string → number\n" +
		"New required fields:\n" +
		"  ! b"
	assert.Equal(t, want, contractkit.FormatDiff(d, contractkit.Classify(d)))
}

func TestFormatDiff_NoChanges(t *testing.T) {
	got := contractkit.FormatDiff(contractkit.Diff{}, contractkit.Additive)
	assert.Equal(t, "Classification: ADDITIVE\n\nNo property-level changes detected.", got)
}

func TestFormatDiff_IdentityRelabel(t *testing.T) {
	d := contractkit.Diff{Identity: &contractkit.TypeChange{Property: "schema", From: `const("x.v1")`, To: `const("x.v2")`}}
	want := "Classification: ADDITIVE\n" +
		"\n" +
		"Identity relabel:\n" +
		"  = schema: const(\"x.v1\") → const(\"x.v2\")\n" +
		"No property-level changes detected."
	assert.Equal(t, want, contractkit.FormatDiff(d, contractkit.Additive))
}
