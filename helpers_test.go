package contractkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/contractkit"
)

const idBase = "https://forge-contracts.amerzel.dev/"

func mustSchema(t *testing.T, ident, doc string) *contractkit.Schema {
	t.Helper()
	s, err := contractkit.ParseSchema(contractkit.MustParseIdentity(ident), []byte(doc), contractkit.FormatJSON, contractkit.SchemaOptions{})
	require.NoError(t, err)
	return s
}

func mustFixture(t *testing.T, ident, doc string) *contractkit.Fixture {
	t.Helper()
	f, err := contractkit.ParseFixture(contractkit.MustParseIdentity(ident), []byte(doc), contractkit.FormatJSON)
	require.NoError(t, err)
	return f
}

// anonymous builds a schema without identity, for pure diff tests.
func anonymous(t *testing.T, doc string) *contractkit.Schema {
	t.Helper()
	s, err := contractkit.ParseSchema(contractkit.Identity{}, []byte(doc), contractkit.FormatJSON, contractkit.SchemaOptions{})
	require.NoError(t, err)
	return s
}
