package contractkit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reoring/contractkit"
	"github.com/reoring/contractkit/store"
)

func TestEngine_BumpStoresNewVersion(t *testing.T) {
	repo := store.NewMemory(mustSchema(t, "resolved_map.v1", resolvedMapV1))
	eng := contractkit.NewEngine(repo)
	ctx := context.Background()

	out, err := eng.Bump(ctx, "resolved_map", "v1", "v2")
	require.NoError(t, err)
	assert.Equal(t, "resolved_map.v2", out.Identity.String())

	ids, err := eng.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []contractkit.Identity{
		contractkit.MustParseIdentity("resolved_map.v1"),
		contractkit.MustParseIdentity("resolved_map.v2"),
	}, ids)

	d, verdict, err := eng.Diff(ctx, "resolved_map", "v1", "v2")
	require.NoError(t, err)
	assert.True(t, d.Empty())
	assert.Equal(t, contractkit.Additive, verdict)
}

func TestEngine_BumpRefusals(t *testing.T) {
	repo := store.NewMemory(mustSchema(t, "x.v1", xV1), mustSchema(t, "x.v2", xV2))
	eng := contractkit.NewEngine(repo)
	ctx := context.Background()

	_, err := eng.Bump(ctx, "x", "v0", "v3")
	assert.True(t, errors.Is(err, contractkit.ErrNotFound), "missing source")

	_, err = eng.Bump(ctx, "x", "v1", "v2")
	assert.True(t, errors.Is(err, contractkit.ErrExists), "destination collision")
}

func TestEngine_BumpInvalidatesCache(t *testing.T) {
	repo := store.NewMemory(mustSchema(t, "x.v1", xV1))
	eng := contractkit.NewEngine(repo)
	ctx := context.Background()

	res, err := eng.Validate(ctx, "x.v2", map[string]any{})
	require.NoError(t, err)
	require.Equal(t, contractkit.CodeUnknownSchema, res.Errors[0].Code)

	_, err = eng.Bump(ctx, "x", "v1", "v2")
	require.NoError(t, err)

	res, err = eng.Validate(ctx, "x.v2", map[string]any{"schema": "x.v2", "a": "hi"})
	require.NoError(t, err)
	assert.True(t, res.Valid, "%v", res.Errors)
}

func TestEngine_ValidateFixtures(t *testing.T) {
	repo := store.NewMemory(mustSchema(t, "x.v1", xV1), mustSchema(t, "x.v2", xV2))
	repo.PutFixture(mustFixture(t, "x.v1", `{"schema":"x.v1","a":"hi"}`))
	repo.PutFixture(mustFixture(t, "x.v2", `{"schema":"x.v2","a":"hi"}`))
	repo.PutFixture(mustFixture(t, "y.v1", `{}`))

	results, err := contractkit.NewEngine(repo).ValidateFixtures(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Result.Valid)
	assert.False(t, results[1].Result.Valid)
	assert.False(t, results[1].MissingSchema)
	assert.True(t, results[2].MissingSchema)
	assert.Equal(t, "y.v1", results[2].Identity.String())
}

func TestEngine_LogsCompatVerdict(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	repo := compatRepo(t, "x.v1", xV1, "x.v2", xV2)
	eng := contractkit.NewEngine(repo, contractkit.WithLogger(zap.New(core)))

	_, err := eng.CheckCompatibility(context.Background(), "x", "v1", "v2")
	require.NoError(t, err)

	entries := logs.FilterMessage("compatibility checked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, false, entries[0].ContextMap()["compatible"])
	assert.Equal(t, 1, logs.FilterMessage("schema set loaded").Len())
}

func TestEngine_SchemaSetErrorsSurface(t *testing.T) {
	bad := mustSchema(t, "x.v1", `{"properties":{"p":{"$ref":"`+idBase+`missing.v1.schema.json"}}}`)
	eng := contractkit.NewEngine(store.NewMemory(bad))

	_, err := eng.Validate(context.Background(), "x.v1", map[string]any{})
	assert.True(t, errors.Is(err, contractkit.ErrUnresolvedRef))
}
