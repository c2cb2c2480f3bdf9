package contractkit

// Package contractkit manages versioned data contracts written as JSON Schema
// documents:
//
// - Validation of instances against a schema set compiled with one fixed dialect
// - Structural diffs between two versions of a schema and an ADDITIVE/BREAKING verdict
// - Empirical compatibility checks that replay an old version's fixture against the new schema
// - Mechanical version bumps that relabel a schema's identity
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Storage sits behind the Repository interface; store/ provides directory and in-memory stores.
// - Expected failures (unknown schema, constraint violations) are returned as data, never as errors.
//
// Typical usage:
//
//  repo := store.NewDir("schemas", "fixtures", contractkit.SchemaOptions{})
//  eng := contractkit.NewEngine(repo, contractkit.WithLogger(log))
//
//  d, verdict, err := eng.Diff(ctx, "resolved_map", "v1", "v2")
//  fmt.Println(contractkit.FormatDiff(d, verdict))
//
//  res, err := eng.CheckCompatibility(ctx, "resolved_map", "v1", "v2")
//  if !res.Compatible {
//      for _, it := range res.Errors { fmt.Println(it) }
//  }
