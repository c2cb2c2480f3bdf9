package contractkit_test

import (
	"context"
	"fmt"

	"github.com/reoring/contractkit"
	"github.com/reoring/contractkit/store"
)

func ExampleEngine() {
	parse := func(ident, doc string) *contractkit.Schema {
		s, err := contractkit.ParseSchema(contractkit.MustParseIdentity(ident), []byte(doc), contractkit.FormatJSON, contractkit.SchemaOptions{})
		if err != nil {
			panic(err)
		}
		return s
	}
	repo := store.NewMemory(
		parse("user.v1", `{"properties":{"schema":{"const":"user.v1"},"name":{"type":"string"}},"required":["schema","name"]}`),
		parse("user.v2", `{"properties":{"schema":{"const":"user.v2"},"name":{"type":"string"},"email":{"type":"string"}},"required":["schema","name","email"]}`),
	)
	repo.PutFixture(&contractkit.Fixture{
		Identity: contractkit.MustParseIdentity("user.v1"),
		Value:    map[string]any{"schema": "user.v1", "name": "alice"},
	})

	ctx := context.Background()
	eng := contractkit.NewEngine(repo)

	d, verdict, _ := eng.Diff(ctx, "user", "v1", "v2")
	fmt.Println(contractkit.FormatDiff(d, verdict))

	res, _ := eng.CheckCompatibility(ctx, "user", "v1", "v2")
	fmt.Println("compatible:", res.Compatible)
	for _, it := range res.Errors {
		fmt.Println(it.Path, it.Code)
	}
	// Output:
	// Classification: BREAKING
	//
	// Added properties:
	//   + email
	// New required fields:
	//   ! email
	// Identity relabel:
	//   = schema: const("user.v1") → const("user.v2")
	// compatible: false
	// / required
}
