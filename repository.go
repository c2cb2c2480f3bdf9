package contractkit

//go:generate mockgen -source=repository.go -destination=internal/mocks/mock_repository.go -package=mocks

import "context"

// Repository loads schemas and fixtures by identity. Load and LoadFixture
// return an error wrapping ErrNotFound when nothing is stored for the pair.
// List returns every stored schema identity sorted by String().
type Repository interface {
	Load(ctx context.Context, id Identity) (*Schema, error)
	List(ctx context.Context) ([]Identity, error)
	LoadFixture(ctx context.Context, id Identity) (*Fixture, error)
}

// FixtureLister is implemented by repositories that can enumerate fixtures.
type FixtureLister interface {
	ListFixtures(ctx context.Context) ([]Identity, error)
}

// SchemaWriter is implemented by repositories that can store new schemas.
// CreateSchema fails with ErrExists when a document for the identity exists.
type SchemaWriter interface {
	CreateSchema(ctx context.Context, s *Schema) error
}
