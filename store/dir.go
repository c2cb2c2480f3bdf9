package store

// Package store provides Repository implementations: Dir reads the
// conventional schemas/ and fixtures/ directory layout, Memory keeps
// documents in memory.

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/reoring/contractkit"
)

// Document kinds and the file suffixes they may be stored under. The first
// suffix is the one new documents are written with.
const (
	schemaKind  = "schema"
	fixtureKind = "example"
)

var extensions = []struct {
	ext    string
	format contractkit.Format
}{
	{".json", contractkit.FormatJSON},
	{".yaml", contractkit.FormatYAML},
	{".yml", contractkit.FormatYAML},
}

// Dir is a filesystem Repository. Schemas live in SchemasDir as
// {name}.{version}.schema.json (or .yaml/.yml) and fixtures in FixturesDir as
// {name}.{version}.example.json (or .yaml/.yml). Two documents for the same
// identity are rejected with contractkit.ErrAmbiguous.
type Dir struct {
	SchemasDir  string
	FixturesDir string
	Options     contractkit.SchemaOptions
}

// NewDir returns a Dir store.
func NewDir(schemasDir, fixturesDir string, opts contractkit.SchemaOptions) *Dir {
	return &Dir{SchemasDir: schemasDir, FixturesDir: fixturesDir, Options: opts}
}

// SchemaPath is where CreateSchema writes the schema for id.
func (d *Dir) SchemaPath(id contractkit.Identity) string {
	return filepath.Join(d.SchemasDir, fileName(id, schemaKind, extensions[0].ext))
}

// FixturePath is the JSON path of the fixture for id.
func (d *Dir) FixturePath(id contractkit.Identity) string {
	return filepath.Join(d.FixturesDir, fileName(id, fixtureKind, extensions[0].ext))
}

// Load reads and parses the schema for id.
func (d *Dir) Load(ctx context.Context, id contractkit.Identity) (*contractkit.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, format, err := find(d.SchemasDir, id, schemaKind)
	if err != nil {
		return nil, fmt.Errorf("store: schema %s: %w", id, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: schema %s: %w", id, err)
	}
	return contractkit.ParseSchema(id, data, format, d.Options)
}

// List returns the identities of every schema file, sorted.
func (d *Dir) List(ctx context.Context) ([]contractkit.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scan(d.SchemasDir, schemaKind)
}

// LoadFixture reads and parses the fixture for id.
func (d *Dir) LoadFixture(ctx context.Context, id contractkit.Identity) (*contractkit.Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, format, err := find(d.FixturesDir, id, fixtureKind)
	if err != nil {
		return nil, fmt.Errorf("store: fixture %s: %w", id, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: fixture %s: %w", id, err)
	}
	return contractkit.ParseFixture(id, data, format)
}

// ListFixtures returns the identities of every fixture file, sorted.
func (d *Dir) ListFixtures(ctx context.Context) ([]contractkit.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scan(d.FixturesDir, fixtureKind)
}

// CreateSchema writes s as indented JSON. It never overwrites: any existing
// document for the identity, in any format, yields contractkit.ErrExists.
func (d *Dir) CreateSchema(ctx context.Context, s *contractkit.Schema) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := find(d.SchemasDir, s.Identity, schemaKind); err == nil || errors.Is(err, contractkit.ErrAmbiguous) {
		return fmt.Errorf("store: schema %s: %w", s.Identity, contractkit.ErrExists)
	}
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", s.Identity, err)
	}
	if err := os.MkdirAll(d.SchemasDir, 0o755); err != nil {
		return err
	}
	path := d.SchemaPath(s.Identity)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("store: schema %s: %w", s.Identity, contractkit.ErrExists)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fileName(id contractkit.Identity, kind, ext string) string {
	return id.String() + "." + kind + ext
}

// find locates the single document for id. It returns ErrNotFound when there
// is none and ErrAmbiguous when more than one format is present.
func find(dir string, id contractkit.Identity, kind string) (string, contractkit.Format, error) {
	var (
		found  []string
		format contractkit.Format
	)
	for _, e := range extensions {
		p := filepath.Join(dir, fileName(id, kind, e.ext))
		st, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", 0, err
		}
		if st.IsDir() {
			continue
		}
		found = append(found, p)
		format = e.format
	}
	switch len(found) {
	case 0:
		return "", 0, contractkit.ErrNotFound
	case 1:
		return found[0], format, nil
	default:
		return "", 0, fmt.Errorf("%w: %s", contractkit.ErrAmbiguous, strings.Join(found, ", "))
	}
}

// scan lists identities of documents of the given kind. A missing directory
// is empty. Files whose stem is not a valid identity are ignored.
func scan(dir, kind string) ([]contractkit.Identity, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	seen := map[contractkit.Identity]struct{}{}
	var ids []contractkit.Identity
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		id, ok := parseFileName(ent.Name(), kind)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, k int) bool { return ids[i].String() < ids[k].String() })
	return ids, nil
}

func parseFileName(name, kind string) (contractkit.Identity, bool) {
	for _, e := range extensions {
		suffix := "." + kind + e.ext
		if stem, ok := strings.CutSuffix(name, suffix); ok {
			id, err := contractkit.ParseIdentity(stem)
			return id, err == nil
		}
	}
	return contractkit.Identity{}, false
}
