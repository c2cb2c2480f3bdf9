package contractkit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/reoring/contractkit/internal/metrics"
)

// Engine is the caller-owned context for schema operations. It loads the
// schema set from its Repository on first need and keeps it, together with
// the compiled validators, until Reset or a Bump.
type Engine struct {
	repo    Repository
	opts    options
	metrics *metrics.Collector

	mu        sync.Mutex
	set       *SchemaSet
	validator *Validator
}

// NewEngine returns an Engine over repo.
func NewEngine(repo Repository, opts ...Option) *Engine {
	o := buildOptions(opts)
	return &Engine{repo: repo, opts: o, metrics: o.metrics()}
}

// SchemaSet returns the full schema set, loading it on first call.
func (e *Engine) SchemaSet(ctx context.Context) (*SchemaSet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.schemaSetLocked(ctx)
}

func (e *Engine) schemaSetLocked(ctx context.Context) (*SchemaSet, error) {
	if e.set != nil {
		return e.set, nil
	}
	set, err := LoadSchemaSet(ctx, e.repo)
	if err != nil {
		return nil, err
	}
	e.set = set
	e.opts.logger.Info("schema set loaded", zap.Int("schemas", set.Len()))
	return set, nil
}

// Validator returns the validator over the full schema set.
func (e *Engine) Validator(ctx context.Context) (*Validator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.validator != nil {
		return e.validator, nil
	}
	set, err := e.schemaSetLocked(ctx)
	if err != nil {
		return nil, err
	}
	v, err := newValidator(set, e.opts, e.metrics)
	if err != nil {
		return nil, err
	}
	e.validator = v
	return v, nil
}

// Reset drops the cached schema set and validators.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.set, e.validator = nil, nil
	e.mu.Unlock()
}

// Load returns the schema for id, from the loaded set when available.
func (e *Engine) Load(ctx context.Context, id Identity) (*Schema, error) {
	e.mu.Lock()
	set := e.set
	e.mu.Unlock()
	if s, ok := set.Get(id); ok {
		return s, nil
	}
	return e.repo.Load(ctx, id)
}

// List returns every stored schema identity in lexicographic order.
func (e *Engine) List(ctx context.Context) ([]Identity, error) {
	return e.repo.List(ctx)
}

// Validate checks instance against the schema named ident. See
// Validator.Validate.
func (e *Engine) Validate(ctx context.Context, ident string, instance any) (ValidationResult, error) {
	v, err := e.Validator(ctx)
	if err != nil {
		return ValidationResult{}, err
	}
	return v.Validate(ident, instance)
}

// Diff loads name.from and name.to and classifies the structural change.
func (e *Engine) Diff(ctx context.Context, name, from, to string) (Diff, Classification, error) {
	oldS, newS, err := e.loadPair(ctx, name, from, to)
	if err != nil {
		return Diff{}, "", err
	}
	d := DiffSchemas(oldS, newS)
	return d, Classify(d), nil
}

// CheckCompatibility runs the fixture replay check for name.from -> name.to.
func (e *Engine) CheckCompatibility(ctx context.Context, name, from, to string) (CompatResult, error) {
	return (&Checker{engine: e}).Check(ctx, name, from, to)
}

// Bump derives name.to from name.from and stores it. The repository must
// implement SchemaWriter. It fails with ErrNotFound when the source is
// missing and ErrExists when the destination is already stored.
func (e *Engine) Bump(ctx context.Context, name, from, to string) (*Schema, error) {
	w, ok := e.repo.(SchemaWriter)
	if !ok {
		return nil, errors.New("contractkit: repository is read-only")
	}
	fromID, err := NewIdentity(name, from)
	if err != nil {
		return nil, err
	}
	toID, err := NewIdentity(name, to)
	if err != nil {
		return nil, err
	}
	src, err := e.repo.Load(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if _, err := e.repo.Load(ctx, toID); err == nil {
		return nil, fmt.Errorf("contractkit: schema %s: %w", toID, ErrExists)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	bumped, err := Bump(src, name, from, to)
	if err != nil {
		return nil, err
	}
	if err := w.CreateSchema(ctx, bumped); err != nil {
		return nil, err
	}
	e.Reset()
	e.opts.logger.Info("schema bumped", zap.Stringer("from", fromID), zap.Stringer("to", toID))
	return bumped, nil
}

// FixtureResult is the outcome of validating one stored fixture against the
// schema of its own identity.
type FixtureResult struct {
	Identity      Identity
	MissingSchema bool
	Result        ValidationResult
}

// ValidateFixtures validates every stored fixture against its own schema, in
// identity order. The repository must implement FixtureLister.
func (e *Engine) ValidateFixtures(ctx context.Context) ([]FixtureResult, error) {
	lister, ok := e.repo.(FixtureLister)
	if !ok {
		return nil, errors.New("contractkit: repository cannot list fixtures")
	}
	ids, err := lister.ListFixtures(ctx)
	if err != nil {
		return nil, err
	}
	v, err := e.Validator(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FixtureResult, 0, len(ids))
	for _, id := range ids {
		if _, ok := v.set.Get(id); !ok {
			out = append(out, FixtureResult{Identity: id, MissingSchema: true, Result: unknownSchema(id.String())})
			continue
		}
		f, err := e.repo.LoadFixture(ctx, id)
		if err != nil {
			return nil, err
		}
		res, err := v.ValidateIdentity(id, f.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, FixtureResult{Identity: id, Result: res})
	}
	return out, nil
}

func (e *Engine) loadPair(ctx context.Context, name, from, to string) (*Schema, *Schema, error) {
	fromID, err := NewIdentity(name, from)
	if err != nil {
		return nil, nil, err
	}
	toID, err := NewIdentity(name, to)
	if err != nil {
		return nil, nil, err
	}
	oldS, err := e.Load(ctx, fromID)
	if err != nil {
		return nil, nil, err
	}
	newS, err := e.Load(ctx, toID)
	if err != nil {
		return nil, nil, err
	}
	return oldS, newS, nil
}
