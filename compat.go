package contractkit

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CompatResult is the empirical compatibility verdict for one version pair.
// Errors holds the validation issues verbatim when Compatible is false.
type CompatResult struct {
	From       Identity
	To         Identity
	Compatible bool
	Errors     Issues
}

// Checker replays the fixture recorded for an old version against the schema
// of a new version.
type Checker struct {
	engine *Engine
}

// NewChecker returns a Checker reading schemas and fixtures from repo.
func NewChecker(repo Repository, opts ...Option) *Checker {
	return &Checker{engine: NewEngine(repo, opts...)}
}

// Check loads the fixture for name.from, relabels its identity field to
// name.to and validates the copy against name.to with the full schema set
// registered. A missing fixture or target schema is an error wrapping
// ErrNotFound; failed validation is reported in the result.
func (c *Checker) Check(ctx context.Context, name, from, to string) (CompatResult, error) {
	fromID, err := NewIdentity(name, from)
	if err != nil {
		return CompatResult{}, err
	}
	toID, err := NewIdentity(name, to)
	if err != nil {
		return CompatResult{}, err
	}
	e := c.engine

	fixture, err := e.repo.LoadFixture(ctx, fromID)
	if err != nil {
		return CompatResult{}, fmt.Errorf("contractkit: fixture %s: %w", fromID, err)
	}
	target, err := e.Load(ctx, toID)
	if err != nil {
		return CompatResult{}, err
	}
	v, err := e.Validator(ctx)
	if err != nil {
		return CompatResult{}, err
	}

	relabeled := fixture.Relabel(target.IdentityField, toID)
	res, err := v.ValidateIdentity(toID, relabeled)
	if err != nil {
		return CompatResult{}, err
	}
	out := CompatResult{From: fromID, To: toID, Compatible: res.Valid, Errors: res.Errors}
	e.metrics.ObserveCompat(out.Compatible)
	e.opts.logger.Info("compatibility checked",
		zap.Stringer("from", fromID),
		zap.Stringer("to", toID),
		zap.Bool("compatible", out.Compatible),
		zap.Int("errors", len(out.Errors)),
	)
	return out, nil
}
