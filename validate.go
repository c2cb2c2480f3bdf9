package contractkit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/reoring/contractkit/internal/jsondoc"
	"github.com/reoring/contractkit/internal/metrics"
)

// ValidationResult reports whether an instance satisfied a schema. Errors is
// ordered by instance location, then by schema keyword location.
type ValidationResult struct {
	Valid  bool
	Errors Issues
}

// Validator checks instances against the schemas of one SchemaSet. Each
// schema is compiled on first use and the compiled form is reused for the
// lifetime of the Validator. It is safe for concurrent use.
type Validator struct {
	set     *SchemaSet
	log     *zap.Logger
	dialect Dialect
	metrics *metrics.Collector

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	compiled map[Identity]*jsonschema.Schema
}

// NewValidator registers every schema of set with a compiler fixed to one
// dialect. References to documents outside the set are not fetched.
func NewValidator(set *SchemaSet, opts ...Option) (*Validator, error) {
	o := buildOptions(opts)
	return newValidator(set, o, o.metrics())
}

func newValidator(set *SchemaSet, o options, m *metrics.Collector) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = o.dialect.draft()
	c.AssertFormat = true
	c.LoadURL = func(u string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("%w: %s is not a registered schema", ErrUnresolvedRef, u)
	}
	for _, s := range set.Schemas() {
		if !o.dialect.matches(s.Dialect()) {
			return nil, fmt.Errorf("%w: %s declares %q, expected %s", ErrDialectMismatch, s.Identity, s.Dialect(), o.dialect)
		}
		b, err := s.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("contractkit: schema %s: %w", s.Identity, err)
		}
		if err := c.AddResource(s.ID, bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("contractkit: schema %s: %w", s.Identity, err)
		}
	}
	return &Validator{
		set:      set,
		log:      o.logger,
		dialect:  o.dialect,
		metrics:  m,
		compiler: c,
		compiled: make(map[Identity]*jsonschema.Schema),
	}, nil
}

// Validate checks instance against the schema named by ident ("name.version").
// An unknown identity yields an invalid result with exactly one issue naming
// it. The error is reserved for schemas that fail to compile.
func (v *Validator) Validate(ident string, instance any) (ValidationResult, error) {
	id, err := ParseIdentity(ident)
	if err != nil {
		return unknownSchema(ident), nil
	}
	return v.ValidateIdentity(id, instance)
}

// ValidateIdentity is Validate with a parsed identity.
func (v *Validator) ValidateIdentity(id Identity, instance any) (ValidationResult, error) {
	sch, ok, err := v.compile(id)
	if err != nil {
		return ValidationResult{}, err
	}
	if !ok {
		v.metrics.ObserveValidation(id.String(), false)
		return unknownSchema(id.String()), nil
	}
	doc, err := jsondoc.Normalize(instance)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("contractkit: instance for %s is not JSON-encodable: %w", id, err)
	}
	res, err := check(sch, doc)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("contractkit: validate %s: %w", id, err)
	}
	v.metrics.ObserveValidation(id.String(), res.Valid)
	return res, nil
}

// compile returns the compiled schema for id, compiling it on first use.
// ok is false when id is not in the set.
func (v *Validator) compile(id Identity) (*jsonschema.Schema, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if sch, ok := v.compiled[id]; ok {
		v.metrics.ObserveCacheHit()
		v.log.Debug("validator cache hit", zap.Stringer("schema", id))
		return sch, true, nil
	}
	s, ok := v.set.Get(id)
	if !ok {
		return nil, false, nil
	}
	sch, err := v.compiler.Compile(s.ID)
	if err != nil {
		return nil, false, fmt.Errorf("contractkit: compile %s: %w", id, err)
	}
	v.compiled[id] = sch
	v.metrics.ObserveCompile(id.String())
	v.log.Debug("compiled validator", zap.Stringer("schema", id), zap.String("id", s.ID))
	return sch, true, nil
}

func unknownSchema(ident string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: Issues{{
			Code:    CodeUnknownSchema,
			Message: fmt.Sprintf("unknown schema: %q", ident),
		}},
	}
}

func check(sch *jsonschema.Schema, instance any) (ValidationResult, error) {
	err := sch.Validate(instance)
	if err == nil {
		return ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return ValidationResult{}, err
	}
	var leaves []*jsonschema.ValidationError
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			leaves = append(leaves, e)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.SliceStable(leaves, func(i, k int) bool {
		a, b := leaves[i], leaves[k]
		if a.InstanceLocation != b.InstanceLocation {
			return a.InstanceLocation < b.InstanceLocation
		}
		return a.KeywordLocation < b.KeywordLocation
	})
	iss := make(Issues, 0, len(leaves))
	for _, e := range leaves {
		kw := lastSegment(e.KeywordLocation)
		iss = append(iss, Issue{
			Path:    jsondoc.Render(e.InstanceLocation),
			Code:    codeForKeyword(kw),
			Keyword: e.KeywordLocation,
			Message: e.Message,
		})
	}
	return ValidationResult{Valid: false, Errors: iss}, nil
}

func lastSegment(pointer string) string {
	if i := strings.LastIndexByte(pointer, '/'); i >= 0 {
		return jsondoc.Unescape(pointer[i+1:])
	}
	return pointer
}
