package schema

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	"github.com/jmgilman/go/errorkit"
	"gopkg.in/yaml.v3"
)

//go:embed errorkit.cue
var schemaSource string

// Definition names inside errorkit.cue.
const (
	errorDefinition   = "#Error"
	backingDefinition = "#Backing"
)

type config struct {
	name    string
	sources []string
	backing bool
}

// Option configures a Validator.
type Option func(*config)

// WithName pins the category name a document must carry.
// Ignored when validating backing documents.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithSources restricts the source of a document to the given case set.
func WithSources(sources ...string) Option {
	return func(c *config) {
		c.sources = append(c.sources, sources...)
	}
}

// WithBacking validates backing documents (no name key) instead of wrapper documents.
func WithBacking() Option {
	return func(c *config) {
		c.backing = true
	}
}

// Validator checks serialized errorkit documents against the errorkit schema.
//
// A Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	mu     sync.Mutex
	cueCtx *cue.Context
	schema cue.Value
}

// New compiles the errorkit schema with the given options.
// Returns an ErrorKit error of type invalidSchema if the schema cannot be built.
func New(opts ...Option) (*Validator, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cueCtx := cuecontext.New()
	root := cueCtx.CompileString(schemaSource, cue.Filename("errorkit.cue"))
	if err := root.Err(); err != nil {
		return nil, violationError(errorkit.TypeInvalidSchema, "failed to compile schema", issuesOf(err))
	}

	definition := errorDefinition
	if cfg.backing {
		definition = backingDefinition
	}
	schema := root.LookupPath(cue.ParsePath(definition))

	if cfg.name != "" && !cfg.backing {
		schema = schema.FillPath(cue.ParsePath("name"), cfg.name)
	}

	if len(cfg.sources) > 0 {
		list, err := json.Marshal(cfg.sources)
		if err != nil {
			return nil, validationError(errorkit.TypeInvalidSchema, "failed to encode source set: "+err.Error())
		}
		constraint := cueCtx.CompileString("source: or(" + string(list) + ")")
		schema = schema.Unify(constraint)
	}

	if err := schema.Err(); err != nil {
		return nil, violationError(errorkit.TypeInvalidSchema, "schema is invalid", issuesOf(err))
	}

	return &Validator{
		cueCtx: cueCtx,
		schema: schema,
	}, nil
}

// For builds a Validator pinned to the name of category E and to the given
// sources. With no sources, any source string is accepted.
//
// Example:
//
//	v, err := schema.For[NetworkError](SourceTransport, SourceDNS)
func For[E errorkit.Category, S errorkit.Source](sources ...S) (*Validator, error) {
	var category E
	opts := []Option{WithName(category.Name())}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.String())
	}
	if len(names) > 0 {
		opts = append(opts, WithSources(names...))
	}
	return New(opts...)
}

// ValidateJSON validates a JSON document.
// Returns nil if the document is valid. Every violation is listed in the reason
// of the returned ErrorKit error.
func (v *Validator) ValidateJSON(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return cancelledError(err)
	}

	expr, err := cuejson.Extract("document.json", data)
	if err != nil {
		return decodingError("failed to parse JSON document: %v", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	return v.validate(v.cueCtx.BuildExpr(expr))
}

// ValidateYAML validates a YAML document.
func (v *Validator) ValidateYAML(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return cancelledError(err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return decodingError("failed to parse YAML document: %v", err)
	}
	if doc == nil {
		return decodingError("YAML document is empty")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	return v.validate(v.cueCtx.Encode(doc))
}

// validate unifies data with the schema. The caller holds v.mu.
//
// Validate stops reporting closedness errors once another conflict is found, so
// unknown keys are collected separately and merged into the same reason.
func (v *Validator) validate(data cue.Value) error {
	if err := data.Err(); err != nil {
		return violationError(errorkit.TypeInvalidDocument, "document is invalid", issuesOf(err))
	}

	issues := v.disallowedFields(data)
	unified := v.schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		issues = mergeIssues(issues, issuesOf(err))
	}

	if len(issues) > 0 {
		return violationError(errorkit.TypeSchemaViolation, "validation failed", issues)
	}
	return nil
}

// disallowedFields reports every top-level key of data the schema does not define.
func (v *Validator) disallowedFields(data cue.Value) []issue {
	iter, err := data.Fields()
	if err != nil {
		// Not a struct; Validate reports the mismatch.
		return nil
	}

	var issues []issue
	for iter.Next() {
		sel := iter.Selector()
		if !v.schema.Allows(sel) {
			issues = append(issues, issue{
				Path:    []string{sel.String()},
				Message: fieldNotAllowed,
			})
		}
	}
	return issues
}

// DecodeJSON validates a JSON document and decodes it into a wrapper of category E.
func DecodeJSON[E errorkit.Category, S errorkit.Source](ctx context.Context, v *Validator, data []byte) (errorkit.Wrapper[E, S], error) {
	var w errorkit.Wrapper[E, S]
	if err := v.ValidateJSON(ctx, data); err != nil {
		return w, err
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return w, err
	}
	return w, nil
}

// DecodeYAML validates a YAML document and decodes it into a wrapper of category E.
func DecodeYAML[E errorkit.Category, S errorkit.Source](ctx context.Context, v *Validator, data []byte) (errorkit.Wrapper[E, S], error) {
	var w errorkit.Wrapper[E, S]
	if err := v.ValidateYAML(ctx, data); err != nil {
		return w, err
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, err
	}
	return w, nil
}
