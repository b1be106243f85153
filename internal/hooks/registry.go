// Package hooks provides named, configurable pre- and post-processing
// transforms for the ingestion pipeline. Hooks are resolved by name from
// user configuration at startup; an unresolvable name is a configuration
// error, not a pipeline failure.
package hooks

import (
	"fmt"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// TextBuilderFunc creates a TextHook from generic config.
type TextBuilderFunc func(cfg map[string]any) (driven.TextHook, error)

// RecordBuilderFunc creates a RecordHook from generic config.
type RecordBuilderFunc func(cfg map[string]any) (driven.RecordHook, error)

// Registry maps hook names to their builders.
// It allows dynamic construction of hooks from configuration.
type Registry struct {
	textBuilders   map[string]TextBuilderFunc
	recordBuilders map[string]RecordBuilderFunc
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{
		textBuilders:   make(map[string]TextBuilderFunc),
		recordBuilders: make(map[string]RecordBuilderFunc),
	}
}

// RegisterText adds a text hook builder to the registry.
func (r *Registry) RegisterText(name string, builder TextBuilderFunc) {
	r.textBuilders[name] = builder
}

// RegisterRecord adds a record hook builder to the registry.
func (r *Registry) RegisterRecord(name string, builder RecordBuilderFunc) {
	r.recordBuilders[name] = builder
}

// BuildText creates a text hook by name with the given config.
func (r *Registry) BuildText(name string, cfg map[string]any) (driven.TextHook, error) {
	builder, ok := r.textBuilders[name]
	if !ok {
		return nil, fmt.Errorf("%w: preprocess hook %q", domain.ErrUnsupportedType, name)
	}
	return builder(cfg)
}

// BuildRecord creates a record hook by name with the given config.
func (r *Registry) BuildRecord(name string, cfg map[string]any) (driven.RecordHook, error) {
	builder, ok := r.recordBuilders[name]
	if !ok {
		return nil, fmt.Errorf("%w: postprocess hook %q", domain.ErrUnsupportedType, name)
	}
	return builder(cfg)
}

// BuildTextChain resolves an ordered list of hook names into hooks.
// Any unknown name fails the whole chain.
func (r *Registry) BuildTextChain(names []string, cfg map[string]any) ([]driven.TextHook, error) {
	chain := make([]driven.TextHook, 0, len(names))
	for _, name := range names {
		hook, err := r.BuildText(name, cfg)
		if err != nil {
			return nil, err
		}
		chain = append(chain, hook)
	}
	return chain, nil
}

// BuildRecordChain resolves an ordered list of hook names into hooks.
func (r *Registry) BuildRecordChain(names []string, cfg map[string]any) ([]driven.RecordHook, error) {
	chain := make([]driven.RecordHook, 0, len(names))
	for _, name := range names {
		hook, err := r.BuildRecord(name, cfg)
		if err != nil {
			return nil, err
		}
		chain = append(chain, hook)
	}
	return chain, nil
}

// TextNames returns all registered text hook names.
func (r *Registry) TextNames() []string {
	names := make([]string, 0, len(r.textBuilders))
	for name := range r.textBuilders {
		names = append(names, name)
	}
	return names
}

// RecordNames returns all registered record hook names.
func (r *Registry) RecordNames() []string {
	names := make([]string, 0, len(r.recordBuilders))
	for name := range r.recordBuilders {
		names = append(names, name)
	}
	return names
}
