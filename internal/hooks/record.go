package hooks

import (
	"context"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// normalizeType case-folds the component type and falls back to a
// configured default when no type was extracted.
type normalizeType struct {
	fallback string
}

var _ driven.RecordHook = (*normalizeType)(nil)

// NewNormalizeType returns the normalize_type record hook.
// fallback is used when the record has no type at all; empty means
// "other".
func NewNormalizeType(fallback string) driven.RecordHook {
	if fallback == "" {
		fallback = "other"
	}
	return &normalizeType{fallback: fallback}
}

func (h *normalizeType) Name() string { return "normalize_type" }

func (h *normalizeType) Apply(_ context.Context, c *domain.Component) error {
	c.Type = domain.NormalizeType(c.Type)
	if c.Type == "" {
		c.Type = h.fallback
	}
	return nil
}

// tag stamps a fixed metadata key/value on every accepted record, e.g.
// to label an ingestion session or storage bin.
type tag struct {
	key   string
	value string
}

var _ driven.RecordHook = (*tag)(nil)

// NewTag returns the tag record hook.
func NewTag(key, value string) driven.RecordHook {
	return &tag{key: key, value: value}
}

func (h *tag) Name() string { return "tag" }

func (h *tag) Apply(_ context.Context, c *domain.Component) error {
	if h.key == "" {
		return nil
	}
	if c.Metadata == nil {
		c.Metadata = make(map[string]string)
	}
	c.Metadata[h.key] = h.value
	return nil
}
