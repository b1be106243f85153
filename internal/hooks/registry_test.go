package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func TestRegistry_BuildKnownHooks(t *testing.T) {
	r := newDefaultRegistry()

	text, err := r.BuildText("trim_space", nil)
	require.NoError(t, err)
	assert.Equal(t, "trim_space", text.Name())

	record, err := r.BuildRecord("normalize_type", nil)
	require.NoError(t, err)
	assert.Equal(t, "normalize_type", record.Name())
}

func TestRegistry_UnknownHookIsConfigurationError(t *testing.T) {
	r := newDefaultRegistry()

	_, err := r.BuildText("no_such_hook", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = r.BuildRecord("no_such_hook", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_BuildTextChain_FailsOnAnyUnknownName(t *testing.T) {
	r := newDefaultRegistry()

	chain, err := r.BuildTextChain([]string{"trim_space", "strip_markdown"}, nil)
	require.NoError(t, err)
	assert.Len(t, chain, 2)

	_, err = r.BuildTextChain([]string{"trim_space", "bogus"}, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestTrimSpace(t *testing.T) {
	hook := NewTrimSpace()

	out, err := hook.Apply(context.Background(), "  10kΩ resistor  \n\n\n  25 pcs \n")
	require.NoError(t, err)
	assert.Equal(t, "10kΩ resistor\n\n25 pcs", out)
}

func TestStripMarkdown(t *testing.T) {
	hook := NewStripMarkdown()

	out, err := hook.Apply(context.Background(), "```text\n**10kΩ** resistor\n```")
	require.NoError(t, err)
	assert.Equal(t, "10kΩ resistor", out)
}

func TestNormalizeType(t *testing.T) {
	hook := NewNormalizeType("")

	c := &domain.Component{Type: "  Resistor "}
	require.NoError(t, hook.Apply(context.Background(), c))
	assert.Equal(t, "resistor", c.Type)

	c = &domain.Component{}
	require.NoError(t, hook.Apply(context.Background(), c))
	assert.Equal(t, "other", c.Type)
}

func TestTag(t *testing.T) {
	hook := NewTag("bin", "A3")

	c := &domain.Component{}
	require.NoError(t, hook.Apply(context.Background(), c))
	assert.Equal(t, "A3", c.Metadata["bin"])
}

func TestTag_FromConfig(t *testing.T) {
	r := newDefaultRegistry()

	hook, err := r.BuildRecord("tag", map[string]any{
		"hooks.tag.key":   "session",
		"hooks.tag.value": "2026-08",
	})
	require.NoError(t, err)

	c := &domain.Component{}
	require.NoError(t, hook.Apply(context.Background(), c))
	assert.Equal(t, "2026-08", c.Metadata["session"])
}
