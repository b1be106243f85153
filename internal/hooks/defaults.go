package hooks

import (
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// RegisterDefaults registers all built-in hooks with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.RegisterText("trim_space", func(_ map[string]any) (driven.TextHook, error) {
		return NewTrimSpace(), nil
	})
	r.RegisterText("strip_markdown", func(_ map[string]any) (driven.TextHook, error) {
		return NewStripMarkdown(), nil
	})

	r.RegisterRecord("normalize_type", buildNormalizeType)
	r.RegisterRecord("tag", buildTag)
}

// buildNormalizeType creates the normalize_type hook from generic config.
// Supported config keys:
//   - hooks.normalize_type.fallback (string): type used when none was
//     extracted (default: "other")
func buildNormalizeType(cfg map[string]any) (driven.RecordHook, error) {
	fallback := getStringFromConfig(cfg, "hooks.normalize_type.fallback")
	return NewNormalizeType(fallback), nil
}

// buildTag creates the tag hook from generic config.
// Supported config keys:
//   - hooks.tag.key (string): metadata key to stamp
//   - hooks.tag.value (string): value to stamp
func buildTag(cfg map[string]any) (driven.RecordHook, error) {
	key := getStringFromConfig(cfg, "hooks.tag.key")
	value := getStringFromConfig(cfg, "hooks.tag.value")
	return NewTag(key, value), nil
}

// getStringFromConfig safely extracts a string from a generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	val, ok := cfg[key]
	if !ok {
		return ""
	}
	s, ok := val.(string)
	if !ok {
		return ""
	}
	return s
}
