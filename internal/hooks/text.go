package hooks

import (
	"context"
	"regexp"
	"strings"

	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// textHookFunc adapts a pure function to the TextHook port.
type textHookFunc struct {
	name string
	fn   func(string) string
}

var _ driven.TextHook = (*textHookFunc)(nil)

func (h *textHookFunc) Name() string { return h.name }

func (h *textHookFunc) Apply(_ context.Context, text string) (string, error) {
	return h.fn(text), nil
}

// NewTrimSpace returns a hook that trims each line and collapses runs of
// blank lines, a common cleanup for OCR output.
func NewTrimSpace() driven.TextHook {
	return &textHookFunc{name: "trim_space", fn: trimSpace}
}

func trimSpace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Vision LLMs often wrap their answer in markdown fences or emphasis.
var (
	fenceRe    = regexp.MustCompile("(?m)^```[a-zA-Z]*\n?|^```$")
	emphasisRe = regexp.MustCompile(`\*{1,2}([^*]+)\*{1,2}`)
)

// NewStripMarkdown returns a hook that removes code fences and emphasis
// markers from OCR output.
func NewStripMarkdown() driven.TextHook {
	return &textHookFunc{name: "strip_markdown", fn: stripMarkdown}
}

func stripMarkdown(text string) string {
	text = fenceRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
