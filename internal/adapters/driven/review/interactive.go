package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// styles for the review prompt. Kept minimal: the review loop runs in
// a plain terminal, not a full-screen TUI.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
)

const rawTextPreviewLines = 8

// InteractiveReviewer prompts the user to accept, edit, or reject each
// extracted candidate before it is stored.
type InteractiveReviewer struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ driven.Reviewer = (*InteractiveReviewer)(nil)

// NewInteractive returns a reviewer reading commands from in and
// printing prompts to out.
func NewInteractive(in io.Reader, out io.Writer) *InteractiveReviewer {
	return &InteractiveReviewer{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Review shows the candidate and loops on user commands:
//
//	a / y / enter   accept with the fields as shown
//	r / n           reject
//	id <value>      choose the stored ID
//	<field>=<value> set or override a field, empty value removes it
//
// Edits accumulate until the user accepts or rejects. An exhausted
// input stream counts as a rejection.
func (r *InteractiveReviewer) Review(ctx context.Context, c *driven.Candidate) (*driven.Decision, error) {
	fields := make(map[string]string, len(c.Fields))
	for k, v := range c.Fields {
		fields[k] = v
	}
	decision := &driven.Decision{Fields: fields}

	r.printCandidate(c, fields, decision.ID)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprint(r.out, promptStyle.Render("[a]ccept  [r]eject  id <value>  field=value")+" > ")
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return nil, fmt.Errorf("reading review input: %w", err)
			}
			decision.Accepted = false
			return decision, nil
		}

		line := strings.TrimSpace(r.in.Text())
		switch {
		case line == "" || line == "a" || line == "y" || line == "accept":
			decision.Accepted = true
			return decision, nil

		case line == "r" || line == "n" || line == "reject":
			decision.Accepted = false
			return decision, nil

		case strings.HasPrefix(line, "id "):
			decision.ID = strings.TrimSpace(strings.TrimPrefix(line, "id "))
			r.printCandidate(c, fields, decision.ID)

		case strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "" {
				fmt.Fprintln(r.out, errorStyle.Render("field name must not be empty"))
				continue
			}
			if value == "" {
				delete(fields, key)
			} else {
				fields[key] = value
			}
			r.printCandidate(c, fields, decision.ID)

		default:
			fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("unrecognised command %q", line)))
		}
	}
}

func (r *InteractiveReviewer) printCandidate(c *driven.Candidate, fields map[string]string, id string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, titleStyle.Render(c.SourceFile))

	preview := strings.Split(c.RawText, "\n")
	truncated := false
	if len(preview) > rawTextPreviewLines {
		preview = preview[:rawTextPreviewLines]
		truncated = true
	}
	for _, line := range preview {
		fmt.Fprintln(r.out, mutedStyle.Render("  | "+line))
	}
	if truncated {
		fmt.Fprintln(r.out, mutedStyle.Render("  | ..."))
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if id != "" {
		fmt.Fprintf(r.out, "  %s: %s\n", fieldStyle.Render("id"), id)
	}
	for _, k := range keys {
		fmt.Fprintf(r.out, "  %s: %s\n", fieldStyle.Render(k), fields[k])
	}
}
