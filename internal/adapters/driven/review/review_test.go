package review

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

func testCandidate() *driven.Candidate {
	return &driven.Candidate{
		SourceFile: "photos/r1.jpg",
		RawText:    "10kΩ Resistor\n25 pieces",
		Fields: map[string]string{
			"type":     "resistor",
			"value":    "10kΩ",
			"quantity": "25",
		},
	}
}

func TestAutoReviewer_AcceptsUnchanged(t *testing.T) {
	cand := testCandidate()

	d, err := NewAuto().Review(context.Background(), cand)
	require.NoError(t, err)
	assert.True(t, d.Accepted)
	assert.Empty(t, d.ID)
	assert.Equal(t, cand.Fields, d.Fields)

	// The decision must carry its own copy of the fields.
	d.Fields["type"] = "capacitor"
	assert.Equal(t, "resistor", cand.Fields["type"])
}

func reviewWith(t *testing.T, input string) (*driven.Decision, string) {
	t.Helper()
	var out bytes.Buffer
	r := NewInteractive(strings.NewReader(input), &out)
	d, err := r.Review(context.Background(), testCandidate())
	require.NoError(t, err)
	return d, out.String()
}

func TestInteractive_Accept(t *testing.T) {
	for _, input := range []string{"a\n", "y\n", "\n", "accept\n"} {
		d, _ := reviewWith(t, input)
		assert.True(t, d.Accepted, "input %q", input)
		assert.Equal(t, "10kΩ", d.Fields["value"])
	}
}

func TestInteractive_Reject(t *testing.T) {
	for _, input := range []string{"r\n", "n\n", "reject\n"} {
		d, _ := reviewWith(t, input)
		assert.False(t, d.Accepted, "input %q", input)
	}
}

func TestInteractive_EditThenAccept(t *testing.T) {
	d, _ := reviewWith(t, "quantity=30\nbin=A3\na\n")
	assert.True(t, d.Accepted)
	assert.Equal(t, "30", d.Fields["quantity"])
	assert.Equal(t, "A3", d.Fields["bin"])
	assert.Equal(t, "resistor", d.Fields["type"])
}

func TestInteractive_EmptyValueRemovesField(t *testing.T) {
	d, _ := reviewWith(t, "quantity=\na\n")
	assert.True(t, d.Accepted)
	assert.NotContains(t, d.Fields, "quantity")
}

func TestInteractive_ChooseID(t *testing.T) {
	d, _ := reviewWith(t, "id drawer-07\na\n")
	assert.True(t, d.Accepted)
	assert.Equal(t, "drawer-07", d.ID)
}

func TestInteractive_UnknownCommandKeepsPrompting(t *testing.T) {
	d, out := reviewWith(t, "bogus command\na\n")
	assert.True(t, d.Accepted)
	assert.Contains(t, out, "unrecognised command")
}

func TestInteractive_EOFRejects(t *testing.T) {
	d, _ := reviewWith(t, "")
	assert.False(t, d.Accepted)
}

func TestInteractive_ShowsCandidate(t *testing.T) {
	_, out := reviewWith(t, "a\n")
	assert.Contains(t, out, "photos/r1.jpg")
	assert.Contains(t, out, "10kΩ Resistor")
	assert.Contains(t, out, "resistor")
}
