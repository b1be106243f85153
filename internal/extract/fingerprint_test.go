package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("100uF 5 pcs $1.50")
	b := Fingerprint("100uF 5 pcs $1.50")

	assert.Equal(t, a, b)
	assert.Len(t, a, 40)
}

func TestFingerprint_SensitiveToWhitespace(t *testing.T) {
	a := Fingerprint("10kΩ resistor")
	b := Fingerprint("10kΩ  resistor")
	c := Fingerprint("10kΩ resistor\n")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestFingerprint_EmptyText(t *testing.T) {
	// SHA-1 of the empty string is well known.
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", Fingerprint(""))
}
