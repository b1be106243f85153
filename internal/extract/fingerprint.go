package extract

import (
	"crypto/sha1" //nolint:gosec // content fingerprint, not authentication
	"encoding/hex"
)

// Fingerprint computes the content hash of raw OCR text: the SHA-1 hex
// digest (40 characters) of its UTF-8 encoding.
//
// A cryptographic digest is required so that two distinct OCR passes over
// near-identical images are never conflated, while true re-submissions of
// the same text are always caught.
func Fingerprint(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
