// Package extract turns raw OCR text into normalized component fields.
// Parsing is pure: the same text always yields the same field mapping.
package extract

import (
	"regexp"
	"strings"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// maxDescriptionLen bounds the generated description field.
const maxDescriptionLen = 120

// Fields maps canonical field names to extracted values.
type Fields map[string]string

// Each rule targets one disjoint field, so application order never
// affects which fields end up in the result.
var (
	// Numeric value with an optional metric prefix and an electrical
	// unit suffix, or a bare percentage ("10kΩ", "100uF", "5%").
	valueRe = regexp.MustCompile(`\d+(?:\.\d+)?[kKmMuµnpG]?(?:Ω|ohms?|[FHVAW]|%)`)

	// Bare integer followed by a unit word ("25 pcs", "5 pieces").
	quantityRe = regexp.MustCompile(`(?i)\b(\d+)\s*(?:pcs?|pieces?|units?)\b`)

	// Currency symbol followed by a decimal amount ("$0.05", "€1.20").
	priceRe = regexp.MustCompile(`[$€£]\s?\d+(?:\.\d+)?`)

	// Manufacturer part number after a "P/N"-style label.
	partNumberRe = regexp.MustCompile(`(?i)(?:p/n|part\s*(?:no\.?|number|#))[:\s]*([A-Za-z0-9][A-Za-z0-9\-]+)`)

	// Closed set of known package names.
	packageRe = regexp.MustCompile(`(?i)\b(through-hole|smd|dip|soic|qfp|bga|to-92|to-220|sot-23|0402|0603|0805|1206)\b`)

	// Signed percentage ("±5%", "+/-10%").
	toleranceRe = regexp.MustCompile(`(?:±|\+/-)\s?\d+(?:\.\d+)?\s?%`)

	// Voltage rating ("16V", "3.3 kV").
	voltageRe = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?[km]?v\b`)
)

// typePatterns detect component categories as whole words, checked in
// domain.ComponentTypes order.
var typePatterns = buildTypePatterns()

func buildTypePatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(domain.ComponentTypes))
	for _, t := range domain.ComponentTypes {
		patterns[t] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t) + `s?\b`)
	}
	return patterns
}

// Parse extracts recognized fields from raw OCR text.
//
// A field whose pattern does not match is simply absent from the result.
// The description is always populated from the first line of the input,
// truncated to 120 characters; empty input yields only an empty
// description.
func Parse(text string) Fields {
	fields := Fields{
		domain.FieldDescription: description(text),
	}

	if strings.TrimSpace(text) == "" {
		return fields
	}

	if m := valueRe.FindString(text); m != "" {
		fields[domain.FieldValue] = m
	}
	if m := quantityRe.FindStringSubmatch(text); m != nil {
		fields[domain.FieldQuantity] = m[1]
	}
	if m := priceRe.FindString(text); m != "" {
		fields["price"] = strings.ReplaceAll(m, " ", "")
	}
	if m := partNumberRe.FindStringSubmatch(text); m != nil {
		fields["part_number"] = m[1]
	}
	if m := packageRe.FindString(text); m != "" {
		fields["package"] = strings.ToLower(m)
	}
	if m := toleranceRe.FindString(text); m != "" {
		fields["tolerance"] = strings.ReplaceAll(m, " ", "")
	}
	if m := voltageRe.FindString(text); m != "" {
		fields["voltage"] = strings.ToUpper(strings.ReplaceAll(m, " ", ""))
	}
	if t := detectType(text); t != "" {
		fields[domain.FieldType] = t
	}

	return fields
}

// detectType returns the first known component-type keyword found in the
// text, in the canonical type order.
func detectType(text string) string {
	for _, t := range domain.ComponentTypes {
		if typePatterns[t].MatchString(text) {
			return t
		}
	}
	return ""
}

// description derives the fallback description: the first non-empty
// prefix of the first line, truncated to a bounded length.
func description(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	line = strings.TrimSpace(line)

	runes := []rune(line)
	if len(runes) > maxDescriptionLen {
		return string(runes[:maxDescriptionLen])
	}
	return line
}
