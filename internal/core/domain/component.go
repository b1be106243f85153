package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Component represents one inventoried electronics part.
// It is the canonical record after extraction and review.
type Component struct {
	// ID is the unique identifier for the component.
	ID string `json:"id"`

	// Type is the normalized lowercase category (e.g. "resistor").
	Type string `json:"type"`

	// Value is the component value or rating (e.g. "10kΩ").
	Value string `json:"value,omitempty"`

	// Quantity is the available quantity as extracted (e.g. "25").
	Quantity string `json:"quantity,omitempty"`

	// Description is a short human-readable summary.
	Description string `json:"description,omitempty"`

	// Metadata holds additional extracted fields without a fixed schema
	// (price, tolerance, package, part number, ...).
	Metadata map[string]string `json:"metadata,omitempty"`

	// SourceFile is the path of the originating image or document.
	SourceFile string `json:"source_file,omitempty"`

	// ContentHash is the fingerprint of the raw extracted text.
	// It is unique across the store and used for duplicate suppression.
	ContentHash string `json:"content_hash,omitempty"`

	// Service names the extraction service that produced this record.
	Service string `json:"service,omitempty"`

	// CreatedAt is set once at insertion and never mutated.
	CreatedAt time.Time `json:"created_at"`
}

// Canonical field names shared by the extractor, stores, and update paths.
const (
	FieldID          = "id"
	FieldType        = "type"
	FieldValue       = "value"
	FieldQuantity    = "quantity"
	FieldDescription = "description"
	FieldSourceFile  = "source_file"
	FieldContentHash = "content_hash"
	FieldService     = "service"
	FieldCreatedAt   = "created_at"
)

// ComponentTypes is the closed set of recognized component categories.
// Free-text types are still accepted; these are used for keyword detection.
var ComponentTypes = []string{
	"resistor", "capacitor", "inductor", "transistor", "diode", "ic",
	"led", "switch", "connector", "potentiometer", "crystal", "fuse",
	"relay", "transformer", "sensor", "module",
}

// NormalizeType case-folds and trims a component type.
func NormalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// firstInt matches the leading integer in a quantity string like "25 pcs".
var firstInt = regexp.MustCompile(`\d+`)

// ParseQuantity extracts the numeric count from a quantity string.
// Returns false for strings without any digits (e.g. "unknown").
func ParseQuantity(q string) (int, bool) {
	match := firstInt.FindString(q)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clone returns a deep copy of the component.
// Stores hand out clones so callers cannot mutate persisted state.
func (c *Component) Clone() *Component {
	clone := *c
	if c.Metadata != nil {
		clone.Metadata = make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			clone.Metadata[k] = v
		}
	}
	return &clone
}

// Matches reports whether the component matches a case-insensitive
// substring query. If field is non-empty only that field is considered,
// including metadata keys. Otherwise type, value, description, and all
// metadata values are searched.
//
// Both storage backends delegate to this so search answers are identical
// regardless of the persistence technology.
func (c *Component) Matches(query, field string) bool {
	q := strings.ToLower(query)
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}

	if field != "" {
		switch field {
		case FieldID:
			return contains(c.ID)
		case FieldType:
			return contains(c.Type)
		case FieldValue:
			return contains(c.Value)
		case FieldQuantity:
			return contains(c.Quantity)
		case FieldDescription:
			return contains(c.Description)
		case FieldSourceFile:
			return contains(c.SourceFile)
		case FieldService:
			return contains(c.Service)
		default:
			return contains(c.Metadata[field])
		}
	}

	if contains(c.Type) || contains(c.Value) || contains(c.Description) {
		return true
	}
	for _, v := range c.Metadata {
		if contains(v) {
			return true
		}
	}
	return false
}

// ApplyUpdate applies field-by-field replacements to the component.
// Known fields are replaced directly; unrecognized names go into the
// metadata bag, and an empty value removes the metadata key. ID,
// content hash, and creation time are immutable and rejected with
// ErrImmutableField.
func (c *Component) ApplyUpdate(updates map[string]string) error {
	for key := range updates {
		switch key {
		case FieldID, FieldContentHash, FieldCreatedAt:
			return ErrImmutableField
		}
	}

	for key, value := range updates {
		switch key {
		case FieldType:
			c.Type = NormalizeType(value)
		case FieldValue:
			c.Value = value
		case FieldQuantity:
			c.Quantity = value
		case FieldDescription:
			c.Description = value
		case FieldSourceFile:
			c.SourceFile = value
		case FieldService:
			c.Service = value
		default:
			if value == "" {
				delete(c.Metadata, key)
				continue
			}
			if c.Metadata == nil {
				c.Metadata = make(map[string]string)
			}
			c.Metadata[key] = value
		}
	}
	return nil
}

// Stats summarizes the inventory contents.
type Stats struct {
	// TotalCount is the number of stored components.
	TotalCount int `json:"total_count"`

	// TotalQuantity is the best-effort sum of parseable quantities.
	TotalQuantity int `json:"total_quantity"`

	// CountsByType maps component type to record count.
	CountsByType map[string]int `json:"counts_by_type"`

	// MostCommonType is the most frequently occurring type, if any.
	MostCommonType string `json:"most_common_type,omitempty"`
}

// ComputeStats derives statistics from a component list.
// Unparseable quantities are ignored rather than treated as errors.
// Shared by both storage backends to keep their answers identical.
func ComputeStats(components []Component) *Stats {
	stats := &Stats{
		TotalCount:   len(components),
		CountsByType: make(map[string]int),
	}

	for i := range components {
		if n, ok := ParseQuantity(components[i].Quantity); ok {
			stats.TotalQuantity += n
		}
		if t := components[i].Type; t != "" {
			stats.CountsByType[t]++
		}
	}

	best := 0
	for t, count := range stats.CountsByType {
		// Ties break towards the lexically smaller type for determinism.
		if count > best || (count == best && t < stats.MostCommonType) {
			best = count
			stats.MostCommonType = t
		}
	}

	return stats
}
