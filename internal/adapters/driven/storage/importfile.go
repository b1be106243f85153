// Package storage holds helpers shared by the interchangeable inventory
// store backends.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// ReadImportFile parses a JSON inventory file at path. Both shapes the
// tool produces are accepted: a map of ID to record (the document
// backend's on-disk format) and a flat array of records (list --json
// output). Records come back ordered by creation time, ties broken by
// ID, so imports are deterministic regardless of shape.
func ReadImportFile(path string) ([]domain.Component, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var records []domain.Component
	if err := json.Unmarshal(raw, &records); err != nil {
		var byID map[string]domain.Component
		if mapErr := json.Unmarshal(raw, &byID); mapErr != nil {
			return nil, fmt.Errorf("%w: %s is neither a component array nor a component map", domain.ErrInvalidInput, path)
		}
		for id, c := range byID {
			if c.ID == "" {
				c.ID = id
			}
			records = append(records, c)
		}
	}

	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}
