// Package jsondoc provides an inventory store backed by a single JSON
// document on disk.
//
// The whole inventory is held in memory and rewritten atomically on
// every mutation, which keeps the file human-readable and diffable at
// the cost of write amplification. Suits small personal inventories; a
// corrupt or unreadable file degrades to an empty store with a warning
// rather than failing hard.
package jsondoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/storage"
	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
	"github.com/benchtop-labs/partsbin-cli/internal/logger"
)

const defaultFileName = "components.json"

// Store implements driven.InventoryStore on a single JSON file.
type Store struct {
	mu    sync.RWMutex
	path  string
	byID  map[string]*domain.Component
	order []string // insertion order of IDs
}

var _ driven.InventoryStore = (*Store)(nil)

// NewStore loads (creating if needed) the JSON inventory at path. An
// empty path resolves to ~/.partsbin/data/components.json.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, ".partsbin", "data", defaultFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &Store{
		path: path,
		byID: make(map[string]*domain.Component),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the inventory file path.
func (s *Store) Path() string { return s.path }

// Close is a no-op: every mutation is already persisted.
func (s *Store) Close() error { return nil }

// load reads the inventory document. A missing file means an empty
// inventory; a corrupt one is logged and treated as empty so a bad
// byte cannot lock the user out of their own data.
func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading inventory file: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	var byID map[string]*domain.Component
	if err := json.Unmarshal(raw, &byID); err != nil {
		logger.Warn("inventory file %s is corrupt, starting with an empty inventory: %v", s.path, err)
		return nil
	}

	for id, c := range byID {
		if c.ID == "" {
			c.ID = id
		}
		s.byID[id] = c
		s.order = append(s.order, id)
	}

	// The JSON object carries no order, so reconstruct insertion order
	// from creation time, ties broken by ID.
	sort.SliceStable(s.order, func(i, j int) bool {
		a, b := s.byID[s.order[i]], s.byID[s.order[j]]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return nil
}

// persist writes the whole document to a temp file and renames it into
// place so readers never observe a partial write.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.byID, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing inventory file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing inventory file: %w", err)
	}
	return nil
}

// HasFile reports whether any record was ingested from the given source
// file.
func (s *Store) HasFile(_ context.Context, sourceFile string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.byID {
		if c.SourceFile == sourceFile {
			return true, nil
		}
	}
	return false, nil
}

// HasHash reports whether any record carries the given content
// fingerprint. An empty hash never matches.
func (s *Store) HasHash(_ context.Context, contentHash string) (bool, error) {
	if contentHash == "" {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.byID {
		if c.ContentHash == contentHash {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts a new component. It fails with domain.ErrDuplicate when
// the ID or a non-empty content hash is already present.
func (s *Store) Add(_ context.Context, c *domain.Component) error {
	if c.ID == "" {
		return fmt.Errorf("%w: component ID is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[c.ID]; ok {
		return fmt.Errorf("%w: component %s", domain.ErrDuplicate, c.ID)
	}
	if c.ContentHash != "" {
		for _, existing := range s.byID {
			if existing.ContentHash == c.ContentHash {
				return fmt.Errorf("%w: component %s", domain.ErrDuplicate, c.ID)
			}
		}
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	s.byID[c.ID] = c.Clone()
	s.order = append(s.order, c.ID)
	return s.persist()
}

// Get returns the component with the given ID.
func (s *Store) Get(_ context.Context, id string) (*domain.Component, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: component %s", domain.ErrNotFound, id)
	}
	return c.Clone(), nil
}

// List returns components in insertion order. limit <= 0 means no
// limit. The second return value reports whether more records remain
// past the returned page.
func (s *Store) List(_ context.Context, limit, offset int) ([]domain.Component, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.order) {
		return nil, false, nil
	}

	ids := s.order[offset:]
	hasMore := false
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
		hasMore = true
	}

	out := make([]domain.Component, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.byID[id].Clone())
	}
	return out, hasMore, nil
}

// Search returns components matching the query, optionally restricted
// to a single field, in insertion order.
func (s *Store) Search(_ context.Context, query, field string) ([]domain.Component, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Component
	for _, id := range s.order {
		c := s.byID[id]
		if c.Matches(query, field) {
			matched = append(matched, *c.Clone())
		}
	}
	return matched, nil
}

// Update applies field updates to the component with the given ID and
// returns the updated record.
func (s *Store) Update(_ context.Context, id string, updates map[string]string) (*domain.Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: component %s", domain.ErrNotFound, id)
	}

	updated := c.Clone()
	if err := updated.ApplyUpdate(updates); err != nil {
		return nil, err
	}

	s.byID[id] = updated
	if err := s.persist(); err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

// Delete removes the component with the given ID.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: component %s", domain.ErrNotFound, id)
	}

	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.persist()
}

// Stats computes aggregate inventory statistics.
func (s *Store) Stats(_ context.Context) (*domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Component, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, *s.byID[id])
	}
	return domain.ComputeStats(all), nil
}

// ImportFrom merges records from a JSON export at path. Records whose
// ID or content hash is already present are skipped.
func (s *Store) ImportFrom(ctx context.Context, path string) (added, skipped int, err error) {
	records, err := storage.ReadImportFile(path)
	if err != nil {
		return 0, 0, err
	}

	for i := range records {
		c := &records[i]
		if err := s.Add(ctx, c); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			return added, skipped, err
		}
		added++
	}
	return added, skipped, nil
}
