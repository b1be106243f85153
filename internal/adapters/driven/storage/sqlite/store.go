package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/storage"
	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

const defaultFileName = "inventory.db"

// Store implements driven.InventoryStore backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.InventoryStore = (*Store)(nil)

// NewStore opens (creating if needed) the SQLite database at path and
// applies pending migrations. An empty path resolves to
// ~/.partsbin/data/inventory.db.
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

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// migrate applies embedded migration files in lexical order, tracking
// the applied set in schema_migrations.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, name).Scan(&applied)
		if err != nil {
			return fmt.Errorf("checking migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}

		script, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, name); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

const componentColumns = `id, type, value, quantity, description, metadata, source_file, content_hash, service, created_at`

// HasFile reports whether any record was ingested from the given source
// file.
func (s *Store) HasFile(ctx context.Context, sourceFile string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM components WHERE source_file = ?`, sourceFile).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("querying source file: %w", err)
	}
	return n > 0, nil
}

// HasHash reports whether any record carries the given content
// fingerprint. An empty hash never matches.
func (s *Store) HasHash(ctx context.Context, contentHash string) (bool, error) {
	if contentHash == "" {
		return false, nil
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM components WHERE content_hash = ?`, contentHash).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("querying content hash: %w", err)
	}
	return n > 0, nil
}

// Add inserts a new component. It fails with domain.ErrDuplicate when
// the ID or a non-empty content hash is already present.
func (s *Store) Add(ctx context.Context, c *domain.Component) error {
	if c.ID == "" {
		return fmt.Errorf("%w: component ID is required", domain.ErrInvalidInput)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	meta, err := marshalMetadata(c.Metadata)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO components (`+componentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Type, c.Value, c.Quantity, c.Description, meta, c.SourceFile, c.ContentHash, c.Service, c.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: component %s", domain.ErrDuplicate, c.ID)
		}
		return fmt.Errorf("inserting component: %w", err)
	}
	return nil
}

// Get returns the component with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Component, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+componentColumns+` FROM components WHERE id = ?`, id)
	c, err := scanComponent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: component %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying component: %w", err)
	}
	return c, nil
}

// List returns components in insertion order. limit <= 0 means no
// limit. The second return value reports whether more records remain
// past the returned page.
func (s *Store) List(ctx context.Context, limit, offset int) ([]domain.Component, bool, error) {
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + componentColumns + ` FROM components ORDER BY rowid`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		// Fetch one extra row to detect a further page.
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ? OFFSET ?`, limit+1, offset)
	} else {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT -1 OFFSET ?`, offset)
	}
	if err != nil {
		return nil, false, fmt.Errorf("listing components: %w", err)
	}
	defer rows.Close()

	components, err := collectComponents(rows)
	if err != nil {
		return nil, false, err
	}

	hasMore := false
	if limit > 0 && len(components) > limit {
		components = components[:limit]
		hasMore = true
	}
	return components, hasMore, nil
}

// Search returns components matching the query, optionally restricted
// to a single field, in insertion order.
func (s *Store) Search(ctx context.Context, query, field string) ([]domain.Component, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+componentColumns+` FROM components ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("searching components: %w", err)
	}
	defer rows.Close()

	all, err := collectComponents(rows)
	if err != nil {
		return nil, err
	}

	var matched []domain.Component
	for _, c := range all {
		if c.Matches(query, field) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Update applies field updates to the component with the given ID and
// returns the updated record.
func (s *Store) Update(ctx context.Context, id string, updates map[string]string) (*domain.Component, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyUpdate(updates); err != nil {
		return nil, err
	}

	meta, err := marshalMetadata(c.Metadata)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `UPDATE components
		SET type = ?, value = ?, quantity = ?, description = ?, metadata = ?, source_file = ?, service = ?
		WHERE id = ?`,
		c.Type, c.Value, c.Quantity, c.Description, meta, c.SourceFile, c.Service, id)
	if err != nil {
		return nil, fmt.Errorf("updating component: %w", err)
	}
	return c, nil
}

// Delete removes the component with the given ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM components WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting component: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting component: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: component %s", domain.ErrNotFound, id)
	}
	return nil
}

// Stats computes aggregate inventory statistics.
func (s *Store) Stats(ctx context.Context) (*domain.Stats, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+componentColumns+` FROM components ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}
	defer rows.Close()

	all, err := collectComponents(rows)
	if err != nil {
		return nil, err
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
		dup, err := s.isDuplicate(ctx, c)
		if err != nil {
			return added, skipped, err
		}
		if dup {
			skipped++
			continue
		}
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

func (s *Store) isDuplicate(ctx context.Context, c *domain.Component) (bool, error) {
	if _, err := s.Get(ctx, c.ID); err == nil {
		return true, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	return s.HasHash(ctx, c.ContentHash)
}

// scanner abstracts sql.Row and sql.Rows for scanComponent.
type scanner interface {
	Scan(dest ...any) error
}

func scanComponent(row scanner) (*domain.Component, error) {
	var c domain.Component
	var meta string
	err := row.Scan(&c.ID, &c.Type, &c.Value, &c.Quantity, &c.Description,
		&meta, &c.SourceFile, &c.ContentHash, &c.Service, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if meta != "" && meta != "{}" {
		if err := json.Unmarshal([]byte(meta), &c.Metadata); err != nil {
			return nil, fmt.Errorf("decoding metadata for %s: %w", c.ID, err)
		}
	}
	return &c, nil
}

func collectComponents(rows *sql.Rows) ([]domain.Component, error) {
	var out []domain.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning component: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating components: %w", err)
	}
	return out, nil
}

func marshalMetadata(meta map[string]string) (string, error) {
	if len(meta) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}
	return string(raw), nil
}
