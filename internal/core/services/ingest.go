package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driving"
	"github.com/benchtop-labs/partsbin-cli/internal/extract"
	"github.com/benchtop-labs/partsbin-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// DefaultOCRTimeout bounds a single OCR call.
const DefaultOCRTimeout = 60 * time.Second

// defaultExtensions are the photo types considered during directory
// ingestion when the user does not narrow them down.
var defaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}

// IngestService runs photos through OCR, extraction, review, and
// storage.
type IngestService struct {
	store      driven.InventoryStore
	ocr        driven.OCRService
	reviewer   driven.Reviewer
	preHooks   []driven.TextHook
	postHooks  []driven.RecordHook
	ocrTimeout time.Duration
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	store driven.InventoryStore,
	ocr driven.OCRService,
	reviewer driven.Reviewer,
) *IngestService {
	return &IngestService{
		store:      store,
		ocr:        ocr,
		reviewer:   reviewer,
		ocrTimeout: DefaultOCRTimeout,
	}
}

// SetHooks installs the preprocessing text hooks and postprocessing
// record hooks.
func (s *IngestService) SetHooks(pre []driven.TextHook, post []driven.RecordHook) {
	s.preHooks = pre
	s.postHooks = post
}

// SetOCRTimeout overrides the per-photo OCR timeout.
func (s *IngestService) SetOCRTimeout(d time.Duration) {
	if d > 0 {
		s.ocrTimeout = d
	}
}

// IngestPath processes a single file or every matching file in a
// directory, sorted by name so batches are reproducible. Per-file
// failures are recorded in the report; storage failures abort.
func (s *IngestService) IngestPath(ctx context.Context, path string, opts domain.IngestOptions) (*domain.IngestReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	report := &domain.IngestReport{}

	if !info.IsDir() {
		result, err := s.IngestFile(ctx, path, opts)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, *result)
		return report, nil
	}

	files, err := listCandidates(path, opts.Extensions)
	if err != nil {
		return nil, err
	}
	logger.Info("ingesting %d files from %s", len(files), path)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		result, err := s.IngestFile(ctx, file, opts)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, *result)
	}
	return report, nil
}

// IngestFile processes exactly one candidate photo. The returned error
// is reserved for storage-contract failures; everything that only
// affects this file lands in the result.
func (s *IngestService) IngestFile(ctx context.Context, path string, opts domain.IngestOptions) (*domain.IngestResult, error) {
	result := &domain.IngestResult{SourceFile: path}
	logger.Section(filepath.Base(path))

	if opts.Resume {
		seen, err := s.store.HasFile(ctx, path)
		if err != nil {
			return nil, err
		}
		if seen {
			logger.Debug("already ingested, skipping: %s", path)
			result.Status = domain.IngestSkippedDuplicate
			return result, nil
		}
	}

	text, err := s.extractText(ctx, path)
	if err != nil {
		logger.Warn("OCR failed for %s: %v", path, err)
		result.Status = domain.IngestFailed
		result.Err = err
		return result, nil
	}

	// Fingerprint the raw OCR text, before any hook touches it, so any
	// character difference between photos yields a distinct hash.
	hash := extract.Fingerprint(text)
	dup, err := s.store.HasHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if dup {
		logger.Debug("duplicate content, skipping: %s", path)
		result.Status = domain.IngestSkippedDuplicate
		return result, nil
	}

	for _, hook := range s.preHooks {
		text, err = hook.Apply(ctx, text)
		if err != nil {
			result.Status = domain.IngestFailed
			result.Err = fmt.Errorf("hook %s: %w", hook.Name(), err)
			return result, nil
		}
	}

	fields := extract.Parse(text)
	logger.Debug("extracted %d fields from %s", len(fields), path)

	decision, err := s.reviewer.Review(ctx, &driven.Candidate{
		SourceFile: path,
		RawText:    text,
		Fields:     fields,
	})
	if err != nil {
		return nil, fmt.Errorf("review: %w", err)
	}
	if !decision.Accepted {
		result.Status = domain.IngestRejected
		return result, nil
	}

	component := buildComponent(decision, path, hash, s.ocr.Name())
	for _, hook := range s.postHooks {
		if err := hook.Apply(ctx, component); err != nil {
			result.Status = domain.IngestFailed
			result.Err = fmt.Errorf("hook %s: %w", hook.Name(), err)
			return result, nil
		}
	}

	if err := s.store.Add(ctx, component); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			result.Status = domain.IngestSkippedDuplicate
			return result, nil
		}
		return nil, err
	}

	logger.Info("added %s as %s", path, component.ID)
	result.Status = domain.IngestAdded
	result.ComponentID = component.ID
	return result, nil
}

// extractText runs OCR under the configured timeout.
func (s *IngestService) extractText(ctx context.Context, path string) (string, error) {
	ocrCtx, cancel := context.WithTimeout(ctx, s.ocrTimeout)
	defer cancel()
	return s.ocr.ExtractText(ocrCtx, path)
}

// buildComponent turns an accepted decision into a component record.
// Known fields map onto the record's columns; everything else goes to
// metadata.
func buildComponent(decision *driven.Decision, sourceFile, hash, service string) *domain.Component {
	id := decision.ID
	if id == "" {
		id = uuid.NewString()
	}

	c := &domain.Component{
		ID:          id,
		SourceFile:  sourceFile,
		ContentHash: hash,
		Service:     service,
	}
	for key, value := range decision.Fields {
		switch key {
		case domain.FieldType:
			c.Type = value
		case domain.FieldValue:
			c.Value = value
		case domain.FieldQuantity:
			c.Quantity = value
		case domain.FieldDescription:
			c.Description = value
		default:
			if c.Metadata == nil {
				c.Metadata = make(map[string]string)
			}
			c.Metadata[key] = value
		}
	}
	return c
}

// listCandidates returns the matching files of dir sorted by name.
func listCandidates(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = defaultExtensions
	}
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[strings.ToLower(ext)] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if allowed[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
