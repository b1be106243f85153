package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driving"
	"github.com/benchtop-labs/partsbin-cli/internal/logger"
)

// settleDelay gives cameras and sync tools time to finish writing a
// photo before we OCR it.
const settleDelay = 500 * time.Millisecond

// Watcher ingests new photos as they appear in a directory.
type Watcher struct {
	ingest     driving.IngestService
	settle     time.Duration
	extensions map[string]bool
	onResult   func(domain.IngestResult)
}

// NewWatcher creates a watcher that feeds new files in a directory to
// the ingestion service. onResult is called after every processed file
// and may be nil.
func NewWatcher(ingest driving.IngestService, opts domain.IngestOptions, onResult func(domain.IngestResult)) *Watcher {
	extensions := opts.Extensions
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

	return &Watcher{
		ingest:     ingest,
		settle:     settleDelay,
		extensions: allowed,
		onResult:   onResult,
	}
}

// SetSettleDelay overrides the write-settle delay. Used in tests.
func (w *Watcher) SetSettleDelay(d time.Duration) {
	w.settle = d
}

// Watch blocks, ingesting files created or modified under dir until ctx
// is cancelled. Files are processed in resume mode so a rewrite of an
// already ingested photo does not re-run OCR.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: watch target %s is not a directory", domain.ErrInvalidInput, dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching %s", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.extensions[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			if err := w.handle(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(w.settle):
	}

	result, err := w.ingest.IngestFile(ctx, path, domain.IngestOptions{Resume: true})
	if err != nil {
		return err
	}
	if w.onResult != nil {
		w.onResult(*result)
	}
	return nil
}
