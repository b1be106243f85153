package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// fakeIngest records which files the watcher hands over.
type fakeIngest struct {
	results chan domain.IngestResult
}

func (f *fakeIngest) IngestPath(context.Context, string, domain.IngestOptions) (*domain.IngestReport, error) {
	panic("watcher must ingest single files")
}

func (f *fakeIngest) IngestFile(_ context.Context, path string, opts domain.IngestOptions) (*domain.IngestResult, error) {
	result := &domain.IngestResult{SourceFile: path, Status: domain.IngestAdded, ComponentID: "id-1"}
	if !opts.Resume {
		result.Status = domain.IngestFailed
	}
	f.results <- *result
	return result, nil
}

func TestWatcher_IngestsNewPhotos(t *testing.T) {
	dir := t.TempDir()
	ingest := &fakeIngest{results: make(chan domain.IngestResult, 8)}

	var seen []domain.IngestResult
	w := NewWatcher(ingest, domain.IngestOptions{}, func(r domain.IngestResult) {
		seen = append(seen, r)
	})
	w.SetSettleDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx, dir) }()

	// Give the watcher time to register before creating files.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.jpg"), []byte("jpeg"), 0o644))

	select {
	case r := <-ingest.results:
		assert.Equal(t, filepath.Join(dir, "new.jpg"), r.SourceFile)
		assert.Equal(t, domain.IngestAdded, r.Status, "watcher must ingest in resume mode")
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not pick up the new photo")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.NotEmpty(t, seen)
}

func TestWatcher_IgnoresNonPhotoFiles(t *testing.T) {
	dir := t.TempDir()
	ingest := &fakeIngest{results: make(chan domain.IngestResult, 8)}

	w := NewWatcher(ingest, domain.IngestOptions{}, nil)
	w.SetSettleDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Watch(ctx, dir)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("text"), 0o644))

	select {
	case r := <-ingest.results:
		t.Fatalf("unexpected ingestion of %s", r.SourceFile)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_RejectsFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(file, []byte("jpeg"), 0o644))

	w := NewWatcher(&fakeIngest{results: make(chan domain.IngestResult, 1)}, domain.IngestOptions{}, nil)
	err := w.Watch(context.Background(), file)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
