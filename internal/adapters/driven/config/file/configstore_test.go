package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestConfigStore_SetAndGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("storage.backend", "json"))
	require.NoError(t, s.Set("ocr.timeout_seconds", int64(30)))
	require.NoError(t, s.Set("ingest.preprocess", []string{"trim_space"}))
	require.NoError(t, s.Set("verbose", true))

	assert.Equal(t, "json", s.GetString("storage.backend"))
	assert.Equal(t, 30, s.GetInt("ocr.timeout_seconds"))
	assert.Equal(t, []string{"trim_space"}, s.GetStringSlice("ingest.preprocess"))
	assert.True(t, s.GetBool("verbose"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", s.GetString("nope"))
	assert.Equal(t, 0, s.GetInt("nope"))
	assert.False(t, s.GetBool("nope"))
	assert.Nil(t, s.GetStringSlice("nope"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set("key", int64(5)))

	assert.Equal(t, "", s.GetString("key"))
	assert.False(t, s.GetBool("key"))
	assert.Nil(t, s.GetStringSlice("key"))
}

func TestConfigStore_PersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("ocr.service", "mistral"))

	s2, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "mistral", s2.GetString("ocr.service"))
}

func TestConfigStore_NestedTOMLFlattens(t *testing.T) {
	dir := t.TempDir()
	cfg := "[storage]\nbackend = \"json\"\n\n[hooks.tag]\nkey = \"bin\"\nvalue = \"A3\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0o600))

	s, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "json", s.GetString("storage.backend"))
	assert.Equal(t, "bin", s.GetString("hooks.tag.key"))
	assert.Equal(t, "A3", s.GetString("hooks.tag.value"))
}

func TestConfigStore_ProjectOverlayWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[storage]\nbackend = \"sqlite\"\n"), 0o600))

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.loadOverlay(writeOverlay(t, "[storage]\nbackend = \"json\"\n")))

	assert.Equal(t, "json", s.GetString("storage.backend"))

	// Writes still land in the global file, not the overlay.
	require.NoError(t, s.Set("ocr.service", "openai"))
	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "openai")
}

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), s.Path())
}
