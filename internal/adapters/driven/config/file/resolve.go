package file

import (
	"os"
	"strings"

	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// Storage backend names accepted in configuration and on the command
// line.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Local data files that mark a directory as a project inventory.
const (
	localSQLiteFile = "inventory.db"
	localJSONFile   = "components.json"
)

// StorageResolution is the outcome of resolving which backend to open
// and where its data lives. An empty Path means the backend's default
// location under ~/.partsbin/data.
type StorageResolution struct {
	Backend string
	Path    string
}

// ResolveStorage decides the storage backend and data path. Precedence,
// highest first:
//
//  1. explicit --db flag (backend inferred from the extension)
//  2. explicit --backend flag
//  3. storage.backend / storage.*_path config keys
//  4. an inventory.db or components.json in the working directory
//  5. the default SQLite database under ~/.partsbin/data
func ResolveStorage(cfg driven.ConfigStore, backendFlag, pathFlag string) StorageResolution {
	if pathFlag != "" {
		backend := backendFlag
		if backend == "" {
			backend = backendFromPath(pathFlag)
		}
		return StorageResolution{Backend: backend, Path: pathFlag}
	}

	backend := backendFlag
	if backend == "" && cfg != nil {
		backend = cfg.GetString("storage.backend")
	}

	if backend == "" {
		if fileExists(localSQLiteFile) {
			return StorageResolution{Backend: BackendSQLite, Path: localSQLiteFile}
		}
		if fileExists(localJSONFile) {
			return StorageResolution{Backend: BackendJSON, Path: localJSONFile}
		}
		backend = BackendSQLite
	}

	return StorageResolution{Backend: backend, Path: configuredPath(cfg, backend)}
}

func configuredPath(cfg driven.ConfigStore, backend string) string {
	if cfg == nil {
		return ""
	}
	if backend == BackendJSON {
		return cfg.GetString("storage.json_path")
	}
	return cfg.GetString("storage.sqlite_path")
}

func backendFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return BackendJSON
	}
	return BackendSQLite
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
