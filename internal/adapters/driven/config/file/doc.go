// Package file provides a TOML file-based configuration store.
//
// Global settings live in ~/.partsbin/config.toml. A partsbin.toml in
// the working directory overlays the global file, so a project folder
// can pin its own backend, OCR service, and hooks without touching the
// user-wide config. Writes always go to the global file.
package file
