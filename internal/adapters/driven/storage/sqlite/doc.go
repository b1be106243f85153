// Package sqlite provides a SQLite-backed inventory store.
//
// Records live in a single components table with a partial unique index
// on the content fingerprint. Insertion order is preserved through the
// implicit rowid, so listings are stable across restarts. Migrations are
// embedded and applied on open.
package sqlite
