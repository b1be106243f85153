package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested component does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates an id or content hash collision on write.
	// The offending write is rejected; existing records are never
	// overwritten silently.
	ErrDuplicate = errors.New("duplicate component")

	// ErrImmutableField indicates an update touched id, content_hash,
	// or created_at.
	ErrImmutableField = errors.New("field is immutable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown OCR service or hook name.
	// This is a configuration error, fatal at startup.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrServiceUnavailable indicates the OCR collaborator failed or
	// timed out. Recoverable per file; the batch continues.
	ErrServiceUnavailable = errors.New("extraction service unavailable")

	// ErrReviewRejected indicates the reviewer declined a candidate.
	ErrReviewRejected = errors.New("rejected by reviewer")
)
