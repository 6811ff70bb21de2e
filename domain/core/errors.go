package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Structural contract violations: the caller handed the pipeline
	// something it promised not to.
	ErrDegenerateTable = errors.New("degenerate table")
	ErrEmptyTable      = fmt.Errorf("%w: no data rows", ErrDegenerateTable)
	ErrColumnVanished  = fmt.Errorf("%w: resolved column missing from table", ErrDegenerateTable)

	// Upstream (I/O collaborator) failures.
	ErrUpstreamFetch  = errors.New("source file fetch failed")
	ErrUpstreamDecode = errors.New("source file decode failed")

	// Persistence failures.
	ErrProjectNotFound = errors.New("project not found")
)

// NewFetchError wraps a transport-level failure for a source URL.
func NewFetchError(url string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamFetch, url, err)
}

// NewDecodeError wraps a tabular-decoding failure.
func NewDecodeError(format string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamDecode, format, err)
}

// IsDegenerateTable reports whether err is a structural table violation.
func IsDegenerateTable(err error) bool {
	return errors.Is(err, ErrDegenerateTable)
}

// IsUpstreamError reports whether err originated in the fetch/decode layer.
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamFetch) || errors.Is(err, ErrUpstreamDecode)
}
