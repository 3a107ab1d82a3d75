// Package errors defines all exported error sentinels for the fastatally library.
//
// This is the single source of truth for error values. Both the top-level
// fastatally package and any future subpackages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Configuration errors
var (
	ErrInvalidWorkers = errors.New("fastatally: worker count must be positive")
	ErrNilSource      = errors.New("fastatally: source is nil")
	ErrNilSink        = errors.New("fastatally: report sink is nil")
)

// Source errors
var (
	ErrSourceClosed = errors.New("fastatally: source is closed")
	ErrFileTooLarge = errors.New("fastatally: file size exceeds addressable buffer range")
)

// Sink errors
var (
	ErrShortWrite = errors.New("fastatally: report sink accepted a partial write")
)
