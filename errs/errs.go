// Package errs defines the sentinel errors returned by rsdict and its sub-packages.
//
// Callers should match these with errors.Is, since call sites usually wrap them
// with additional context.
package errs

import "errors"

var (
	// ErrOutOfRange is returned when a position or bit offset lies beyond the current length.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNotFound is returned by select operations when the requested occurrence does not exist.
	ErrNotFound = errors.New("occurrence not found")
)

// Serialization errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrCorruptPayload     = errors.New("corrupt payload")
)
