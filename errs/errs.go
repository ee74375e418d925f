// Package errs defines the sentinel errors shared across ifc1's packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...", errs.ErrX, ...) to attach
// context while keeping the sentinel matchable with errors.Is.
package errs

import "errors"

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat is returned when a file extension maps to no strategy.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrInvalidContainer is returned when a container's magic bytes don't match "IFC1".
	ErrInvalidContainer = errors.New("invalid IFC1 container")

	// ErrUnsupportedVersion is returned when a container's version byte isn't 1.
	ErrUnsupportedVersion = errors.New("unsupported container version")

	// ErrMalformedTokenStream is returned when a decoder encounters an unexpected token.
	ErrMalformedTokenStream = errors.New("malformed token stream")

	// ErrDictionaryMiss is returned when a token references an unknown dictionary id.
	ErrDictionaryMiss = errors.New("dictionary miss")

	// ErrUnknownToken is returned when Huffman.Encode sees a token key absent from the codebook.
	ErrUnknownToken = errors.New("unknown token")

	// ErrColumnLengthMismatch is returned when CSV reconstruction finds ragged columns.
	ErrColumnLengthMismatch = errors.New("column length mismatch")

	// ErrEndOfStream is returned by the bit reader when a read runs past the end of the payload.
	ErrEndOfStream = errors.New("end of bit stream")

	// ErrEmptyCodebook is returned when Huffman.Encode is attempted before Build.
	ErrEmptyCodebook = errors.New("huffman codebook not built")
)
