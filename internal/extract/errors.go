package extract

import "errors"

// Sentinel errors for package extract.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrNoBuiltin indicates a format with no built-in fallback decompressor.
	ErrNoBuiltin = errors.New("no built-in decompressor for format")

	// ErrNotExtractable indicates an identified format that cannot be
	// extracted by the built-in fallback.
	ErrNotExtractable = errors.New("format does not support extraction")

	// ErrUnsafePath indicates an archive entry that would escape the
	// extraction directory.
	ErrUnsafePath = errors.New("archive entry path escapes extraction directory")
)
