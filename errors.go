// File: inilib/errors.go
package inilib

import "errors"

// Sentinel errors returned by Store and Library operations. Call sites wrap
// them with fmt.Errorf and %w to add context; callers test with errors.Is.
var (
	// ErrFileNotFound indicates the Load target does not exist or cannot be read.
	ErrFileNotFound = errors.New("ini file not found")

	// ErrParse indicates malformed INI syntax. The message names the offending line.
	ErrParse = errors.New("ini parse error")

	// ErrNotLoaded indicates an operation that needs a document ran before
	// any successful Load.
	ErrNotLoaded = errors.New("no ini document loaded")

	// ErrSectionNotFound indicates a strict read addressed an absent section.
	ErrSectionNotFound = errors.New("section not found")

	// ErrKeyNotFound indicates a strict read addressed an absent key in an
	// existing section.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidEntry indicates a mutation whose section name, key, or value
	// cannot be represented in INI text.
	ErrInvalidEntry = errors.New("invalid ini entry")

	// ErrWrite indicates a filesystem failure while persisting the document.
	ErrWrite = errors.New("ini write failed")

	// ErrUnknownKeyword indicates a Run call with a name no keyword matches.
	ErrUnknownKeyword = errors.New("unknown keyword")
)
