// File: inilib/parse.go
package inilib

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes caps the length of one input line.
const maxLineBytes = 1 << 20

// Parse reads INI text from r into a new Document.
//
// Section headers are bracketed names; the name itself may not contain
// brackets. Entries are "key = value" or "key: value" lines; the first '='
// or ':' on the line is the delimiter, and key and value are trimmed of
// surrounding whitespace. Values run verbatim to end of line, so trailing
// '#' or ';' text stays part of the value. Blank lines and lines starting
// with '#' or ';' are skipped.
//
// Duplicate section headers merge into the first occurrence; keys seen again
// overwrite earlier values in place. Malformed input fails with an error
// wrapping ErrParse that names the offending line: an entry with no
// delimiter, an entry before any section header, an empty key, a broken
// header, a stray carriage return, or a line over the one-megabyte limit.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()
	var current *Section

	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineBytes)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if strings.ContainsRune(line, '\r') {
			return nil, fmt.Errorf("%w: line %d: carriage return in %q", ErrParse, lineno, line)
		}

		if line[0] == '[' {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("%w: line %d: malformed section header %q", ErrParse, lineno, line)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("%w: line %d: empty section name", ErrParse, lineno)
			}
			if strings.ContainsAny(name, "[]") {
				return nil, fmt.Errorf("%w: line %d: malformed section header %q", ErrParse, lineno, line)
			}
			current = doc.ensureSection(name)
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("%w: line %d: entry %q outside any section", ErrParse, lineno, line)
		}
		sep := strings.IndexAny(line, "=:")
		if sep < 0 {
			return nil, fmt.Errorf("%w: line %d: no '=' or ':' delimiter in %q", ErrParse, lineno, line)
		}
		key := strings.TrimSpace(line[:sep])
		if key == "" {
			return nil, fmt.Errorf("%w: line %d: empty key", ErrParse, lineno)
		}
		current.put(key, strings.TrimSpace(line[sep+1:]))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrParse, lineno+1, err)
	}

	return doc, nil
}

// ParseBytes parses INI text held in memory.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}
