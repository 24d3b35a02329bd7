// File: inilib/document.go
package inilib

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document is the complete in-memory representation of one INI file. It owns
// all sections and preserves their insertion order, which drives
// serialization. A Document is not safe for concurrent use.
type Document struct {
	sections []*Section
	index    map[string]*Section
}

// Section is a named group of key/value entries. Keys are unique within the
// section and keep their insertion order; values are always strings. Section
// and key names are case-sensitive, kept exactly as written.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{index: make(map[string]*Section)}
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.sections)
}

// Sections returns the section names in insertion order. The slice is a copy.
func (d *Document) Sections() []string {
	names := make([]string, len(d.sections))
	for i, s := range d.sections {
		names[i] = s.name
	}
	return names
}

// Section returns the named section, or nil when absent.
func (d *Document) Section(name string) *Section {
	return d.index[name]
}

// Has reports whether the named section exists.
func (d *Document) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// HasKey reports whether key exists in the named section.
func (d *Document) HasKey(section, key string) bool {
	s, ok := d.index[section]
	if !ok {
		return false
	}
	_, ok = s.values[key]
	return ok
}

// Get returns the value of key in the named section.
func (d *Document) Get(section, key string) (string, bool) {
	s, ok := d.index[section]
	if !ok {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key in the named section, creating the section when
// absent. An existing key keeps its position; a new key appends. It fails
// with ErrInvalidEntry when the section name, key, or value cannot be
// represented in INI text; a rejected Set changes nothing, not even section
// creation.
func (d *Document) Set(section, key, value string) error {
	if err := validateEntry(section, key, value); err != nil {
		return err
	}
	d.ensureSection(section).put(key, value)
	return nil
}

// ensureSection returns the named section, appending a new empty one when
// absent. Duplicate headers during parse land here and merge.
func (d *Document) ensureSection(name string) *Section {
	if d.index == nil {
		d.index = make(map[string]*Section)
	}
	if s, ok := d.index[name]; ok {
		return s
	}
	s := &Section{name: name, values: make(map[string]string)}
	d.sections = append(d.sections, s)
	d.index[name] = s
	return s
}

// RemoveKey deletes key from the named section. An absent section or key is
// a no-op.
func (d *Document) RemoveKey(section, key string) {
	if s, ok := d.index[section]; ok {
		s.Delete(key)
	}
}

// RemoveSection deletes the named section and all its entries. An absent
// section is a no-op.
func (d *Document) RemoveSection(name string) {
	if _, ok := d.index[name]; !ok {
		return
	}
	delete(d.index, name)
	for i, s := range d.sections {
		if s.name == name {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the Document.
func (d *Document) Clone() *Document {
	out := NewDocument()
	for _, s := range d.sections {
		ns := out.ensureSection(s.name)
		for _, k := range s.keys {
			ns.put(k, s.values[k])
		}
	}
	return out
}

// Map returns a section name to key/value map snapshot of the Document.
// Mutating the result does not affect the Document. Map order is not
// document order; use Sections and Keys where order matters.
func (d *Document) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(d.sections))
	for _, s := range d.sections {
		out[s.name] = s.Map()
	}
	return out
}

// Name returns the section name exactly as written in the source.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of keys in the section.
func (s *Section) Len() int {
	return len(s.keys)
}

// Keys returns the key names in insertion order. The slice is a copy.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key. An existing key keeps its position; a new key
// appends. It fails with ErrInvalidEntry when the key or value cannot be
// represented in INI text.
func (s *Section) Set(key, value string) error {
	if !IsValidKey(key) {
		return fmt.Errorf("%w: key %q", ErrInvalidEntry, key)
	}
	if !IsValidValue(value) {
		return fmt.Errorf("%w: value %q", ErrInvalidEntry, value)
	}
	s.put(key, value)
	return nil
}

// put stores key/value without validation. The parser and Clone feed it
// input that already satisfies the entry rules.
func (s *Section) put(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Delete removes key. An absent key is a no-op.
func (s *Section) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			return
		}
	}
}

// Map returns a key/value copy of the section.
func (s *Section) Map() map[string]string {
	out := make(map[string]string, len(s.keys))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// validateEntry checks that a (section, key, value) triple survives a
// serialize/parse round trip unchanged.
func validateEntry(section, key, value string) error {
	if !IsValidSection(section) {
		return fmt.Errorf("%w: section name %q", ErrInvalidEntry, section)
	}
	if !IsValidKey(key) {
		return fmt.Errorf("%w: key %q", ErrInvalidEntry, key)
	}
	if !IsValidValue(value) {
		return fmt.Errorf("%w: value %q", ErrInvalidEntry, value)
	}
	return nil
}

// IsValidSection reports whether a string can be used as a section name in
// INI text: non-empty, no surrounding whitespace, no brackets, no line
// breaks.
func IsValidSection(name string) bool {
	if name == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	return !strings.ContainsAny(name, "[]\r\n")
}

// IsValidKey reports whether a string can be used as a key in INI text:
// non-empty, no surrounding whitespace, no line breaks, no '=' or ':'
// (the entry delimiters), and not starting with '[', '#', or ';' (a line
// starting with those parses as a header or comment).
func IsValidKey(key string) bool {
	if key == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(key)
	last, _ := utf8.DecodeLastRuneInString(key)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	if first == '[' || first == '#' || first == ';' {
		return false
	}
	return !strings.ContainsAny(key, "=:\r\n")
}

// IsValidValue reports whether a string can be stored as a value in INI
// text: no line breaks and no surrounding whitespace (the parser trims
// values, so padding would not survive a round trip). Empty values are
// valid.
func IsValidValue(value string) bool {
	if strings.ContainsAny(value, "\r\n") {
		return false
	}
	return strings.TrimSpace(value) == value
}
