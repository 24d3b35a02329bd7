// File: inilib/store.go
package inilib

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store holds one parsed Document and mediates all reads, mutations, and
// persistence. A Store starts with nothing loaded; a successful Load
// replaces the document wholesale, a failed Load leaves the previous
// document untouched.
//
// A Store is not safe for concurrent use. Parallel callers serialize access
// externally or hold one Store each; independent Stores share nothing.
type Store struct {
	doc   *Document
	path  string
	dirty bool
}

// NewStore returns a Store with no document loaded.
func NewStore() *Store {
	return &Store{}
}

// Open is shorthand for NewStore followed by Load.
func Open(path string) (*Store, error) {
	s := NewStore()
	if err := s.Load(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the INI file at path into a fresh document,
// replacing any previously loaded document. A missing or unreadable path
// fails with ErrFileNotFound; malformed content fails with ErrParse. On any
// failure the previously loaded document, if one exists, stays loaded and
// unchanged.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	doc, err := ParseBytes(data)
	if err != nil {
		return fmt.Errorf("load %q: %w", path, err)
	}

	s.doc = doc
	s.path = path
	s.dirty = false
	return nil
}

// Loaded reports whether a document is currently loaded.
func (s *Store) Loaded() bool {
	return s.doc != nil
}

// Path returns the file path of the last successful Load or Save.
func (s *Store) Path() string {
	return s.path
}

// Dirty reports whether the document carries unsaved mutations.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Document returns the loaded document, or nil when nothing is loaded.
// Mutations made directly through the returned document bypass the dirty
// flag.
func (s *Store) Document() *Document {
	return s.doc
}

// section resolves a section for strict reads.
func (s *Store) section(name string) (*Section, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	sec := s.doc.Section(name)
	if sec == nil {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
	return sec, nil
}

// GetValue returns the value of key in section. It fails with
// ErrSectionNotFound when the section is absent and with ErrKeyNotFound when
// the key is absent in an existing section.
func (s *Store) GetValue(section, key string) (string, error) {
	sec, err := s.section(section)
	if err != nil {
		return "", err
	}
	v, ok := sec.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %q in section %q", ErrKeyNotFound, key, section)
	}
	return v, nil
}

// SetValue stores value under key in section, creating the section first
// when absent. Values are always strings; callers stringify other types
// before the call. It fails with ErrNotLoaded before Load, and with
// ErrInvalidEntry when the section name, key, or value cannot be
// represented in INI text; a rejected call leaves the document untouched.
func (s *Store) SetValue(section, key, value string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if err := s.doc.Set(section, key, value); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// RemoveKey deletes key from section. Removing an absent key, or from an
// absent section, is a silent no-op, mirroring idempotent delete semantics.
func (s *Store) RemoveKey(section, key string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if s.doc.HasKey(section, key) {
		s.doc.RemoveKey(section, key)
		s.dirty = true
	}
	return nil
}

// RemoveSection deletes section and all its keys. An absent section is a
// silent no-op.
func (s *Store) RemoveSection(section string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if s.doc.Has(section) {
		s.doc.RemoveSection(section)
		s.dirty = true
	}
	return nil
}

// SectionExists reports whether section exists. It never fails; a store with
// nothing loaded has no sections.
func (s *Store) SectionExists(section string) bool {
	return s.doc != nil && s.doc.Has(section)
}

// KeyExists reports whether key exists in section. It never fails; false
// covers an absent section, an absent key, and a store with nothing loaded.
func (s *Store) KeyExists(section, key string) bool {
	return s.doc != nil && s.doc.HasKey(section, key)
}

// GetAllKeysAndValues returns a copy of every key/value pair in section. An
// existing empty section yields an empty map; an absent section fails with
// ErrSectionNotFound.
func (s *Store) GetAllKeysAndValues(section string) (map[string]string, error) {
	sec, err := s.section(section)
	if err != nil {
		return nil, err
	}
	return sec.Map(), nil
}

// GetValuesList returns the values stored under key in section. The document
// keeps one value per key, so success is a single-element slice; errors
// mirror GetValue.
func (s *Store) GetValuesList(section, key string) ([]string, error) {
	v, err := s.GetValue(section, key)
	if err != nil {
		return nil, err
	}
	return []string{v}, nil
}

// Sections returns the section names in document order, or nil when nothing
// is loaded.
func (s *Store) Sections() []string {
	if s.doc == nil {
		return nil
	}
	return s.doc.Sections()
}

// Keys returns the key names of section in insertion order. Strict:
// ErrSectionNotFound when the section is absent.
func (s *Store) Keys(section string) ([]string, error) {
	sec, err := s.section(section)
	if err != nil {
		return nil, err
	}
	return sec.Keys(), nil
}

// Save serializes the document to path as INI text through an atomic
// temp-and-rename write; the destination directory must already exist. It
// fails with ErrNotLoaded before any successful Load and with ErrWrite on
// any filesystem failure. The in-memory document is unaffected either way.
func (s *Store) Save(path string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	data, err := s.doc.MarshalText()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := atomicWriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	s.path = path
	s.dirty = false
	return nil
}

// atomicWriteFile writes data to path through a temp file in the same
// directory followed by a rename, so the destination is never observed
// half-written.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in '%s': %w", dir, err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("write temp file '%s': %w", tempPath, err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("sync temp file '%s': %w", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file '%s': %w", tempPath, err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("set permissions on '%s': %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
