// File: inilib/keywords.go
package inilib

import (
	"context"
	"fmt"
	"strings"

	"zombiezen.com/go/log"
)

// Library exposes the store as a keyword surface for test-automation
// frameworks. Each keyword maps 1:1 to a Store operation, takes a context
// for logging, and logs the invocation and its outcome. Store errors
// propagate unchanged: the host framework fails the invoking step; there is
// no recovery or retry here.
//
// Like the Store it wraps, a Library is not safe for concurrent use.
type Library struct {
	store *Store
}

// NewLibrary returns a Library over a fresh Store with nothing loaded.
func NewLibrary() *Library {
	return &Library{store: NewStore()}
}

// NewLibraryWithStore returns a Library over an existing Store.
func NewLibraryWithStore(s *Store) *Library {
	return &Library{store: s}
}

// Store returns the underlying store for direct access.
func (l *Library) Store() *Store {
	return l.store
}

// LoadIniFile implements the "Load Ini File" keyword: parses the file at
// path into a fresh document, replacing any previously loaded one. A failed
// load leaves the previous document in place.
func (l *Library) LoadIniFile(ctx context.Context, path string) error {
	if err := l.store.Load(path); err != nil {
		log.Errorf(ctx, "Load Ini File %s: %v", path, err)
		return err
	}
	log.Infof(ctx, "Loaded INI file %s (%d sections)", path, l.store.doc.Len())
	return nil
}

// GetIniValue implements the "Get INI Value" keyword: the value of key in
// section.
func (l *Library) GetIniValue(ctx context.Context, section, key string) (string, error) {
	v, err := l.store.GetValue(section, key)
	if err != nil {
		log.Errorf(ctx, "Get INI Value [%s] %s: %v", section, key, err)
		return "", err
	}
	log.Infof(ctx, "Get INI Value [%s] %s = %s", section, key, v)
	return v, nil
}

// SetIniValue implements the "Set INI Value" keyword: stores value under key
// in section, creating the section when absent. Values are strings; the
// caller stringifies anything else first.
func (l *Library) SetIniValue(ctx context.Context, section, key, value string) error {
	if err := l.store.SetValue(section, key, value); err != nil {
		log.Errorf(ctx, "Set INI Value [%s] %s: %v", section, key, err)
		return err
	}
	log.Infof(ctx, "Set INI Value [%s] %s = %s", section, key, value)
	return nil
}

// RemoveIniKey implements the "Remove Ini Key" keyword. Removing an absent
// key, or from an absent section, is a logged no-op, never a failure.
func (l *Library) RemoveIniKey(ctx context.Context, section, key string) error {
	existed := l.store.KeyExists(section, key)
	if err := l.store.RemoveKey(section, key); err != nil {
		log.Errorf(ctx, "Remove Ini Key [%s] %s: %v", section, key, err)
		return err
	}
	if existed {
		log.Infof(ctx, "Removed key %s from section [%s]", key, section)
	} else {
		log.Debugf(ctx, "Key %s not present in section [%s]; nothing to remove", key, section)
	}
	return nil
}

// RemoveSection implements the "Remove Section" keyword. An absent section
// is a logged no-op, never a failure.
func (l *Library) RemoveSection(ctx context.Context, section string) error {
	existed := l.store.SectionExists(section)
	if err := l.store.RemoveSection(section); err != nil {
		log.Errorf(ctx, "Remove Section [%s]: %v", section, err)
		return err
	}
	if existed {
		log.Infof(ctx, "Removed section [%s]", section)
	} else {
		log.Debugf(ctx, "Section [%s] not present; nothing to remove", section)
	}
	return nil
}

// SectionExists implements the "Section Exists" keyword. Absence is a valid
// result, not a failure; a store with nothing loaded has no sections.
func (l *Library) SectionExists(ctx context.Context, section string) bool {
	ok := l.store.SectionExists(section)
	log.Debugf(ctx, "Section [%s] exists: %t", section, ok)
	return ok
}

// KeyExists implements the "Key Exists" keyword. False covers an absent
// section, an absent key, and a store with nothing loaded.
func (l *Library) KeyExists(ctx context.Context, section, key string) bool {
	ok := l.store.KeyExists(section, key)
	log.Debugf(ctx, "Key %s in section [%s] exists: %t", key, section, ok)
	return ok
}

// GetAllKeysAndValues implements the "Get All Keys And Values" keyword: a
// copy of every key/value pair in section. An existing empty section yields
// an empty map.
func (l *Library) GetAllKeysAndValues(ctx context.Context, section string) (map[string]string, error) {
	kv, err := l.store.GetAllKeysAndValues(section)
	if err != nil {
		log.Errorf(ctx, "Get All Keys And Values [%s]: %v", section, err)
		return nil, err
	}
	log.Infof(ctx, "Section [%s] has %d keys", section, len(kv))
	return kv, nil
}

// GetValuesList implements the "Get Values List" keyword: the values stored
// under key in section, as a list. The document keeps one value per key, so
// success is a single-element list.
func (l *Library) GetValuesList(ctx context.Context, section, key string) ([]string, error) {
	vs, err := l.store.GetValuesList(section, key)
	if err != nil {
		log.Errorf(ctx, "Get Values List [%s] %s: %v", section, key, err)
		return nil, err
	}
	log.Infof(ctx, "Get Values List [%s] %s = %v", section, key, vs)
	return vs, nil
}

// SaveIniFile implements the "Save Ini File" keyword: serializes the
// document to path.
func (l *Library) SaveIniFile(ctx context.Context, path string) error {
	if err := l.store.Save(path); err != nil {
		log.Errorf(ctx, "Save Ini File %s: %v", path, err)
		return err
	}
	log.Infof(ctx, "Saved INI file %s", path)
	return nil
}

// keywordSpec binds a canonical keyword name to its argument count and its
// invocation.
type keywordSpec struct {
	name  string
	arity int
	run   func(l *Library, ctx context.Context, args []string) (any, error)
}

var keywordTable = []keywordSpec{
	{"Load Ini File", 1, func(l *Library, ctx context.Context, args []string) (any, error) {
		return nil, l.LoadIniFile(ctx, args[0])
	}},
	{"Get INI Value", 2, func(l *Library, ctx context.Context, args []string) (any, error) {
		return l.GetIniValue(ctx, args[0], args[1])
	}},
	{"Set INI Value", 3, func(l *Library, ctx context.Context, args []string) (any, error) {
		return nil, l.SetIniValue(ctx, args[0], args[1], args[2])
	}},
	{"Remove Ini Key", 2, func(l *Library, ctx context.Context, args []string) (any, error) {
		return nil, l.RemoveIniKey(ctx, args[0], args[1])
	}},
	{"Remove Section", 1, func(l *Library, ctx context.Context, args []string) (any, error) {
		return nil, l.RemoveSection(ctx, args[0])
	}},
	{"Section Exists", 1, func(l *Library, ctx context.Context, args []string) (any, error) {
		return l.SectionExists(ctx, args[0]), nil
	}},
	{"Key Exists", 2, func(l *Library, ctx context.Context, args []string) (any, error) {
		return l.KeyExists(ctx, args[0], args[1]), nil
	}},
	{"Get All Keys And Values", 1, func(l *Library, ctx context.Context, args []string) (any, error) {
		return l.GetAllKeysAndValues(ctx, args[0])
	}},
	{"Get Values List", 2, func(l *Library, ctx context.Context, args []string) (any, error) {
		return l.GetValuesList(ctx, args[0], args[1])
	}},
	{"Save Ini File", 1, func(l *Library, ctx context.Context, args []string) (any, error) {
		return nil, l.SaveIniFile(ctx, args[0])
	}},
}

// Keywords returns the canonical keyword names in table order.
func (l *Library) Keywords() []string {
	names := make([]string, len(keywordTable))
	for i, kw := range keywordTable {
		names[i] = kw.name
	}
	return names
}

// Run invokes a keyword by name, for hosts that route calls by string.
// Matching is tolerant the way keyword-driven frameworks are: ASCII
// case-insensitive and blind to spaces, tabs, and underscores, so
// "Load INI File", "load_ini_file", and "Load Ini File" all dispatch the
// same keyword. An unmatched name fails with ErrUnknownKeyword; a wrong
// argument count names the keyword and both counts.
func (l *Library) Run(ctx context.Context, name string, args ...string) (any, error) {
	want := normalizeKeyword(name)
	for _, kw := range keywordTable {
		if normalizeKeyword(kw.name) != want {
			continue
		}
		if len(args) != kw.arity {
			return nil, fmt.Errorf("keyword %q expects %d arguments, got %d", kw.name, kw.arity, len(args))
		}
		return kw.run(l, ctx, args)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyword, name)
}

var keywordNormalizer = strings.NewReplacer(" ", "", "\t", "", "_", "")

// normalizeKeyword folds a keyword name for matching.
func normalizeKeyword(name string) string {
	return strings.ToLower(keywordNormalizer.Replace(name))
}
