// FILE: inilib/export.go
package inilib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatINI  = "ini"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export writes the document to w in the given format. INI output preserves
// document order; TOML, JSON, and YAML render the Map snapshot with the
// encoder's own ordering. It fails with ErrNotLoaded when nothing is loaded
// and rejects unrecognized formats.
func (s *Store) Export(w io.Writer, format string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}

	switch format {
	case FormatINI:
		_, err := s.doc.WriteTo(w)
		return err
	case FormatTOML:
		encoder := toml.NewEncoder(w)
		return encoder.Encode(s.doc.Map())
	case FormatJSON:
		data, err := json.MarshalIndent(s.doc.Map(), "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		data, err := yaml.Marshal(s.doc.Map())
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// ExportFile writes the document to path in the given format through the
// atomic writer. An empty format is detected from the path extension.
func (s *Store) ExportFile(path, format string) error {
	if format == "" {
		format = DetectFormat(path)
		if format == "" {
			return fmt.Errorf("cannot detect export format from %q", path)
		}
	}

	var buf bytes.Buffer
	if err := s.Export(&buf, format); err != nil {
		return err
	}
	if err := atomicWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// DetectFormat determines an export format from the file extension, or ""
// when the extension is not recognized.
func DetectFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ini", ".cfg", ".conf":
		return FormatINI
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}
