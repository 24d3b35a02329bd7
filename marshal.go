package inilib

import (
	"bytes"
	"fmt"
	"io"
)

// MarshalText renders the Document as INI text: a bracketed header per
// section, "key = value" lines in insertion order, and exactly one blank
// line between consecutive sections. An empty section renders as a bare
// header. Comments from the parsed source are not carried through.
func (d *Document) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the Document as INI text to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for i, s := range d.sections {
		if i > 0 {
			m, err := io.WriteString(w, "\n")
			n += int64(m)
			if err != nil {
				return n, err
			}
		}
		m, err := fmt.Fprintf(w, "[%s]\n", s.name)
		n += int64(m)
		if err != nil {
			return n, err
		}
		for _, k := range s.keys {
			m, err := fmt.Fprintf(w, "%s = %s\n", k, s.values[k])
			n += int64(m)
			if err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

// String returns the INI text form of the Document.
func (d *Document) String() string {
	b, _ := d.MarshalText()
	return string(b)
}
