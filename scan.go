// FILE: inilib/scan.go
package inilib

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the named section into target, which must be a non-nil
// pointer to a struct. Fields match keys case-insensitively; an `ini` tag
// overrides the match. The document stores strings only, so the decoder
// converts weakly (numbers, bools) and through hooks (time.Duration,
// comma-separated lists into slices). Strict: an absent section fails with
// ErrSectionNotFound.
func (s *Store) Scan(section string, target any) error {
	// Validate target
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	sec, err := s.section(section)
	if err != nil {
		return err
	}

	input := make(map[string]any, sec.Len())
	for _, k := range sec.Keys() {
		v, _ := sec.Get(k)
		input[k] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "ini",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode failed for section %q: %w", section, err)
	}

	return nil
}
