// File: inilib/doc.go

// Package inilib provides an INI-backed configuration store and a keyword
// surface for test-automation frameworks: load an INI file, query and mutate
// its sections and keys, and save it back.
//
// Features:
//   - Ordered document model: sections and keys serialize in insertion order
//   - Tolerant INI parsing ('=' or ':' delimiters, '#' or ';' comments)
//   - Strict reads (GetValue, GetAllKeysAndValues, GetValuesList) versus
//     lenient existence checks and removals, as separate, deliberate contracts
//   - Mutations reject section names, keys, and values INI text cannot
//     represent, so every held document serializes and loads back unchanged
//   - Sentinel error taxonomy tested with errors.Is
//   - Atomic temp-and-rename saves
//   - Typed accessors (Int64, Float64, Bool, Duration) and struct decoding
//     of a section via mapstructure
//   - Export to TOML, JSON, or YAML
//   - Keyword façade with per-invocation logging and name-based dispatch
//
// Quick Start:
//
//	store, err := inilib.Open("service.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	url, err := store.GetValue("Database", "URL")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port, _ := store.Int64("Database", "Port")
//
//	store.SetValue("Database", "Timeout", "30s")
//	if err := store.Save("service.ini"); err != nil {
//	    log.Fatal(err)
//	}
//
// Keyword surface:
//
//	lib := inilib.NewLibrary()
//	if err := lib.LoadIniFile(ctx, "service.ini"); err != nil { ... }
//	value, err := lib.GetIniValue(ctx, "Database", "URL")
//	result, err := lib.Run(ctx, "Key Exists", "Database", "URL")
//
// Concurrency:
// A Store (and the Library wrapping it) is not safe for concurrent use.
// Parallel callers serialize access externally or hold one instance each;
// independent instances share no state.
package inilib
