// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_lexicon

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

//go:embed data/*.txt
var embedded embed.FS

// Kind names one lexicon table and the file it is read from.
type Kind string

const (
	KindAbbreviations Kind = "abbreviations"
	KindUnits         Kind = "units"
	KindVerbatim      Kind = "verbatim"
	KindAlphabet      Kind = "alphabet"
	KindForeign       Kind = "foreign"
	KindSymbols       Kind = "symbols"
)

// Kinds lists every table Load requires.
var Kinds = []Kind{KindAbbreviations, KindUnits, KindVerbatim, KindAlphabet, KindForeign, KindSymbols}

func (k Kind) File() string { return string(k) + ".txt" }

// =============================================================================
// Table
// =============================================================================

// Table is an immutable surface-to-replacement mapping.
type Table struct {
	kind    Kind
	entries map[string]string
	keys    []string
}

func newTable(kind Kind) *Table {
	return &Table{kind: kind, entries: make(map[string]string)}
}

func (t *Table) add(key, value string) error {
	if _, ok := t.entries[key]; ok {
		return fmt.Errorf("duplicate key %q", key)
	}
	t.entries[key] = value
	t.keys = append(t.keys, key)
	return nil
}

func (t *Table) Kind() Kind { return t.kind }

func (t *Table) Len() int { return len(t.entries) }

// Lookup is an exact, case-sensitive lookup.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Keys returns a copy of the keys, longest first.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i])) > len([]rune(out[j]))
	})
	return out
}

// =============================================================================
// Lexicon
// =============================================================================

// Lexicon holds every table. It is safe for concurrent use because nothing
// mutates it after Load returns.
type Lexicon struct {
	Abbreviations *Table
	Units         *Table
	Verbatim      *Table
	Alphabet      *Table
	Foreign       *Table
	Symbols       *Table
}

// Table returns the table of the given kind, or nil.
func (l *Lexicon) Table(kind Kind) *Table {
	switch kind {
	case KindAbbreviations:
		return l.Abbreviations
	case KindUnits:
		return l.Units
	case KindVerbatim:
		return l.Verbatim
	case KindAlphabet:
		return l.Alphabet
	case KindForeign:
		return l.Foreign
	case KindSymbols:
		return l.Symbols
	}
	return nil
}

// Letter returns the spoken name of a single letter, falling back to the
// lower-cased letter itself.
func (l *Lexicon) Letter(r rune) string {
	if name, ok := l.Alphabet.Lookup(string(r)); ok {
		return name
	}
	return strings.ToLower(string(r))
}

// Load reads every table from fsys. Any missing or malformed file fails the
// whole load.
func Load(fsys fs.FS) (*Lexicon, error) {
	lex := &Lexicon{}
	for _, kind := range Kinds {
		f, err := fsys.Open(kind.File())
		if err != nil {
			return nil, fmt.Errorf("lexicon: open %s: %w", kind.File(), err)
		}
		table, err := readTable(kind, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}
		switch kind {
		case KindAbbreviations:
			lex.Abbreviations = table
		case KindUnits:
			lex.Units = table
		case KindVerbatim:
			lex.Verbatim = table
		case KindAlphabet:
			lex.Alphabet = table
		case KindForeign:
			lex.Foreign = table
		case KindSymbols:
			lex.Symbols = table
		}
	}
	return lex, nil
}

// LoadDefault loads the tables compiled into the binary.
func LoadDefault() (*Lexicon, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	return Load(sub)
}

// LoadDir loads the tables from a directory on disk.
func LoadDir(dir string) (*Lexicon, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("lexicon: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}
