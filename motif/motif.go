// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package motif compiles nucleotide motifs written with ambiguity codes
// into matchers and scans sequences for exons and motif occurrences.
package motif

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidMotif is returned for motif text that cannot be compiled.
	ErrInvalidMotif = errors.New("motif: invalid motif")

	// ErrEmptyMotifs is returned when no motifs are available.
	ErrEmptyMotifs = errors.New("motif: no motifs")
)

// ambiguity maps nucleotide ambiguity codes to the character classes they
// stand for. R is [AU] rather than the IUPAC [AG].
var ambiguity = map[rune]string{
	'Y': "[CT]",
	'R': "[AU]",
	'S': "[GC]",
	'W': "[AT]",
	'K': "[GT]",
	'M': "[AC]",
	'B': "[CGT]",
	'D': "[AGT]",
	'H': "[ACT]",
	'V': "[ACG]",
	'N': ".",
}

// Motif is a compiled sequence motif.
type Motif struct {
	// Raw is the motif as written in the input.
	Raw string

	// Pattern is the uppercased motif with ambiguity
	// codes expanded to character classes.
	Pattern string

	re *regexp.Regexp
}

// Compile returns a Motif for the raw motif text. Letters are case
// insensitive. Characters that are neither bases nor ambiguity codes
// match only themselves.
func Compile(raw string) (*Motif, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty motif", ErrInvalidMotif)
	}
	pat := Expand(raw)
	re, err := regexp.Compile("(?s)" + pat)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidMotif, raw, err)
	}
	return &Motif{Raw: raw, Pattern: pat, re: re}, nil
}

// Expand returns the uppercased motif with each ambiguity code replaced
// by its character class. A motif without ambiguity codes expands to
// itself in upper case.
func Expand(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if class, ok := ambiguity[r]; ok {
			b.WriteString(class)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return b.String()
}

// FindAll returns all occurrences of m in s, including overlapping ones,
// in order of their start position. Matching is exact, so s should be
// uppercased by the caller.
func (m *Motif) FindAll(s []byte) []Interval {
	var ivs []Interval
	for i := 0; i < len(s); {
		loc := m.re.FindIndex(s[i:])
		if loc == nil {
			break
		}
		start, end := i+loc[0], i+loc[1]
		if end > start {
			ivs = append(ivs, Interval{Start: start, End: end})
		}
		i = start + 1
	}
	return ivs
}

func (m *Motif) String() string { return m.Raw }
