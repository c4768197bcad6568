// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLines returns the lines of a motif file with trailing white space
// removed. Blank lines are retained so that CompileAll can report them.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRightFunc(sc.Text(), isSpace))
	}
	err := sc.Err()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMotifs
	}
	return lines, nil
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// CompileAll compiles each line in order. Lines that fail to compile are
// dropped and reported in the returned diagnostics, each wrapping
// ErrInvalidMotif and naming its 1-based line number. The remaining
// motifs are unaffected by dropped lines.
func CompileAll(lines []string) ([]*Motif, []error) {
	var (
		motifs []*Motif
		diags  []error
	)
	for i, l := range lines {
		m, err := Compile(l)
		if err != nil {
			diags = append(diags, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		motifs = append(motifs, m)
	}
	return motifs, diags
}
