// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

import "fmt"

// Interval is a half-open, zero-based range [Start, End) over a sequence.
type Interval struct {
	Start, End int
}

// Len returns the length of the interval.
func (iv Interval) Len() int { return iv.End - iv.Start }

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.End) }

func isUpper(b byte) bool { return 'A' <= b && b <= 'Z' }

// ScanExons returns the maximal runs of uppercase letters in bases, in
// order. The returned intervals are neither overlapping nor adjacent.
func ScanExons(bases []byte) []Interval {
	var (
		ivs   []Interval
		start = -1
	)
	for i, b := range bases {
		switch {
		case isUpper(b) && start < 0:
			start = i
		case !isUpper(b) && start >= 0:
			ivs = append(ivs, Interval{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		ivs = append(ivs, Interval{Start: start, End: len(bases)})
	}
	return ivs
}

// nonASCII stands in for bytes outside ASCII in the result of Upper.
const nonASCII = 0x7f

// Upper returns a copy of bases with ASCII letters uppercased and every
// byte outside ASCII replaced by a single placeholder byte, so positions
// in the copy are the positions in bases. Such bytes are matched only by
// the N ambiguity code, one byte per position.
func Upper(bases []byte) []byte {
	upper := make([]byte, len(bases))
	for i, b := range bases {
		switch {
		case 'a' <= b && b <= 'z':
			b -= 'a' - 'A'
		case b >= 0x80:
			b = nonASCII
		}
		upper[i] = b
	}
	return upper
}

// ScanMotif returns every occurrence of m in upper, which must be the
// result of Upper. Overlapping occurrences are all reported.
func ScanMotif(upper []byte, m *Motif) []Interval {
	return m.FindAll(upper)
}
