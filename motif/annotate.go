// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

import "github.com/biogo/motifmark/record"

// Hits holds the occurrences of a single motif in a record.
type Hits struct {
	Motif *Motif
	Sites []Interval
}

// Annotated is a record with its exons and motif occurrences. Hits are
// held in the order the motifs were given to Annotate.
type Annotated struct {
	record.Record
	Exons []Interval
	Hits  []Hits
}

// Annotate scans r for exons and for each of the motifs. Motif matching
// is case insensitive.
func Annotate(r record.Record, motifs []*Motif) Annotated {
	a := Annotated{
		Record: r,
		Exons:  ScanExons(r.Bases),
		Hits:   make([]Hits, len(motifs)),
	}
	upper := Upper(r.Bases)
	for i, m := range motifs {
		a.Hits[i] = Hits{Motif: m, Sites: ScanMotif(upper, m)}
	}
	return a
}

// AnnotateAll annotates each of recs in order.
func AnnotateAll(recs []record.Record, motifs []*Motif) []Annotated {
	annots := make([]Annotated, len(recs))
	for i, r := range recs {
		annots[i] = Annotate(r, motifs)
	}
	return annots
}

// Sites returns the occurrences of m in a, or nil if m was not scanned.
func (a Annotated) Sites(m *Motif) []Interval {
	for _, h := range a.Hits {
		if h.Motif == m {
			return h.Sites
		}
	}
	return nil
}
