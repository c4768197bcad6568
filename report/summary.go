// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/biogo/store/interval"
	"github.com/biogo/store/step"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/motifmark/motif"
)

// Summary describes the occurrences of a single motif across all records.
type Summary struct {
	Motif *motif.Motif

	// Count is the number of occurrences and
	// Records is the number of records with at
	// least one occurrence.
	Count   int
	Records int

	// Exonic is the number of occurrences that
	// overlap an exon.
	Exonic int

	// Covered is the number of bases covered by
	// the union of all occurrences.
	Covered int

	// MeanStart and SDStart are the mean and sample
	// standard deviation of occurrence start positions.
	// They are NaN when undefined.
	MeanStart, SDStart float64
}

// exon is an exon interval held in an interval tree.
type exon struct {
	id uintptr
	motif.Interval
}

func (e exon) Overlap(b interval.IntRange) bool {
	return e.End > b.Start && e.Start < b.End
}
func (e exon) ID() uintptr              { return e.id }
func (e exon) Range() interval.IntRange { return interval.IntRange{Start: e.Start, End: e.End} }

// query is an occurrence used to search an exon tree.
type query motif.Interval

func (q query) Overlap(b interval.IntRange) bool {
	return q.End > b.Start && q.Start < b.End
}

// covered is a bool type satisfying the step.Equaler interface.
type covered bool

func (c covered) Equal(e step.Equaler) bool { return c == e.(covered) }

// Summarize returns a Summary for each of motifs, in order, over recs.
func Summarize(recs []motif.Annotated, motifs []*motif.Motif) ([]Summary, error) {
	sums := make([]Summary, len(motifs))
	starts := make([][]float64, len(motifs))
	index := make(map[*motif.Motif]int, len(motifs))
	for i, m := range motifs {
		sums[i].Motif = m
		index[m] = i
	}

	for _, r := range recs {
		var t interval.IntTree
		for i, iv := range r.Exons {
			err := t.Insert(exon{id: uintptr(i), Interval: iv}, true)
			if err != nil {
				return nil, fmt.Errorf("report: %s: %v", r.ID, err)
			}
		}
		t.AdjustRanges()

		for _, h := range r.Hits {
			i, ok := index[h.Motif]
			if !ok || len(h.Sites) == 0 {
				continue
			}
			s := &sums[i]
			s.Count += len(h.Sites)
			s.Records++

			cov, err := step.New(0, r.Len(), covered(false))
			if err != nil {
				return nil, fmt.Errorf("report: %s: %v", r.ID, err)
			}
			for _, iv := range h.Sites {
				starts[i] = append(starts[i], float64(iv.Start))
				cov.SetRange(iv.Start, iv.End, covered(true))
				if t.Len() != 0 && len(t.Get(query(iv))) != 0 {
					s.Exonic++
				}
			}
			cov.Do(func(start, end int, e step.Equaler) {
				if e.(covered) {
					s.Covered += end - start
				}
			})
		}
	}

	for i := range sums {
		sums[i].MeanStart, sums[i].SDStart = math.NaN(), math.NaN()
		switch n := len(starts[i]); {
		case n == 1:
			sums[i].MeanStart = starts[i][0]
		case n > 1:
			sums[i].MeanStart, sums[i].SDStart = stat.MeanStdDev(starts[i], nil)
		}
	}
	return sums, nil
}

// WriteSummary writes sums to w as a tab aligned table.
func WriteSummary(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, "motif\toccurrences\trecords\texonic\tcovered\tmean start\tsd start")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			s.Motif.Raw, s.Count, s.Records, s.Exonic, s.Covered, float(s.MeanStart), float(s.SDStart))
	}
	return tw.Flush()
}

func float(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}
