// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report provides textual reports of annotated sequence records:
// a GFF feature listing and a per-motif summary table.
package report

import (
	"io"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"github.com/biogo/motifmark/motif"
)

// Source is the GFF source field of written features.
const Source = "motifmark"

// WriteGFF writes the exons and motif occurrences of recs to w as GFF
// features. Each record's features are preceded by a sequence metadata
// line.
func WriteGFF(w io.Writer, recs []motif.Annotated) error {
	out := gff.NewWriter(w, 60, true)
	for _, r := range recs {
		_, err := out.WriteMetaData(gff.Sequence{SeqName: r.ID, Type: feat.DNA})
		if err != nil {
			return err
		}
		for _, iv := range r.Exons {
			_, err = out.Write(feature(r.ID, "exon", iv, nil))
			if err != nil {
				return err
			}
		}
		for _, h := range r.Hits {
			attr := gff.Attributes{{Tag: "Motif", Value: `"` + h.Motif.Raw + `"`}}
			for _, iv := range h.Sites {
				_, err = out.Write(feature(r.ID, "motif", iv, attr))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func feature(name, kind string, iv motif.Interval, attr gff.Attributes) *gff.Feature {
	return &gff.Feature{
		SeqName:        name,
		Source:         Source,
		Feature:        kind,
		FeatStart:      iv.Start,
		FeatEnd:        iv.End,
		FeatStrand:     seq.Plus,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: attr,
	}
}
