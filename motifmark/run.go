// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/exp/rand"

	"github.com/biogo/motifmark/colors"
	"github.com/biogo/motifmark/config"
	"github.com/biogo/motifmark/layout"
	"github.com/biogo/motifmark/motif"
	"github.com/biogo/motifmark/record"
	"github.com/biogo/motifmark/render"
	"github.com/biogo/motifmark/report"
)

// errInputNotFound is returned when an input file cannot be opened.
var errInputNotFound = errors.New("input not found")

type options struct {
	fasta  string
	motifs string
	name   string

	seed uint64

	gff     string
	summary bool
	verbose bool

	conf config.Config
}

// run draws the image described by o. Progress and warnings are written
// to logger and the summary table, if requested, to out. Nothing is
// written to the output image path unless the whole image is produced,
// and the GFF file, if requested, is removed when the image fails.
func run(o options, out io.Writer, logger *log.Logger) error {
	logger.Printf("reading sequences from %q.", o.fasta)
	recs, err := readRecords(o.fasta)
	if err != nil {
		return err
	}

	logger.Printf("reading motifs from %q.", o.motifs)
	lines, err := readMotifs(o.motifs)
	if err != nil {
		return err
	}
	motifs, diags := motif.CompileAll(lines)
	for _, d := range diags {
		logger.Printf("warning: skipping motif in %q: %v", o.motifs, d)
	}
	if len(motifs) == 0 {
		return fmt.Errorf("%q: %w", o.motifs, motif.ErrEmptyMotifs)
	}

	annots := motif.AnnotateAll(recs, motifs)
	if o.verbose {
		for _, a := range annots {
			var n int
			for _, h := range a.Hits {
				n += len(h.Sites)
			}
			logger.Printf("%s: %d bases, %d exons, %d motif sites.", a.ID, a.Len(), len(a.Exons), n)
		}
	}

	pal := allocate(o, motifs, logger)

	lconf, err := o.conf.Layout()
	if err != nil {
		return err
	}
	l := layout.New(annots, motifs, lconf)
	st := o.conf.Style()
	ops := render.Plan(l, annots, pal, st)

	if o.gff != "" {
		err = writeGFF(o.gff, annots)
		if err != nil {
			return err
		}
		logger.Printf("wrote features to %q.", o.gff)
	}
	if o.summary {
		sums, err := report.Summarize(annots, motifs)
		if err != nil {
			return err
		}
		err = report.WriteSummary(out, sums)
		if err != nil {
			return err
		}
	}

	path := o.name + ".svg"
	err = render.WriteSVG(path, l, ops, st)
	if err != nil {
		if o.gff != "" {
			os.Remove(o.gff)
		}
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	logger.Printf("wrote %d sequences and %d motifs to %q.", len(recs), len(motifs), path)
	return nil
}

func readRecords(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInputNotFound, err)
	}
	defer f.Close()
	recs, err := record.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return recs, nil
}

func readMotifs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInputNotFound, err)
	}
	defer f.Close()
	lines, err := motif.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return lines, nil
}

// allocate returns motif colors according to the configured color mode.
func allocate(o options, motifs []*motif.Motif, logger *log.Logger) colors.Assignment {
	switch o.conf.Colors {
	case config.Rainbow:
		return colors.Rainbow(motifs)
	case config.Distinct:
		logger.Printf("using color seed %d.", o.seed)
		rnd := rand.New(rand.NewSource(o.seed))
		return colors.AllocateDistinct(motifs, rnd, o.conf.MinDistance, o.conf.Tries)
	default:
		logger.Printf("using color seed %d.", o.seed)
		return colors.Allocate(motifs, rand.New(rand.NewSource(o.seed)))
	}
}

func writeGFF(path string, annots []motif.Annotated) error {
	err := render.WriteFile(path, func(w io.Writer) error {
		return report.WriteGFF(w, annots)
	})
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
