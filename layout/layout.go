// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout places annotated sequence records and a motif legend on a
// two dimensional canvas.
//
// Coordinates are in device units with the origin at the top left of the
// canvas and y increasing downwards. Sequence position p of a record is
// drawn at x = Origin + p.
package layout

import (
	"fmt"
	"unicode/utf8"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/motifmark/motif"
)

// Config holds the geometry used by New.
type Config struct {
	// Margin is the horizontal space either side of
	// the longest sequence and the x position of
	// the first legend entry.
	Margin float64

	// RowHeight is the vertical space given to each record.
	RowHeight float64

	// HeaderHeight is the additional vertical space
	// below the last row.
	HeaderHeight float64

	// HeaderRise is the distance the record header is
	// placed above the record's baseline.
	HeaderRise float64

	// LegendTop is the y position of the top of the
	// legend swatches, Swatch is their size.
	LegendTop float64
	Swatch    float64

	// LabelGap is the gap between a swatch and its label,
	// LabelBaseline is the y position of the label text.
	LabelGap      float64
	LabelBaseline float64

	// LabelAdvance is the width reserved per character of
	// a motif label when Measure is nil. The swatch width
	// is reserved in addition.
	LabelAdvance float64

	// Measure returns the rendered width of a label. If it
	// is not nil, legend entries are spaced by measured
	// label width rather than by character count.
	Measure func(string) float64
}

// DefaultConfig is the reference geometry.
var DefaultConfig = Config{
	Margin:        25,
	RowHeight:     50,
	HeaderHeight:  50,
	HeaderRise:    15,
	LegendTop:     10,
	Swatch:        10,
	LabelGap:      1,
	LabelBaseline: 17,
	LabelAdvance:  10,
}

// Face returns the named Liberation font face, for example
// "LiberationSans-Regular", at the given size.
func Face(name string, size float64) (font.Face, error) {
	for _, f := range liberation.Collection() {
		if f.Name() == name {
			f.Font.Size = vg.Length(size)
			return f, nil
		}
	}
	return font.Face{}, fmt.Errorf("layout: unknown font %q", name)
}

// FontMeasure returns a Measure function using the metrics of the
// named font at the given size.
func FontMeasure(name string, size float64) (func(string) float64, error) {
	f, err := Face(name, size)
	if err != nil {
		return nil, err
	}
	return func(s string) float64 { return f.Width(s).Points() }, nil
}

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with its top left corner at Min.
type Rect struct {
	Min  Point
	W, H float64
}

// Row is the placement of a single record.
type Row struct {
	// Baseline is the y position of the
	// record's sequence line.
	Baseline float64

	// Header is the position of the record
	// header text.
	Header Point

	// Length is the record's sequence length.
	Length int
}

// Entry is the placement of a single legend entry.
type Entry struct {
	Motif  *motif.Motif
	X      float64
	Swatch Rect
	Label  Point
}

// Layout is the placement of all records and legend entries.
type Layout struct {
	Width, Height int

	// Origin is the x position of
	// sequence position zero.
	Origin float64

	Rows   []Row
	Legend []Entry
}

// New returns the layout of recs and a legend for motifs. Rows are
// assigned in record order and legend entries in motif order.
func New(recs []motif.Annotated, motifs []*motif.Motif, cfg Config) Layout {
	var maxLen int
	for _, r := range recs {
		if r.Len() > maxLen {
			maxLen = r.Len()
		}
	}

	l := Layout{
		Width:  int(float64(maxLen) + 2*cfg.Margin),
		Height: int(float64(len(recs))*cfg.RowHeight + cfg.HeaderHeight),
		Origin: cfg.Margin,
		Rows:   make([]Row, len(recs)),
		Legend: make([]Entry, len(motifs)),
	}

	for i, r := range recs {
		y := float64(i+1) * cfg.RowHeight
		l.Rows[i] = Row{
			Baseline: y,
			Header:   Point{X: cfg.Margin, Y: y - cfg.HeaderRise},
			Length:   r.Len(),
		}
	}

	x := cfg.Margin
	for i, m := range motifs {
		l.Legend[i] = Entry{
			Motif: m,
			X:     x,
			Swatch: Rect{
				Min: Point{X: x, Y: cfg.LegendTop},
				W:   cfg.Swatch,
				H:   cfg.Swatch,
			},
			Label: Point{X: x + cfg.Swatch + cfg.LabelGap, Y: cfg.LabelBaseline},
		}
		x += cfg.advance(m.Raw)
	}

	return l
}

// advance returns the horizontal space reserved for a legend entry.
func (cfg Config) advance(label string) float64 {
	if cfg.Measure == nil {
		return cfg.LabelAdvance*float64(utf8.RuneCountInString(label)) + cfg.Swatch
	}
	return cfg.Swatch + cfg.LabelGap + cfg.Measure(label) + cfg.Swatch
}

// X returns the x position of sequence position p.
func (l Layout) X(p int) float64 { return l.Origin + float64(p) }
