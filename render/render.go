// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns a layout of annotated records into drawing
// instructions and draws them onto a vector canvas.
//
// Each record is drawn as a thin baseline spanning its length, with exons
// as thick black segments on the baseline and motif occurrences as thick
// colored segments drawn over them in motif order, so that the last
// listed motif is visible where occurrences overlap.
package render

import (
	"image/color"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/motifmark/layout"
	"github.com/biogo/motifmark/motif"
)

// DisplayOffset is added to the zero-based start of an interval when it
// is drawn, giving the one-based inclusive span [Start+1, End].
const DisplayOffset = 1

// Style holds the stroke and text settings of a drawing.
type Style struct {
	BaselineWidth float64
	FeatureWidth  float64

	// Font is the name of a Liberation face,
	// see layout.Face.
	Font     string
	FontSize float64

	// Ink is the color of text, baselines and exons.
	Ink color.Color
}

// DefaultStyle is the reference drawing style.
var DefaultStyle = Style{
	BaselineWidth: 1,
	FeatureWidth:  10,
	Font:          "LiberationSans-Regular",
	FontSize:      8,
	Ink:           color.Black,
}

// Palette provides the display color for a motif.
type Palette interface {
	Of(*motif.Motif) color.Color
}

// Op is a positioned drawing instruction.
type Op interface {
	draw(c vg.Canvas, t transform, f font.Face)
}

// Line is a straight stroke.
type Line struct {
	From, To layout.Point
	Width    float64
	Color    color.Color
}

// Rect is a filled rectangle.
type Rect struct {
	layout.Rect
	Color color.Color
}

// Text is a string drawn with its baseline starting at At.
type Text struct {
	At    layout.Point
	Text  string
	Color color.Color
}

// Plan returns the drawing instructions for recs placed according to l.
// The legend is drawn first, then each record's header, baseline, exons
// and motif occurrences in that order.
func Plan(l layout.Layout, recs []motif.Annotated, pal Palette, st Style) []Op {
	var ops []Op
	for _, e := range l.Legend {
		ops = append(ops,
			Rect{Rect: e.Swatch, Color: pal.Of(e.Motif)},
			Text{At: e.Label, Text: e.Motif.Raw, Color: st.Ink},
		)
	}

	for i, r := range recs {
		row := l.Rows[i]
		ops = append(ops,
			Text{At: row.Header, Text: r.Header(), Color: st.Ink},
			Line{
				From:  layout.Point{X: l.X(0), Y: row.Baseline},
				To:    layout.Point{X: l.X(row.Length), Y: row.Baseline},
				Width: st.BaselineWidth,
				Color: st.Ink,
			},
		)
		for _, iv := range r.Exons {
			ops = append(ops, segment(l, row, iv, st.FeatureWidth, st.Ink))
		}
		for _, h := range r.Hits {
			col := pal.Of(h.Motif)
			for _, iv := range h.Sites {
				ops = append(ops, segment(l, row, iv, st.FeatureWidth, col))
			}
		}
	}
	return ops
}

func segment(l layout.Layout, row layout.Row, iv motif.Interval, width float64, col color.Color) Line {
	return Line{
		From:  layout.Point{X: l.X(iv.Start + DisplayOffset), Y: row.Baseline},
		To:    layout.Point{X: l.X(iv.End), Y: row.Baseline},
		Width: width,
		Color: col,
	}
}

// transform converts top-down layout coordinates to the bottom-up
// coordinates of a vg.Canvas.
type transform float64

func (t transform) pt(p layout.Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(float64(t) - p.Y)}
}

// Draw issues ops in order onto c, a canvas of the given height. Text is
// drawn with f.
func Draw(c vg.Canvas, height float64, ops []Op, f font.Face) {
	t := transform(height)
	for _, op := range ops {
		op.draw(c, t, f)
	}
}

func (l Line) draw(c vg.Canvas, t transform, _ font.Face) {
	c.SetLineWidth(vg.Length(l.Width))
	c.SetColor(l.Color)
	var p vg.Path
	p.Move(t.pt(l.From))
	p.Line(t.pt(l.To))
	c.Stroke(p)
}

func (r Rect) draw(c vg.Canvas, t transform, _ font.Face) {
	o := r.Min
	c.SetColor(r.Color)
	var p vg.Path
	p.Move(t.pt(o))
	p.Line(t.pt(layout.Point{X: o.X + r.W, Y: o.Y}))
	p.Line(t.pt(layout.Point{X: o.X + r.W, Y: o.Y + r.H}))
	p.Line(t.pt(layout.Point{X: o.X, Y: o.Y + r.H}))
	p.Close()
	c.Fill(p)
}

func (s Text) draw(c vg.Canvas, t transform, f font.Face) {
	c.SetColor(s.Color)
	c.FillString(f, t.pt(s.At), s.Text)
}
