// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
	"gopkg.in/check.v1"

	"github.com/biogo/motifmark/motif"
	"github.com/biogo/motifmark/record"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func annotated(lens ...int) []motif.Annotated {
	recs := make([]motif.Annotated, len(lens))
	for i, n := range lens {
		recs[i] = motif.Annotate(record.Record{ID: "r", Bases: []byte(strings.Repeat("a", n))}, nil)
	}
	return recs
}

func compile(c *check.C, raw ...string) []*motif.Motif {
	ms, diags := motif.CompileAll(raw)
	c.Assert(diags, check.HasLen, 0)
	return ms
}

func (s *S) TestCanvasSize(c *check.C) {
	for i, t := range []struct {
		lens          []int
		width, height int
	}{
		{lens: []int{10}, width: 60, height: 100},
		{lens: []int{10, 300, 20}, width: 350, height: 200},
		{lens: []int{300, 300, 300, 300}, width: 350, height: 250},
		{lens: []int{0}, width: 50, height: 100},
		{lens: nil, width: 50, height: 50},
	} {
		l := New(annotated(t.lens...), nil, DefaultConfig)
		c.Check(l.Width, check.Equals, t.width, check.Commentf("Test %d", i))
		c.Check(l.Height, check.Equals, t.height, check.Commentf("Test %d", i))
	}
}

func (s *S) TestWidthIndependentOfCount(c *check.C) {
	var prev int
	for n := 1; n <= 5; n++ {
		lens := make([]int, n)
		for i := range lens {
			lens[i] = 40
		}
		l := New(annotated(lens...), nil, DefaultConfig)
		c.Check(l.Width, check.Equals, 40+2*25)
		if n > 1 {
			c.Check(l.Height-prev, check.Equals, 50)
		}
		prev = l.Height
	}
}

func (s *S) TestRows(c *check.C) {
	l := New(annotated(6, 0, 12), nil, DefaultConfig)
	c.Assert(l.Rows, check.HasLen, 3)
	c.Check(l.Origin, check.Equals, 25.0)
	for i, want := range []Row{
		{Baseline: 50, Header: Point{X: 25, Y: 35}, Length: 6},
		{Baseline: 100, Header: Point{X: 25, Y: 85}, Length: 0},
		{Baseline: 150, Header: Point{X: 25, Y: 135}, Length: 12},
	} {
		c.Check(l.Rows[i], check.Equals, want, check.Commentf("Row %d", i))
	}
	c.Check(l.X(0), check.Equals, 25.0)
	c.Check(l.X(12), check.Equals, 37.0)
}

func (s *S) TestLegend(c *check.C) {
	ms := compile(c, "ygcy", "GCAUG", "catag")
	l := New(annotated(10), ms, DefaultConfig)
	c.Assert(l.Legend, check.HasLen, 3)
	for i, want := range []Entry{
		{Motif: ms[0], X: 25, Swatch: Rect{Min: Point{X: 25, Y: 10}, W: 10, H: 10}, Label: Point{X: 36, Y: 17}},
		{Motif: ms[1], X: 75, Swatch: Rect{Min: Point{X: 75, Y: 10}, W: 10, H: 10}, Label: Point{X: 86, Y: 17}},
		{Motif: ms[2], X: 135, Swatch: Rect{Min: Point{X: 135, Y: 10}, W: 10, H: 10}, Label: Point{X: 146, Y: 17}},
	} {
		c.Check(l.Legend[i], check.DeepEquals, want, check.Commentf("Entry %d", i))
	}
}

func (s *S) TestLegendShortLabels(c *check.C) {
	ms := compile(c, "a", "c", "g")
	l := New(annotated(10), ms, DefaultConfig)
	c.Assert(l.Legend, check.HasLen, 3)
	for i := 1; i < len(l.Legend); i++ {
		// The next swatch starts after the previous label.
		c.Check(l.Legend[i].X > l.Legend[i-1].Label.X, check.Equals, true, check.Commentf("Entry %d", i))
		c.Check(l.Legend[i].X, check.Equals, 25.0+20*float64(i))
	}
}

func (s *S) TestLegendCountsCharacters(c *check.C) {
	ms := compile(c, "gaé", "a")
	l := New(annotated(10), ms, DefaultConfig)
	c.Check(l.Legend[1].X, check.Equals, 25.0+3*10+10)
}

func (s *S) TestLegendMeasured(c *check.C) {
	ms := compile(c, "ga", "ygcy")
	cfg := DefaultConfig
	cfg.Measure = func(s string) float64 { return 4 * float64(len(s)) }
	l := New(annotated(10), ms, cfg)
	c.Assert(l.Legend, check.HasLen, 2)
	c.Check(l.Legend[0].X, check.Equals, 25.0)
	// swatch + gap + measured label + trailing swatch width
	c.Check(l.Legend[1].X, check.Equals, 25.0+10+1+8+10)
}

func (s *S) TestFontMeasure(c *check.C) {
	m, err := FontMeasure("LiberationSans-Regular", 8)
	c.Assert(err, check.IsNil)
	c.Check(m("GCAUG") > m("GA"), check.Equals, true)
	c.Check(m(""), check.Equals, 0.0)

	_, err = FontMeasure("Helvetica", 8)
	c.Check(err, check.ErrorMatches, `layout: unknown font "Helvetica"`)
}

func (s *S) TestFace(c *check.C) {
	f, err := Face("LiberationSans-Regular", 8)
	c.Assert(err, check.IsNil)
	c.Check(f.Name(), check.Equals, "LiberationSans-Regular")
	c.Check(f.Font.Size, check.Equals, vg.Length(8))
}
