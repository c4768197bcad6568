// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors assigns display colors to motifs.
//
// The default allocation draws each channel uniformly at random from 101
// equally spaced levels in [0, 1] and makes no attempt to keep colors
// apart; two motifs may receive similar colors. AllocateDistinct and
// Rainbow are available when distinguishable colors are needed.
package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot/palette"

	"github.com/biogo/motifmark/motif"
)

// Levels is the number of values each channel may take.
const Levels = 101

// Color is an opaque RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// RGBA satisfies the image/color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return scale(c.R), scale(c.G), scale(c.B), 0xffff
}

func scale(v float64) uint32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// fromColor converts an arbitrary color.Color to a Color, dropping alpha.
func fromColor(c color.Color) Color {
	r, g, b, _ := color.NRGBA64Model.Convert(c).RGBA()
	return Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
}

// Assignment maps each motif to its display color.
type Assignment map[*motif.Motif]Color

// Of returns the color assigned to m, or black if m has no assignment.
func (a Assignment) Of(m *motif.Motif) color.Color {
	c, ok := a[m]
	if !ok {
		return color.Black
	}
	return c
}

func level(rnd *rand.Rand) float64 {
	return float64(rnd.Intn(Levels)) / (Levels - 1)
}

func random(rnd *rand.Rand) Color {
	return Color{R: level(rnd), G: level(rnd), B: level(rnd)}
}

// Allocate assigns each of motifs a random color drawn from rnd, in
// motif order. The same source state gives the same assignment.
func Allocate(motifs []*motif.Motif, rnd *rand.Rand) Assignment {
	a := make(Assignment, len(motifs))
	for _, m := range motifs {
		a[m] = random(rnd)
	}
	return a
}

// AllocateDistinct is like Allocate, but redraws a motif's color until it
// is at least minDist from every earlier motif's color in CIE L*a*b*
// space. After tries unsuccessful draws the last draw is kept.
func AllocateDistinct(motifs []*motif.Motif, rnd *rand.Rand, minDist float64, tries int) Assignment {
	if tries < 1 {
		tries = 1
	}
	a := make(Assignment, len(motifs))
	var chosen []colorful.Color
	for _, m := range motifs {
		var c Color
		for i := 0; i < tries; i++ {
			c = random(rnd)
			if farFrom(colorful.Color{R: c.R, G: c.G, B: c.B}, chosen, minDist) {
				break
			}
		}
		a[m] = c
		chosen = append(chosen, colorful.Color{R: c.R, G: c.G, B: c.B})
	}
	return a
}

func farFrom(c colorful.Color, chosen []colorful.Color, minDist float64) bool {
	for _, o := range chosen {
		if c.DistanceLab(o) < minDist {
			return false
		}
	}
	return true
}

// Rainbow assigns evenly spaced, fully saturated hues to motifs in order.
// It does not use randomness.
func Rainbow(motifs []*motif.Motif) Assignment {
	a := make(Assignment, len(motifs))
	if len(motifs) == 0 {
		return a
	}
	if len(motifs) == 1 {
		// palette.Rainbow needs at least two colors to space hues.
		a[motifs[0]] = Color{R: 1}
		return a
	}
	// Stop short of red so the last hue does not wrap onto the first.
	end := palette.Hue(1 - 1/float64(len(motifs)))
	p := palette.Rainbow(len(motifs), palette.Red, end, 1, 1, 1).Colors()
	for i, m := range motifs {
		a[m] = fromColor(p[i])
	}
	return a
}

// Distance returns the CIE L*a*b* distance between a and b.
func Distance(a, b Color) float64 {
	return colorful.Color{R: a.R, G: a.G, B: a.B}.DistanceLab(colorful.Color{R: b.R, G: b.G, B: b.B})
}
