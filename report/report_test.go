// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/motifmark/motif"
	"github.com/biogo/motifmark/record"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func annotate(c *check.C, fasta string, raw ...string) ([]motif.Annotated, []*motif.Motif) {
	recs, err := record.Read(strings.NewReader(fasta))
	c.Assert(err, check.IsNil)
	ms, diags := motif.CompileAll(raw)
	c.Assert(diags, check.HasLen, 0)
	return motif.AnnotateAll(recs, ms), ms
}

func (s *S) TestWriteGFF(c *check.C) {
	recs, _ := annotate(c, ">s1\nAAgaAA\n", "ga")
	var buf bytes.Buffer
	c.Assert(WriteGFF(&buf, recs), check.IsNil)
	out := buf.String()

	var features []string
	for _, l := range strings.Split(out, "\n") {
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		features = append(features, l)
	}
	c.Assert(features, check.HasLen, 3, check.Commentf("%s", out))
	c.Check(strings.Contains(out, "##Type DNA s1\n"), check.Equals, true, check.Commentf("%s", out))

	for i, want := range [][]string{
		{"s1", Source, "exon", "1", "2", ".", "+", "."},
		{"s1", Source, "exon", "5", "6", ".", "+", "."},
		{"s1", Source, "motif", "3", "4", ".", "+", "."},
	} {
		fields := strings.Split(features[i], "\t")
		c.Assert(len(fields) >= len(want), check.Equals, true, check.Commentf("feature %d: %q", i, features[i]))
		c.Check(fields[:len(want)], check.DeepEquals, want, check.Commentf("feature %d", i))
	}
	c.Check(strings.Contains(features[2], `Motif "ga"`), check.Equals, true, check.Commentf("%q", features[2]))
}

func (s *S) TestSummarizeNonASCII(c *check.C) {
	recs, ms := annotate(c, ">s1\nacgt\xff\xfeacGAga\n", "ga")
	sums, err := Summarize(recs, ms)
	c.Assert(err, check.IsNil)
	c.Assert(sums, check.HasLen, 1)
	c.Check(sums[0].Count, check.Equals, 2)
	c.Check(sums[0].Exonic, check.Equals, 1)
	c.Check(sums[0].Covered, check.Equals, 4)

	var buf bytes.Buffer
	c.Assert(WriteGFF(&buf, recs), check.IsNil)
	c.Check(strings.Contains(buf.String(), "\tmotif\t11\t12\t"), check.Equals, true, check.Commentf("%s", buf.String()))
	c.Check(strings.Contains(buf.String(), "\t13\t"), check.Equals, false)
}

func (s *S) TestSummarize(c *check.C) {
	recs, ms := annotate(c, ">s1\nAAgaAA\n>s2\nccccGAGAccgaga\n>s3\ntttt\n", "ga", "gaga", "cc", "ttttt")
	sums, err := Summarize(recs, ms)
	c.Assert(err, check.IsNil)
	c.Assert(sums, check.HasLen, 4)

	ga := sums[0]
	c.Check(ga.Motif, check.Equals, ms[0])
	// s1: [2,4); s2: [4,6) [6,8) [10,12) [12,14)
	c.Check(ga.Count, check.Equals, 5)
	c.Check(ga.Records, check.Equals, 2)
	c.Check(ga.Exonic, check.Equals, 2)
	c.Check(ga.Covered, check.Equals, 2+8)
	c.Check(ga.MeanStart, check.Equals, float64(2+4+6+10+12)/5)

	gaga := sums[1]
	// s2: [4,8) [10,14); overlapping occurrences counted once for coverage.
	c.Check(gaga.Count, check.Equals, 2)
	c.Check(gaga.Exonic, check.Equals, 1)
	c.Check(gaga.Covered, check.Equals, 8)

	cc := sums[2]
	// s2: [0,2) [1,3) [2,4) [8,10)
	c.Check(cc.Count, check.Equals, 4)
	c.Check(cc.Covered, check.Equals, 6)
	c.Check(cc.Exonic, check.Equals, 0)

	none := sums[3]
	c.Check(none.Count, check.Equals, 0)
	c.Check(math.IsNaN(none.MeanStart), check.Equals, true)
	c.Check(math.IsNaN(none.SDStart), check.Equals, true)
}

func (s *S) TestWriteSummary(c *check.C) {
	recs, ms := annotate(c, ">s1\nAAgaAA\n", "ga", "tt")
	sums, err := Summarize(recs, ms)
	c.Assert(err, check.IsNil)
	var buf bytes.Buffer
	c.Assert(WriteSummary(&buf, sums), check.IsNil)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c.Assert(lines, check.HasLen, 3)
	c.Check(strings.Fields(lines[1]), check.DeepEquals, []string{"ga", "1", "1", "0", "2", "2.0", "-"})
	c.Check(strings.Fields(lines[2]), check.DeepEquals, []string{"tt", "0", "0", "0", "0", "-", "-"})
}
