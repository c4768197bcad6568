// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// motifmark draws an SVG image of a set of sequences from a FASTA file,
// showing each sequence as a line with its uppercase exons thickened and
// the positions of motifs read from a second file marked in color.
//
// Motifs are read one per line and may contain the ambiguity codes
// Y, R, S, W, K, M, B, D, H, V and N. Motif colors are chosen at random
// by default; if two motifs receive colors that are too similar, run
// again, use a different --seed or use --colors=distinct or --colors=rainbow.
package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogo/motifmark/config"
)

// defaultName is the output image name used when none is given.
const defaultName = "Sequence_Motif"

func main() {
	log.SetFlags(0)
	err := newCommand(viper.New()).Execute()
	if err != nil {
		log.Fatalf("motifmark: %v", err)
	}
}

// newCommand returns the motifmark command. Settings flags are bound
// to v.
func newCommand(v *viper.Viper) *cobra.Command {
	var (
		o        options
		settings string
	)
	cmd := &cobra.Command{
		Use:   "motifmark -f <fasta> -m <motifs>",
		Short: "Draw exons and motif sites of FASTA sequences as an SVG image",
		Long: `motifmark reads a FASTA file with exons in uppercase and a text file
with one motif per line and writes an SVG image showing each sequence's
introns and exons with motif sites marked in color.

Motif colors are random unless --colors is distinct or rainbow; if two
motifs share colors that are too similar, rerun.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.New(v, settings)
			if err != nil {
				return err
			}
			o.conf = conf
			if !cmd.Flags().Changed("seed") {
				o.seed = uint64(time.Now().UnixNano())
			}
			logger := log.New(cmd.ErrOrStderr(), "", 0)
			return run(o, cmd.OutOrStdout(), logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.fasta, "fasta", "f", "", "FASTA file with uppercase exons")
	f.StringVarP(&o.motifs, "motif", "m", "", "motif file, one motif per line")
	f.StringVarP(&o.name, "name", "n", defaultName, "output image name, written as <name>.svg")
	f.Uint64Var(&o.seed, "seed", 0, "seed for random motif colors (default from the clock)")
	f.StringVar(&o.gff, "gff", "", "write exon and motif features as GFF to this file")
	f.BoolVar(&o.summary, "summary", false, "print a per-motif summary table")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "report motif sites found per sequence")
	f.StringVar(&settings, "config", "", "YAML settings file")

	f.String("colors", config.Random, "motif color mode: random, distinct or rainbow")
	f.Float64("min-distance", 0.3, "minimum L*a*b* distance between colors in distinct mode")
	f.Bool("measure", false, "space the legend by measured label width")
	for _, name := range []string{"colors", "min-distance", "measure"} {
		err := v.BindPFlag(name, f.Lookup(name))
		if err != nil {
			panic(err)
		}
	}
	for _, name := range []string{"fasta", "motif"} {
		err := cmd.MarkFlagRequired(name)
		if err != nil {
			panic(err)
		}
	}

	return cmd
}
