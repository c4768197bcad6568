// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record reads named nucleic acid sequences from FASTA formatted
// input, preserving letter case so that exonic (uppercase) regions can be
// identified by later stages.
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrEmptyInput is returned when the input holds no records.
	ErrEmptyInput = errors.New("record: no sequence records")

	// ErrMalformedRecord is returned when the input cannot be parsed as
	// FASTA, for example when sequence data precedes the first header.
	ErrMalformedRecord = errors.New("record: malformed record")
)

// Record is a named sequence. Uppercase letters in Bases mark exonic
// positions; all other bytes are intronic.
type Record struct {
	ID    string
	Desc  string
	Bases []byte
}

// Header returns the display header of the record, the FASTA header line
// including its leading '>'.
func (r Record) Header() string {
	if r.Desc == "" {
		return ">" + r.ID
	}
	return ">" + r.ID + " " + r.Desc
}

// Len returns the number of bases in the record.
func (r Record) Len() int { return len(r.Bases) }

// Read returns all the records held in the FASTA stream r in order.
// Multi-line sequences are concatenated.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	err := checkHeader(br)
	if err != nil {
		return nil, err
	}

	var recs []Record
	sc := seqio.NewScanner(fasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		recs = append(recs, Record{
			ID:    s.Name(),
			Desc:  s.Description(),
			Bases: alphabet.LettersToBytes(s.Seq),
		})
	}
	err = sc.Error()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if len(recs) == 0 {
		return nil, ErrEmptyInput
	}
	return recs, nil
}

// checkHeader ensures that the first non-space byte of the stream opens a
// header line, leaving that byte unread.
func checkHeader(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return ErrEmptyInput
		}
		if err != nil {
			return err
		}
		if unicode.IsSpace(rune(b)) {
			continue
		}
		if b != '>' {
			return fmt.Errorf("%w: sequence data before first header", ErrMalformedRecord)
		}
		return br.UnreadByte()
	}
}
