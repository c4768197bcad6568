// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/biogo/motifmark/layout"
)

// mode is the permission of written files.
const mode = 0o644

// WriteSVG draws ops onto an SVG canvas sized by l and writes it to path.
// The image is written to a temporary file in the destination directory
// and renamed into place, so path either holds a complete image or is
// left untouched.
func WriteSVG(path string, l layout.Layout, ops []Op, st Style) error {
	f, err := layout.Face(st.Font, st.FontSize)
	if err != nil {
		return fmt.Errorf("render: %v", err)
	}
	c := vgsvg.New(vg.Length(l.Width), vg.Length(l.Height))
	Draw(c, float64(l.Height), ops, f)

	return WriteFile(path, func(w io.Writer) error {
		_, err := c.WriteTo(w)
		return err
	})
}

// WriteFile writes the output of fn to path. The output is buffered into
// a temporary file in the destination directory which is renamed into
// place only if fn and all writes succeed; otherwise the temporary file is
// removed and path is left untouched.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	err = fn(buf)
	if err != nil {
		return err
	}
	err = buf.Flush()
	if err != nil {
		return err
	}
	err = tmp.Chmod(mode)
	if err != nil {
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
