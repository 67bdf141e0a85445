// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import (
	"bufio"
	"fmt"
	"io"
)

// Writer emits Entry values as tab-delimited ctags lines.
type Writer struct {
	w    *bufio.Writer
	file string
}

// NewWriter returns a Writer that records tags as having been found in
// file and writes them to w.
func NewWriter(w io.Writer, file string) *Writer {
	return &Writer{w: bufio.NewWriter(w), file: file}
}

// Emit writes one tag line and flushes it. The format is the classic
// extended ctags line: name, file, and either a line number or an
// empty pattern field, followed by kind and, when present, signature
// extension fields.
func (w *Writer) Emit(e Entry) error {
	loc := "/^/;\""
	if e.LineNumberEntry {
		loc = fmt.Sprintf("%d;\"", e.Line)
	}

	fmt.Fprintf(w.w, "%s\t%s\t%s\tkind:%s", e.Name, w.file, loc, e.KindName)
	if e.Signature != "" {
		fmt.Fprintf(w.w, "\tsignature:%s", e.Signature)
	}
	if e.IsFileScope {
		fmt.Fprint(w.w, "\tfile:")
	}
	fmt.Fprint(w.w, "\n")
	return w.w.Flush()
}
