// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source is the input adapter: it wraps a byte buffer with
// position tracking, a single-step raw unread, and random-access seek,
// the concrete implementation of the "raw file reader" the
// specification treats as an external collaborator
// (getcFromInputFile/fileUngetc/fileGetNthPrevC/position queries).
package source

import (
	"go/token"
	"io"

	"github.com/cznic/golex/lex"
)

// Reader reads bytes out of an in-memory buffer, handing each one back
// wrapped in a lex.Char so callers keep a position alongside the byte,
// the way cznic-sqlite2go's trigraphs/lexer types do.
type Reader struct {
	file *token.File
	data []byte
	pos  int // offset of the next byte to be read
}

// NewReader returns a Reader over data. fset records file/line
// information for pos, the way every cznic-sqlite2go lexer does.
func NewReader(fset *token.FileSet, name string, data []byte) *Reader {
	return &Reader{
		file: fset.AddFile(name, -1, len(data)+1),
		data: data,
	}
}

// ReadByte returns the next byte in the buffer, or io.EOF.
func (r *Reader) ReadByte() (lex.Char, error) {
	if r.pos >= len(r.data) {
		return lex.NewChar(r.file.Pos(r.pos), rune(lex.RuneEOF)), io.EOF
	}

	b := r.data[r.pos]
	c := lex.NewChar(r.file.Pos(r.pos), rune(b))
	r.pos++
	return c, nil
}

// UnreadByte steps the read head back by one raw byte. The two-slot
// pushback in internal/cpp does not use it: the preprocessor
// re-delivers ungotten characters from its own pushback buffer instead
// of asking the reader to unread.
func (r *Reader) UnreadByte() error {
	if r.pos == 0 {
		panic("internal error: UnreadByte at start of file")
	}

	r.pos--
	return nil
}

// NthPrevByte returns the byte n positions before the next byte to be
// read (n == 1 is the byte most recently returned by ReadByte), or 0
// if unavailable. Used only by raw-string prefix recognition.
func (r *Reader) NthPrevByte(n int) byte {
	i := r.pos - n
	if i < 0 || i >= len(r.data) {
		return 0
	}
	return r.data[i]
}

// Pos returns the position of the next byte to be read.
func (r *Reader) Pos() token.Pos { return r.file.Pos(r.pos) }

// Tell returns the byte offset of the next byte to be read.
func (r *Reader) Tell() int64 { return int64(r.pos) }

// Seek moves the read head to pos, which must have been produced by
// Pos on this Reader.
func (r *Reader) Seek(pos token.Pos) {
	r.pos = r.file.Offset(pos)
}

// SeekOffset moves the read head to a raw byte offset, as returned by
// Tell.
func (r *Reader) SeekOffset(off int64) {
	r.pos = int(off)
}

// Slice returns the raw bytes in [from, to).
func (r *Reader) Slice(from, to int64) []byte {
	return r.data[from:to]
}

// Offset returns the raw byte offset corresponding to pos.
func (r *Reader) Offset(pos token.Pos) int64 { return int64(r.file.Offset(pos)) }

// Len returns the total number of bytes in the buffer.
func (r *Reader) Len() int64 { return int64(len(r.data)) }
