// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"go/token"
	"io/ioutil"
	"os"
)

// Source represents a unit of input to the preprocessor. Unlike
// cznic-sqlite2go's Source (an io.ReadCloser factory meant to be
// streamed once), ctagscpp's Source is read fully into memory up
// front: the argument-list extractor needs to seek back into already
// consumed input (spec section 4.8), and #include is a non-goal, so
// there is no need to stream incrementally across files.
type Source interface {
	// Name is used in reporting source code positions.
	Name() string
	// Bytes returns the full contents of the source.
	Bytes() ([]byte, error)
}

// FileSource is a Source reading from a named file.
type FileSource struct {
	path string
}

// NewFileSource returns a newly created *FileSource reading from name.
func NewFileSource(name string) *FileSource { return &FileSource{path: name} }

// Name implements Source.
func (s *FileSource) Name() string { return s.path }

// Bytes implements Source.
func (s *FileSource) Bytes() ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ioutil.ReadAll(f)
}

// StringSource is a Source reading from an in-memory string, used by
// tests.
type StringSource struct {
	name string
	src  string
}

// NewStringSource returns a newly created *StringSource reading from
// src and having the presumed name.
func NewStringSource(name, src string) *StringSource {
	return &StringSource{name: name, src: src}
}

// Name implements Source.
func (s *StringSource) Name() string { return s.name }

// Bytes implements Source.
func (s *StringSource) Bytes() ([]byte, error) { return []byte(s.src), nil }

// NewReaderFor builds a Reader over s's contents, registering it with
// fset under s.Name().
func NewReaderFor(fset *token.FileSet, s Source) (*Reader, error) {
	data, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	return NewReader(fset, s.Name(), data), nil
}
