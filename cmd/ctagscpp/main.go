// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ctagscpp drives the preprocessing transducer over one or more
// C-family source files and prints the macro tags it finds.
package main

import (
	"flag"
	"fmt"
	"go/scanner"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cznic/ctagscpp/internal/cpp"
	"github.com/cznic/ctagscpp/internal/options"
	"github.com/cznic/ctagscpp/internal/source"
	"github.com/cznic/ctagscpp/internal/tags"
)

func main() {
	if0 := flag.Bool("if0", false, "scan the body of #if 0 instead of skipping it")
	noFileScope := flag.Bool("no-file-scope", false, "suppress tags for macros defined outside header files")
	lineNumbers := flag.Bool("line-numbers", false, "record a line number instead of a search pattern")
	noDefineTags := flag.Bool("no-define-tags", false, "suppress all macro tag emission")
	braceFormat := flag.Bool("brace-format", false, "assume the downstream parser delimits blocks by brace counting")
	debug := flag.Bool("debug", false, "print the session state and each emitted tag to stderr")
	flag.Parse()

	opts := options.Default()
	opts.If0 = *if0
	opts.FileScope = !*noFileScope
	opts.IncludeDefineTags = !*noDefineTags
	if *lineNumbers {
		opts.Locate = options.Line
	}

	var errs scanner.ErrorList
	for _, name := range flag.Args() {
		if err := run(name, opts, *braceFormat, *debug); err != nil {
			errs.Add(token.Position{Filename: name}, err.Error())
		}
	}
	if len(errs) != 0 {
		fmt.Fprintln(os.Stderr, errs.Err())
		os.Exit(1)
	}
}

// run preprocesses a single named file, driving NextChar to completion
// and relying on the directive layer's own tag emission (see
// internal/cpp/directive.go) to produce output.
func run(name string, opts options.Options, braceFormat, debug bool) error {
	reader, err := source.NewReaderFor(token.NewFileSet(), source.NewFileSource(name))
	if err != nil {
		return err
	}

	var sink cpp.Sink = tags.NewWriter(os.Stdout, name)
	if debug {
		sink = &debugSink{w: os.Stderr, next: sink}
	}

	st := cpp.New(reader, name, opts, sink, braceFormat, isAtLiteralFile(name), isRawLiteralFile(name))
	defer st.Terminate()

	for {
		if _, err := st.NextChar(); err != nil {
			if err == io.EOF {
				if debug {
					fmt.Fprintln(os.Stderr, st.String())
				}
				return nil
			}
			return err
		}
	}
}

// debugSink logs every tag's field dump to stderr, via Entry.String's
// strutil.PrettyString rendering, before handing it to the real sink.
type debugSink struct {
	w    io.Writer
	next cpp.Sink
}

func (d *debugSink) Emit(e tags.Entry) error {
	fmt.Fprintln(d.w, e.String())
	return d.next.Emit(e)
}

// isAtLiteralFile reports whether name's extension indicates a
// language with verbatim @"..." string literals (C#, Objective-C, and
// Vera all use the convention).
func isAtLiteralFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cs", ".m", ".mm", ".vera", ".vr", ".vrh":
		return true
	default:
		return false
	}
}

// isRawLiteralFile reports whether name's extension indicates a
// language with R"delim(...)delim" raw string literals (C++ and D).
func isRawLiteralFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cpp", ".cxx", ".cc", ".hpp", ".hxx", ".hh", ".d":
		return true
	default:
		return false
	}
}
