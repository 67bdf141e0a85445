// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package options holds the global options record the preprocessing
// layer consults. It corresponds to the fields of the external
// "Options record" described by the specification: Option.include.fileScope,
// Option.locate, Option.if0 and Option.includeDefineTags.
package options

// LocateMode selects how a tag's location is recorded.
type LocateMode int

const (
	// Pattern records a search pattern for the tag's line.
	Pattern LocateMode = iota
	// Line records a bare line number for the tag.
	Line
)

// Options amends the behavior of the macro-tag emitter.
type Options struct {
	// FileScope, if false, suppresses tags for macros defined outside
	// header files (Option.include.fileScope).
	FileScope bool

	// Locate selects whether an emitted tag carries a pattern or a
	// line number (Option.locate).
	Locate LocateMode

	// If0, when true, causes the body of "#if 0" to be scanned rather
	// than skipped (Option.if0).
	If0 bool

	// IncludeDefineTags, when false, suppresses all macro tag
	// emission (Option.includeDefineTags).
	IncludeDefineTags bool
}

// Default returns the options ctags itself defaults to.
func Default() Options {
	return Options{
		FileScope:         true,
		Locate:            Pattern,
		If0:               false,
		IncludeDefineTags: true,
	}
}
