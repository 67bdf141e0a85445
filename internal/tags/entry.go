// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tags is the tag-entry sink: the concrete implementation of
// the external collaborator the specification calls initTagEntry/
// makeTagEntry.
package tags

import "github.com/cznic/strutil"

// Entry describes one tag about to be emitted. Field names follow the
// specification's description of makeTagEntry's argument
// (section 4.6) directly.
type Entry struct {
	Name string

	// Kind is the single-letter tag kind; macros use 'd'.
	Kind byte
	// KindName is the long form of Kind; macros use "macro".
	KindName string

	// Line is the 1-based line the tag was found on.
	Line int
	// LineNumberEntry, when true, records Line rather than a search
	// pattern (Options.locate == Line).
	LineNumberEntry bool

	// IsFileScope marks a tag defined outside a header file.
	IsFileScope bool
	// TruncateLine, when true, asks the sink to shorten an overlong
	// source line before recording it as a pattern.
	TruncateLine bool

	// Signature, if non-empty, is a parameterized macro's argument
	// list, e.g. "(a,b)".
	Signature string
}

// String renders e for debugging, built on strutil.PrettyString the
// way cznic-sqlite2go's PrettyString helper renders its own internal
// structures (internal/c99/etc.go).
func (e Entry) String() string {
	return strutil.PrettyString(e, "", "  ", nil)
}
