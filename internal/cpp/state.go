// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpp is the preprocessing character stream transducer: it
// reads C-family source text and yields a filtered stream of
// characters to a downstream lexer/parser, eliding comments and
// string/char literals, consuming preprocessor directives, and
// emitting one macro tag per #define/#pragma weak. It is a Go port of
// the scanning half of ctags' main/get.c, restructured the way
// cznic-sqlite2go's internal/c99/cpp.go structures the same family of
// problem: an explicit state machine driving a byte/token stream
// instead of ctags' Cpp global plus goto-based re-entry.
package cpp

import (
	"bytes"
	"go/token"

	"github.com/cznic/mathutil"
	"github.com/cznic/strutil"
	"github.com/cznic/xc"

	"github.com/cznic/ctagscpp/internal/options"
	"github.com/cznic/ctagscpp/internal/source"
	"github.com/cznic/ctagscpp/internal/tags"
)

// dict interns macro and pragma-weak identifier names, mirroring
// cznic-sqlite2go's pervasive dict.ID/dict.S calls throughout
// internal/c99 (see internal/c99/ast2.go and internal/c99/lexer.go).
var dict = xc.Dict

// Sentinel values NextChar can return in place of a real byte. Both
// are outside the Unicode range so they can never collide with a
// decoded input rune, per spec section 3's invariant on the sentinels.
const (
	StringSymbol rune = 0x110000 + iota
	CharSymbol
)

// maxCppNestingLevel bounds the conditional stack; level 0 is the
// always-active outermost frame and is never pushed to.
const maxCppNestingLevel = 20

const maxDirectiveName = 9

type dsState int

const (
	dsNone dsState = iota
	dsHash
	dsDefine
	dsUndef
	dsIf
	dsPragma
)

// ConditionalFrame is one level of #if.../#endif nesting and its
// branch-selection flags, the Go analogue of get.c's conditionalInfo.
type ConditionalFrame struct {
	// IgnoreAllBranches is true when the enclosing frame was already
	// suppressing output at the point this conditional was entered,
	// so every branch of this conditional is suppressed regardless of
	// which branch is taken.
	IgnoreAllBranches bool
	// SingleBranch restricts this conditional to at most one branch,
	// set when a statement was in progress at entry or at a branch
	// change (see isIgnoreBranch).
	SingleBranch bool
	// BranchChosen records that some branch of this conditional has
	// already been accepted.
	BranchChosen bool
	// Ignoring is whether bytes in the current branch are being
	// suppressed right now.
	Ignoring bool
}

type directiveInfo struct {
	state   dsState
	accept  bool
	discard bool // true from '#' to end of line: the rest of a directive's own line never reaches the filtered stream, regardless of its state having already resolved
	name    bytes.Buffer

	nestLevel uint
	ifdef     [maxCppNestingLevel]ConditionalFrame
}

// Sink accepts a completed macro tag. tags.Writer implements it; tests
// that only care about the filtered character stream can leave it nil.
type Sink interface {
	Emit(tags.Entry) error
}

// State is a single preprocessing session: one instance is active at a
// time, its lifetime bounded by New and Terminate, matching the
// specification's Lifecycle (section 3) and Concurrency model
// (section 5) exactly — there is no shared mutable state across
// sessions.
type State struct {
	reader *source.Reader
	name   string
	opts   options.Options
	sink   Sink

	pb pushback

	resolveRequired      bool
	hasAtLiteralStrings  bool
	hasRawLiteralStrings bool
	braceFormat          bool

	directive directiveInfo

	line int

	// identStart is the position of the byte NextChar's main loop most
	// recently read, captured before the read; handleDirective's
	// DEFINE/UNDEF branch uses it as the macro name's starting file
	// position for a parameterized macro's argument-list lookup.
	identStart token.Pos

	// tagErr latches the first error a Sink.Emit call returns, surfaced
	// by NextChar the way the rest of the transducer surfaces errors:
	// lazily, at the next read, rather than unwinding every skip helper.
	tagErr error
}

// New creates a preprocessing session over src, reading through
// reader. braceFormat tells the session the downstream parser uses
// brace counting rather than statement completion to delimit blocks;
// hasAtLit/hasRawLit enable @"..." and R"delim(...)delim" literals
// respectively.
func New(reader *source.Reader, name string, opts options.Options, sink Sink, braceFormat, hasAtLit, hasRawLit bool) *State {
	s := &State{
		reader:               reader,
		name:                 name,
		opts:                 opts,
		sink:                 sink,
		hasAtLiteralStrings:  hasAtLit,
		hasRawLiteralStrings: hasRawLit,
		braceFormat:          braceFormat,
		line:                 1,
	}
	s.directive.state = dsNone
	s.directive.accept = true
	return s
}

// Terminate releases the session's scratch buffers. Provided for
// symmetry with get.c's cppTerminate; in Go the garbage collector does
// the actual work, but calling it documents the end of the session's
// lifetime the way the original API requires.
func (s *State) Terminate() {
	s.directive.name.Reset()
}

// BeginStatement signals that the downstream parser has started a
// multi-token construct; conditional branch following is then
// restricted to at most one branch per conditional until EndStatement.
func (s *State) BeginStatement() { s.resolveRequired = true }

// EndStatement clears the signal set by BeginStatement.
func (s *State) EndStatement() { s.resolveRequired = false }

// DirectiveNestLevel exposes the current conditional stack depth.
func (s *State) DirectiveNestLevel() uint { return s.directive.nestLevel }

// IsBraceFormat reports whether the session uses brace-counting mode.
func (s *State) IsBraceFormat() bool { return s.braceFormat }

// Line returns the 1-based line the read head is currently on.
func (s *State) Line() int { return s.line }

// currentConditional returns the frame for the innermost active
// conditional, clamped by mathutil so an over-nested #if never reads
// outside the fixed-size array (spec section 3 invariant: nestLevel in
// [0, 19]).
func (s *State) currentConditional() *ConditionalFrame {
	i := mathutil.Min(int(s.directive.nestLevel), maxCppNestingLevel-1)
	return &s.directive.ifdef[i]
}

// String renders the session for debugging, built on strutil.PrettyString
// the way cznic-sqlite2go's own PrettyString helper does
// (internal/c99/etc.go).
func (s *State) String() string {
	type snapshot struct {
		Name             string
		Line             int
		BraceFormat      bool
		ResolveRequired  bool
		DirectiveState   dsState
		DirectiveAccept  bool
		DirectiveNesting uint
		Current          ConditionalFrame
	}
	return strutil.PrettyString(snapshot{
		Name:             s.name,
		Line:             s.line,
		BraceFormat:      s.braceFormat,
		ResolveRequired:  s.resolveRequired,
		DirectiveState:   s.directive.state,
		DirectiveAccept:  s.directive.accept,
		DirectiveNesting: s.directive.nestLevel,
		Current:          *s.currentConditional(),
	}, "", "  ", nil)
}
