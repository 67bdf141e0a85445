// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"go/token"

	"github.com/cznic/ctagscpp/internal/ctype"
	"github.com/cznic/ctagscpp/internal/options"
	"github.com/cznic/ctagscpp/internal/tags"
)

// readDirective reads an alphabetic directive word, whose first
// character is c, into a string of at most maxDirectiveName bytes. It
// terminates on EOF, a non-alphabetic byte, or a full buffer, pushing
// the terminating byte back in the last two cases.
func (s *State) readDirective(c rune) string {
	var buf [maxDirectiveName]byte
	n := 0

	for n < len(buf) {
		if n > 0 {
			var ok bool
			c, ok = s.getc()
			if !ok || !isAlpha(c) {
				if ok {
					s.ungetc(c)
				}
				break
			}
		}
		buf[n] = byte(c)
		n++
	}
	return string(buf[:n])
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// readIdentifier reads an identifier whose first character is c into
// s.directive.name, pushing back the terminating byte.
func (s *State) readIdentifier(c rune) string {
	s.directive.name.Reset()
	for {
		s.directive.name.WriteRune(c)
		next, ok := s.getc()
		if !ok || !ctype.IsIdent(next) {
			if ok {
				s.ungetc(next)
			}
			break
		}
		c = next
	}
	// Intern through the shared dict the way every identifier in
	// cznic-sqlite2go's internal/c99 passes through dict.ID/dict.S,
	// so repeated macro names across a file share one backing string.
	return string(dict.S(dict.ID(s.directive.name.Bytes())))
}

// makeDefineTag emits a macro tag for name, found at file offset
// defPos (the identifier's first byte, used to recover a parameterized
// macro's argument list), unless suppressed by Options.
func (s *State) makeDefineTag(name string, parameterized bool, defPos token.Pos) {
	isFileScope := !ctype.IsHeaderFile(s.name)
	if !s.opts.IncludeDefineTags || (isFileScope && !s.opts.FileScope) {
		return
	}
	if s.sink == nil {
		return
	}

	e := tags.Entry{
		Name:            name,
		Kind:            'd',
		KindName:        "macro",
		Line:            s.line,
		LineNumberEntry: s.opts.Locate == options.Line,
		IsFileScope:     isFileScope,
		TruncateLine:    true,
	}
	if parameterized {
		if sig, ok := s.ArglistFromFilePos(defPos, name); ok {
			e.Signature = sig
		}
	}
	if err := s.sink.Emit(e); err != nil && s.tagErr == nil {
		s.tagErr = err
	}
}

// directiveDefine handles the DEFINE and UNDEF states identically, per
// spec section 4.4's dispatch table.
func (s *State) directiveDefine(c rune) {
	if ctype.IsIdent1(c) {
		defPos := s.identStart
		name := s.readIdentifier(c)
		nc, ok := s.getc()
		parameterized := ok && nc == '('
		if ok {
			s.ungetc(nc)
		}
		if !s.isIgnore() {
			s.makeDefineTag(name, parameterized, defPos)
		}
	}
	s.directive.state = dsNone
}

// directivePragma handles #pragma weak NAME, the only pragma body this
// module interprets; any other pragma is discarded.
func (s *State) directivePragma(c rune) {
	if ctype.IsIdent1(c) {
		name := s.readIdentifier(c)
		if name == "weak" {
			var next rune
			var ok bool
			for {
				next, ok = s.getc()
				if !ok || next != ' ' {
					break
				}
			}
			if ok && ctype.IsIdent1(next) {
				weakPos := s.reader.Pos() - 1
				weakName := s.readIdentifier(next)
				s.makeDefineTag(weakName, false, weakPos)
			}
		}
	}
	s.directive.state = dsNone
}

// directiveHash reads the directive word following '#' and dispatches
// to the appropriate state, handling elif/else/endif inline per spec
// section 4.4.
func (s *State) directiveHash(c rune) bool {
	ignore := false
	word := s.readDirective(c)

	switch {
	case word == "define":
		s.directive.state = dsDefine
	case word == "undef":
		s.directive.state = dsUndef
	case len(word) >= 2 && word[:2] == "if":
		s.directive.state = dsIf
	case word == "elif" || word == "else":
		ignore = s.setIgnore(s.isIgnoreBranch())
		if !ignore && word == "else" {
			s.chooseBranch()
		}
		s.directive.state = dsNone
	case word == "endif":
		ignore = s.popConditional()
		s.directive.state = dsNone
	case word == "pragma":
		s.directive.state = dsPragma
	default:
		s.directive.state = dsNone
	}
	return ignore
}

// handleDirective handles a preprocessor directive byte c, given the
// directive is currently in progress, and reports whether the byte
// (and further bytes on this line) should be suppressed.
func (s *State) handleDirective(c rune) bool {
	// Inline whitespace between the '#' and the directive word, between
	// the word and its argument, or before a condition's first token,
	// is simply awaited: dispatching on it would reset directive.state
	// before the substantive byte ever arrives.
	if s.directive.state != dsNone && (c == ' ' || c == '\t') {
		return s.isIgnore()
	}

	switch s.directive.state {
	case dsDefine, dsUndef:
		s.directiveDefine(c)
		return s.isIgnore()
	case dsHash:
		return s.directiveHash(c)
	case dsIf:
		return s.directiveIf(c)
	case dsPragma:
		s.directivePragma(c)
		return s.isIgnore()
	default:
		return s.isIgnore()
	}
}
