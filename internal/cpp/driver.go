// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"io"

	"github.com/cznic/ctagscpp/internal/ctype"
)

// getc returns the next character, preferring the pushback buffer over
// the underlying reader, the single low-level read primitive every
// skip/fold helper in this package is built on.
func (s *State) getc() (rune, bool) {
	if s.pb.len() > 0 {
		return s.pb.pop(), true
	}

	c, err := s.reader.ReadByte()
	if err != nil {
		return 0, false
	}
	return c.Rune, true
}

// ungetc returns c to the two-slot pushback buffer, to be replayed by
// the next getc. Pushing a third character is a programming error (see
// pushback.push).
func (s *State) ungetc(c rune) { s.pb.push(c) }

// UngetChar is the public counterpart of NextChar: it returns c so the
// next NextChar call reads it back, for a caller that peeked one
// character too far.
func (s *State) UngetChar(c rune) { s.ungetc(c) }

// fold runs c through trigraph/digraph substitution until the result no
// longer needs reclassifying (only "??/" -> '\\' and "??=" / "%:" ->
// '#' do; every other fold is an ordinary passthrough character). This
// is the loop the package comment in digraph.go promises in place of
// get.c's goto-based re-entry.
func (s *State) fold(c rune) rune {
	for folding := true; folding; {
		switch c {
		case '?':
			folded, reenter := s.foldTrigraph()
			c, folding = folded, reenter
		case '<':
			c, folding = s.foldLess(), false
		case ':':
			c, folding = s.foldColon(), false
		case '%':
			folded, reenter := s.foldPercent()
			c, folding = folded, reenter
		default:
			folding = false
		}
	}
	return c
}

// rawLiteralPrefixOK reports whether the bytes preceding the 'R' just
// read establish that it cannot be part of a longer identifier, so it
// is free to start a raw string literal. An R glued onto an identifier
// is never a raw-literal prefix unless that identifier is exactly one
// of the encoding prefixes L, u, U, or u8 (LR"(...)", uR"(...)", and so
// on are legal raw-literal forms; FOUR"5" is not — it is FOUR followed
// by a plain string literal, get.c's own documented counter-example).
func (s *State) rawLiteralPrefixOK() bool {
	prev := rune(s.reader.NthPrevByte(2))
	prev2 := rune(s.reader.NthPrevByte(3))
	prev3 := rune(s.reader.NthPrevByte(4))

	return !ctype.IsIdent(prev) ||
		(!ctype.IsIdent(prev2) && (prev == 'L' || prev == 'u' || prev == 'U')) ||
		(!ctype.IsIdent(prev3) && prev2 == 'u' && prev == '8')
}

// NextChar reads, filters, and returns the next character of the
// preprocessed stream: comments become a single space, string and
// character literals become StringSymbol/CharSymbol, preprocessor
// directives and the bytes they occupy are consumed entirely, and bytes
// inside a suppressed conditional branch are dropped. It returns io.EOF
// once the underlying source is exhausted.
//
// The loop structure mirrors get.c's cppGetc: an outer "while in a
// directive or ignoring" loop around a single big switch, rather than
// goto-based re-entry, per spec DESIGN NOTES.
func (s *State) NextChar() (rune, error) {
	if s.tagErr != nil {
		err := s.tagErr
		s.tagErr = nil
		return 0, err
	}

	for {
		s.identStart = s.reader.Pos()
		c, ok := s.getc()
		if !ok {
			return 0, io.EOF
		}

		if c == '\n' {
			s.line++
			s.directive.accept = true
			// An unterminated directive never survives past end of
			// line, matching the way every directive in get.c is
			// scanned as a single logical line.
			s.directive.state = dsNone
			s.directive.discard = false
			if s.isIgnore() {
				continue
			}
			return c, nil
		}

		c = s.fold(c)

		var sym rune
		haveSym := false
		eof := false

		switch c {
		case '\\':
			nc, ok := s.getc()
			switch {
			case ok && nc == '\n':
				s.line++
				continue
			case ok:
				s.ungetc(nc)
			}

		case '"':
			sym, haveSym = s.skipString(false), true

		case '\'':
			sym, haveSym = s.skipChar(), true

		case '@':
			if s.hasAtLiteralStrings {
				if nc, ok := s.getc(); ok && nc == '"' {
					sym, haveSym = s.skipString(true), true
				} else if ok {
					s.ungetc(nc)
				}
			}

		case 'R':
			if s.hasRawLiteralStrings && s.rawLiteralPrefixOK() {
				if nc, ok := s.getc(); ok && nc == '"' {
					sym, haveSym = s.skipCxxRawLiteralString(), true
				} else if ok {
					s.ungetc(nc)
				}
			}

		case '/':
			switch s.isComment() {
			case commentC:
				if space, ok := s.skipCComment(); ok {
					sym, haveSym = space, true
				} else {
					eof = true
				}
			case commentCPlus:
				if space, ok := s.skipCPlusComment(); ok {
					sym, haveSym = space, true
				} else {
					eof = true
				}
			case commentD:
				if space, ok := s.skipDComment(); ok {
					sym, haveSym = space, true
				} else {
					eof = true
				}
			}

		case '#':
			if s.directive.accept && s.directive.state == dsNone {
				s.directive.state = dsHash
				s.directive.discard = true
				continue
			}
		}

		if eof {
			return 0, io.EOF
		}
		if haveSym {
			c = sym
		}

		if s.directive.discard {
			if s.directive.state != dsNone {
				s.handleDirective(c)
			}
			s.directive.accept = false
			continue
		}

		if s.isIgnore() {
			continue
		}

		if c != ' ' && c != '\t' {
			s.directive.accept = false
		}
		return c, nil
	}
}
