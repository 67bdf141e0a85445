// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import "github.com/cznic/ctagscpp/internal/ctype"

// skipString consumes up to and including the closing '"', returning
// StringSymbol. Backslash escapes the next character unless
// ignoreBackslash is set, used by verbatim @"..." strings where '\'
// has no escape meaning.
func (s *State) skipString(ignoreBackslash bool) rune {
	for {
		c, ok := s.getc()
		if !ok {
			break
		}
		if c == '\\' && !ignoreBackslash {
			s.getc()
			continue
		}
		if c == '"' {
			break
		}
	}
	return StringSymbol
}

// skipChar consumes up to the closing '\'' or a newline, returning
// CharSymbol. Also recognizes a Vera base specifier: if the first
// character is one of D, H, O, B (case-insensitive), the literal
// continues through alphanumerics and the first non-alphanumeric is
// pushed back, per spec section 4.3.
func (s *State) skipChar() rune {
	count := 0
	veraBase := rune(0)

	for {
		c, ok := s.getc()
		if !ok {
			break
		}
		count++

		switch {
		case c == '\\':
			s.getc()
		case c == '\'':
			return CharSymbol
		case c == '\n':
			s.ungetc(c)
			return CharSymbol
		case count == 1 && isVeraBase(c):
			veraBase = c
		case veraBase != 0 && !isAlnum(c):
			s.ungetc(c)
			return CharSymbol
		}
	}
	return CharSymbol
}

func isVeraBase(c rune) bool {
	switch c {
	case 'D', 'd', 'H', 'h', 'O', 'o', 'B', 'b':
		return true
	default:
		return false
	}
}

func isAlnum(c rune) bool {
	return ctype.IsIdent(c) && c != '_'
}

const maxRawDelimLen = 16

// isCxxRawLiteralDelimiterChar reports whether c may appear in a
// R"delim(...)delim" delimiter.
func isCxxRawLiteralDelimiterChar(c rune) bool {
	switch c {
	case ' ', '\f', '\n', '\r', '\t', '\v', '(', ')', '\\':
		return false
	default:
		return true
	}
}

// skipCxxRawLiteralString consumes a R"delim(...)delim" literal after
// "R\"" has been read, or falls back to a plain string scan if no '('
// and no valid delimiter character follows, per spec section 4.3.
func (s *State) skipCxxRawLiteralString() rune {
	c, ok := s.getc()
	if !ok {
		return StringSymbol
	}

	if c != '(' && !isCxxRawLiteralDelimiterChar(c) {
		s.ungetc(c)
		return s.skipString(false)
	}

	var delim [maxRawDelimLen]byte
	delimLen := 0
	collectDelim := true

	for {
		if collectDelim {
			if isCxxRawLiteralDelimiterChar(c) && delimLen < len(delim) {
				delim[delimLen] = byte(c)
				delimLen++
			} else {
				collectDelim = false
			}
		} else if c == ')' {
			i := 0
			var next rune
			var ok bool
			for {
				next, ok = s.getc()
				if !ok || i >= delimLen || rune(delim[i]) != next {
					break
				}
				i++
			}
			if i == delimLen && ok && next == '"' {
				return StringSymbol
			}
			if ok {
				s.ungetc(next)
			}
		}

		c, ok = s.getc()
		if !ok {
			return StringSymbol
		}
	}
}
