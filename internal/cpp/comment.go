// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

// commentKind identifies which comment syntax isComment found.
type commentKind int

const (
	commentNone commentKind = iota
	commentC
	commentCPlus
	commentD
)

// isComment is called upon reading a '/'; it determines whether a
// comment follows and of which kind, consuming the second delimiter
// byte if so.
func (s *State) isComment() commentKind {
	next, ok := s.getc()
	if !ok {
		return commentNone
	}

	switch next {
	case '*':
		return commentC
	case '/':
		return commentCPlus
	case '+':
		return commentD
	default:
		s.ungetc(next)
		return commentNone
	}
}

// skipCComment consumes a C comment after "/*" has been read,
// returning the space that replaces it (ANSI treats a comment as
// whitespace), or an unpaired EOF.
func (s *State) skipCComment() (rune, bool) {
	for {
		c, ok := s.getc()
		if !ok {
			return 0, false
		}
		if c != '*' {
			continue
		}

		next, ok := s.getc()
		if !ok {
			return 0, false
		}
		if next == '/' {
			return ' ', true
		}
		s.ungetc(next)
	}
}

// skipCPlusComment consumes a C++ comment after "//" has been read. A
// backslash escapes the next character, allowing the comment to
// continue across a line join.
func (s *State) skipCPlusComment() (rune, bool) {
	for {
		c, ok := s.getc()
		if !ok {
			return 0, false
		}
		switch c {
		case '\\':
			if _, ok := s.getc(); !ok {
				return 0, false
			}
		case '\n':
			s.ungetc(c)
			return ' ', true
		}
	}
}

// skipDComment consumes a D comment after "/+" has been read. Nested
// /+ +/ comments are not matched — a documented limitation carried
// over unchanged from get.c (see SPEC_FULL.md section 6).
func (s *State) skipDComment() (rune, bool) {
	for {
		c, ok := s.getc()
		if !ok {
			return 0, false
		}
		if c != '+' {
			continue
		}

		next, ok := s.getc()
		if !ok {
			return 0, false
		}
		if next == '/' {
			return ' ', true
		}
		s.ungetc(next)
	}
}
