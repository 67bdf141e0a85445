// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

// Trigraph and digraph folding. Rather than get.c's goto-based
// re-entry into the outer switch, the driver tracks the character
// still needing classification in a local variable and loops (spec
// DESIGN NOTES): these helpers report whether their replacement must
// be reclassified from the top (true only for "??=", "??/" and "%:",
// which fold to '#' or '\\', the only characters the outer
// switch treats specially) or can be emitted as an ordinary character.

// foldTrigraph is called once '?' has already been read. It reports
// the character to treat as c going forward — which may still be '?'
// if no trigraph matched — and whether that character must be
// reclassified by the caller's main switch.
func (s *State) foldTrigraph() (c rune, reenter bool) {
	next, ok := s.getc()
	if !ok || next != '?' {
		if ok {
			s.ungetc(next)
		}
		return '?', false
	}

	next2, ok := s.getc()
	if !ok {
		s.ungetc('?')
		return '?', false
	}

	switch next2 {
	case '(':
		return '[', false
	case ')':
		return ']', false
	case '<':
		return '{', false
	case '>':
		return '}', false
	case '/':
		return '\\', true
	case '!':
		return '|', false
	case '\'':
		return '^', false
	case '-':
		return '~', false
	case '=':
		return '#', true
	default:
		s.ungetc('?')
		s.ungetc(next2)
		return '?', false
	}
}

// foldLess is called once '<' has already been read: "<:" -> '[',
// "<%" -> '{'.
func (s *State) foldLess() rune {
	next, ok := s.getc()
	if !ok {
		return '<'
	}
	switch next {
	case ':':
		return '['
	case '%':
		return '{'
	default:
		s.ungetc(next)
		return '<'
	}
}

// foldColon is called once ':' has already been read: ":>" -> ']'.
func (s *State) foldColon() rune {
	next, ok := s.getc()
	if !ok {
		return ':'
	}
	if next == '>' {
		return ']'
	}
	s.ungetc(next)
	return ':'
}

// foldPercent is called once '%' has already been read: "%>" -> '}',
// "%:" -> '#' (reclassified; two successive "%:" foldings is how
// "%:%:" becomes "##").
func (s *State) foldPercent() (c rune, reenter bool) {
	next, ok := s.getc()
	if !ok {
		return '%', false
	}
	switch next {
	case '>':
		return '}', false
	case ':':
		return '#', true
	default:
		s.ungetc(next)
		return '%', false
	}
}
