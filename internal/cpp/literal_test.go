// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import "testing"

func TestVeraBaseOnlyRecognizedAsFirstChar(t *testing.T) {
	// 'd' is a Vera base letter, but only when it is the literal's first
	// character; here it's the second, so the literal ends at the next
	// quote as an ordinary two-character literal.
	s := newState(t, "'ad';x", "t.vera", nil, false, false, false)
	if got, want := drain(t, s), "%;x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVeraBaseEndsAtNonAlnum(t *testing.T) {
	// Once a base letter is recognized, the literal runs through
	// alphanumerics and ends at the first non-alphanumeric byte, which
	// is pushed back rather than consumed.
	s := newState(t, "'hFF+x", "t.vera", nil, false, false, false)
	if got, want := drain(t, s), "%+x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnterminatedCharEndsAtNewline(t *testing.T) {
	s := newState(t, "'ab\nc", "t.c", nil, false, false, false)
	if got, want := drain(t, s), "%\nc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringBackslashEscapesQuote(t *testing.T) {
	s := newState(t, `"a\"b"c`, "t.c", nil, false, false, false)
	if got, want := drain(t, s), "$c"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRawLiteralPrefixedByIdentifierIsNotLiteral(t *testing.T) {
	// get.c's own documented counter-example: #define FOUR "4" followed
	// by FOUR"5" is preprocessor concatenation, not a raw literal, since
	// the R in FOUR is glued onto an identifier rather than standing on
	// its own (or following exactly L/u/U/u8).
	s := newState(t, `FOUR"5"`, "t.cpp", nil, false, false, true)
	if got, want := drain(t, s), "FOUR$"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRawLiteralAfterEncodingPrefixIsStillLiteral(t *testing.T) {
	// uR"(x)" is legal: the single-letter encoding prefix u is not
	// itself glued onto a longer identifier, so R still starts a raw
	// literal.
	s := newState(t, `uR"(x)"`, "t.cpp", nil, false, false, true)
	if got, want := drain(t, s), "u$"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRawLiteralFallsBackWithoutDelimiter(t *testing.T) {
	// A bare 'R' not followed by '"' is never treated as a raw-literal
	// prefix at all; NextChar's switch only looks for raw literals
	// after peeking a following '"'.
	s := newState(t, "Rx", "t.cpp", nil, false, false, true)
	if got, want := drain(t, s), "Rx"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
