// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"go/token"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cznic/ctagscpp/internal/options"
	"github.com/cznic/ctagscpp/internal/source"
	"github.com/cznic/ctagscpp/internal/tags"
)

// collectSink records every emitted tag, for tests that need to inspect
// them rather than just the filtered character stream.
type collectSink struct {
	entries []tags.Entry
}

func (c *collectSink) Emit(e tags.Entry) error {
	c.entries = append(c.entries, e)
	return nil
}

func newState(t *testing.T, src, name string, sink Sink, braceFormat, hasAtLit, hasRawLit bool) *State {
	t.Helper()
	r, err := source.NewReaderFor(token.NewFileSet(), source.NewStringSource(name, src))
	if err != nil {
		t.Fatal(err)
	}
	return New(r, name, options.Default(), sink, braceFormat, hasAtLit, hasRawLit)
}

func drain(t *testing.T, s *State) string {
	t.Helper()
	var out []rune
	for {
		c, err := s.NextChar()
		if err == io.EOF {
			return string(out)
		}
		if err != nil {
			t.Fatal(err)
		}
		switch c {
		case StringSymbol:
			out = append(out, '$')
		case CharSymbol:
			out = append(out, '%')
		default:
			out = append(out, c)
		}
	}
}

func TestFilterScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain text", "int x;\n", "int x;\n"},
		{"c comment", "a/* hi */b", "a b"},
		{"c comment spans lines", "a/* hi\nthere */b", "a b"},
		{"cplus comment", "a//hi\nb", "a \nb"},
		{"d comment", "a/+hi+/b", "a b"},
		{"string literal", `x = "hello";`, "x = $;"},
		{"char literal", "x = 'a';", "x = %;"},
		{"escaped quote in string", `s = "a\"b";`, "s = $;"},
		{"line splice", "a\\\nb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(t, tt.src, "t.c", nil, false, false, false)
			got := drain(t, s)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrigraphFolding(t *testing.T) {
	s := newState(t, "??(a??)", "t.c", nil, false, false, false)
	if got, want := drain(t, s), "[a]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTrigraphReentry(t *testing.T) {
	// "??/" folds to backslash; followed by a newline it must still be
	// recognized as a line splice, exercising fold's reenter path.
	s := newState(t, "a??/\nb", "t.c", nil, false, false, false)
	if got, want := drain(t, s), "ab"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDigraphFolding(t *testing.T) {
	s := newState(t, "<:a:>", "t.c", nil, false, false, false)
	if got, want := drain(t, s), "[a]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPercentDigraphReentry(t *testing.T) {
	// "%:%:" folds to "##", exercising foldPercent's reenter path twice.
	// Led by "a" so the first folded '#' lands mid-line rather than
	// being mistaken for the start of a directive.
	s := newState(t, "a%:%:x", "t.c", nil, false, false, false)
	if got, want := drain(t, s), "a##x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAtLiteralString(t *testing.T) {
	s := newState(t, `@"a\b"`, "t.cs", nil, false, true, false)
	if got, want := drain(t, s), "$"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAtLiteralDisabledFallsThrough(t *testing.T) {
	s := newState(t, `@x`, "t.c", nil, false, false, false)
	if got, want := drain(t, s), "@x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRawLiteralString(t *testing.T) {
	s := newState(t, `R"lit(a)b(lit)"`, "t.cpp", nil, false, false, true)
	if got, want := drain(t, s), "$"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVeraCharBase(t *testing.T) {
	s := newState(t, "x = 'h1a';", "t.vera", nil, false, true, false)
	if got, want := drain(t, s), "x = %;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIf0Suppressed(t *testing.T) {
	s := newState(t, "a\n#if 0\nb\n#endif\nc\n", "t.c", nil, false, false, false)
	if got, want := drain(t, s), "a\n\nc\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIf0ScannedWhenRequested(t *testing.T) {
	r, err := source.NewReaderFor(token.NewFileSet(), source.NewStringSource("t.c", "#if 0\nb\n#endif\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts := options.Default()
	opts.If0 = true
	s := New(r, "t.c", opts, nil, false, false, false)
	if got, want := drain(t, s), "\nb\n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIfNonZeroKeepsBranch(t *testing.T) {
	s := newState(t, "#ifdef FOO\nb\n#endif\nc\n", "t.c", nil, false, false, false)
	if got, want := drain(t, s), "\nb\n\nc\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefineEmitsMacroTag(t *testing.T) {
	sink := &collectSink{}
	s := newState(t, "#define FOO 1\n", "t.c", sink, false, false, false)
	drain(t, s)

	want := []tags.Entry{{
		Name:         "FOO",
		Kind:         'd',
		KindName:     "macro",
		Line:         1,
		IsFileScope:  true,
		TruncateLine: true,
	}}
	if diff := cmp.Diff(want, sink.entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParameterizedDefineCapturesSignature(t *testing.T) {
	sink := &collectSink{}
	s := newState(t, "#define MAX(a,b) ((a)>(b)?(a):(b))\n", "t.c", sink, false, false, false)
	drain(t, s)

	if len(sink.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(sink.entries))
	}
	if got, want := sink.entries[0].Signature, "(a,b)"; got != want {
		t.Errorf("signature = %q, want %q", got, want)
	}
}

func TestDefineInHeaderIsNotFileScope(t *testing.T) {
	sink := &collectSink{}
	s := newState(t, "#define FOO 1\n", "t.h", sink, false, false, false)
	drain(t, s)

	if len(sink.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(sink.entries))
	}
	if sink.entries[0].IsFileScope {
		t.Error("IsFileScope = true for a header-file macro, want false")
	}
}

func TestNoDefineTagsSuppressesEmission(t *testing.T) {
	sink := &collectSink{}
	r, err := source.NewReaderFor(token.NewFileSet(), source.NewStringSource("t.c", "#define FOO 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts := options.Default()
	opts.IncludeDefineTags = false
	s := New(r, "t.c", opts, sink, false, false, false)
	drain(t, s)

	if len(sink.entries) != 0 {
		t.Errorf("got %d entries, want 0", len(sink.entries))
	}
}

func TestPragmaWeakEmitsMacroTag(t *testing.T) {
	sink := &collectSink{}
	s := newState(t, "#pragma weak foo\n", "t.c", sink, false, false, false)
	drain(t, s)

	if len(sink.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(sink.entries))
	}
	if got, want := sink.entries[0].Name, "foo"; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
}

func TestUngetCharReplaysCharacter(t *testing.T) {
	s := newState(t, "ab", "t.c", nil, false, false, false)
	c, err := s.NextChar()
	if err != nil || c != 'a' {
		t.Fatalf("first NextChar = %q, %v", c, err)
	}
	s.UngetChar(c)
	if got, want := drain(t, s), "ab"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStateStringRendersSnapshot(t *testing.T) {
	s := newState(t, "a\nb", "t.c", nil, true, false, false)
	s.NextChar()
	s.NextChar() // consume the newline, advancing to line 2

	got := s.String()
	for _, want := range []string{"t.c", "2"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, want it to contain %q", got, want)
		}
	}
}

func TestBeginEndStatementLifecycle(t *testing.T) {
	s := newState(t, "x", "t.c", nil, false, false, false)
	s.BeginStatement()
	if !s.resolveRequired {
		t.Fatal("BeginStatement did not set resolveRequired")
	}
	s.EndStatement()
	if s.resolveRequired {
		t.Fatal("EndStatement did not clear resolveRequired")
	}
}
