// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

// pushback is the two-slot LIFO buffer NextChar drains before touching
// the underlying reader. Modeled as a small inline array with an
// explicit count per the specification's DESIGN NOTES ("model as an
// inline buffer with an explicit count, not a general deque"), the
// direct analogue of get.c's Cpp.ungetch/Cpp.ungetch2 pair.
type pushback struct {
	buf [2]rune
	n   int
}

// push stores c to be returned by the next pop. Pushing a third
// character before either of the first two has been popped is a
// programming error (get.c asserts Cpp.ungetch2 == '\0' in
// cppUngetc); ctagscpp always asserts it, matching spec section 7's
// "Pushback overflow: a programming error".
func (p *pushback) push(c rune) {
	if p.n >= len(p.buf) {
		panic("cpp: pushback overflow")
	}

	// LIFO: the most recently pushed character must be the first
	// popped, so shift the existing entry down before storing c at
	// slot 0, mirroring Cpp.ungetch2 = Cpp.ungetch; Cpp.ungetch = c.
	for i := p.n; i > 0; i-- {
		p.buf[i] = p.buf[i-1]
	}
	p.buf[0] = c
	p.n++
}

// pop removes and returns the most recently pushed character. The
// caller must check len() first.
func (p *pushback) pop() rune {
	c := p.buf[0]
	for i := 1; i < p.n; i++ {
		p.buf[i-1] = p.buf[i]
	}
	p.n--
	return c
}

func (p *pushback) len() int { return p.n }
