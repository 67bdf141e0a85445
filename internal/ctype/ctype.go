// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctype holds the small character-class predicates the
// preprocessing layer needs and that get.c leaves to ctype.h.
package ctype

import "strings"

// IsIdent1 reports whether c can start an identifier.
func IsIdent1(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdent reports whether c can appear inside an identifier, after the
// first character.
func IsIdent(c rune) bool {
	return IsIdent1(c) || (c >= '0' && c <= '9')
}

var headerExtensions = []string{".h", ".hh", ".hpp", ".hxx", ".H"}

// IsHeaderFile reports whether name looks like a C-family header, based
// on its extension.
func IsHeaderFile(name string) bool {
	for _, ext := range headerExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
