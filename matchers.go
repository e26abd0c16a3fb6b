// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strsplit

import (
	"strings"
	"unicode/utf8"
)

// Matcher is implemented by types that can locate a delimiter within
// a string.
//
// Locate returns the byte offsets of the first delimiter in text, such that
// text[start:end] is the delimiter, and true. It returns false if there is no
// delimiter in text. A match must be non-empty and lie within text, that is,
// 0 <= start < end <= len(text).
type Matcher interface {
	Locate(text string) (start, end int, ok bool)
}

// MatcherFunc allows an ordinary function to be used as a Matcher.
type MatcherFunc func(text string) (start, end int, ok bool)

// Locate implements Matcher.
func (fn MatcherFunc) Locate(text string) (start, end int, ok bool) {
	return fn(text)
}

// Literal is a Matcher for an exact string. An empty Literal never matches.
type Literal string

// Locate implements Matcher.
func (l Literal) Locate(text string) (start, end int, ok bool) {
	if len(l) == 0 {
		return 0, 0, false
	}
	idx := strings.Index(text, string(l))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(l), true
}

// Rune is a Matcher for a single Unicode code point. The match spans
// all of the bytes of the code point's UTF-8 encoding. Invalid code points
// never match, with the exception of utf8.RuneError which matches the first
// invalid UTF-8 sequence (or encoded U+FFFD) in text.
type Rune rune

// Locate implements Matcher.
func (r Rune) Locate(text string) (start, end int, ok bool) {
	if !utf8.ValidRune(rune(r)) {
		return 0, 0, false
	}
	return runeSpan(text, strings.IndexRune(text, rune(r)))
}

// AnyOf is a Matcher for any one of the code points in a string.
// An empty AnyOf never matches.
type AnyOf string

// Locate implements Matcher.
func (a AnyOf) Locate(text string) (start, end int, ok bool) {
	return runeSpan(text, strings.IndexAny(text, string(a)))
}

// RuneFunc is a Matcher for the first code point for which the function
// returns true. Invalid UTF-8 bytes are presented to the function as
// utf8.RuneError, one byte at a time. A nil RuneFunc never matches.
type RuneFunc func(rune) bool

// Locate implements Matcher.
func (fn RuneFunc) Locate(text string) (start, end int, ok bool) {
	if fn == nil {
		return 0, 0, false
	}
	return runeSpan(text, strings.IndexFunc(text, fn))
}

// runeSpan returns the span of the, possibly invalid, UTF-8 sequence
// starting at idx.
func runeSpan(text string, idx int) (start, end int, ok bool) {
	if idx < 0 {
		return 0, 0, false
	}
	_, size := utf8.DecodeRuneInString(text[idx:])
	return idx, idx + size, true
}
