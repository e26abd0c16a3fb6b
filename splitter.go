// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strsplit

import (
	"fmt"
	"iter"
)

type state int

const (
	remaining state = iota
	done
)

// Splitter lazily splits a string into the items separated by the
// delimiters located by its Matcher. The zero value is not usable,
// use New to create a Splitter.
type Splitter struct {
	matcher Matcher
	state   state
	view    string
}

// New returns a Splitter for text that uses m to locate delimiters.
// Neither text nor m is copied.
func New(text string, m Matcher) *Splitter {
	return &Splitter{
		matcher: m,
		state:   remaining,
		view:    text,
	}
}

// Next returns the next item and true, or "" and false once all items
// have been returned. The final item is the text following the last
// delimiter, which will be empty if the text ends with a delimiter. Once
// Next has returned false it will always return false.
//
// Next panics if the Matcher returns a span that is empty or that
// lies outside of the text it was given.
func (s *Splitter) Next() (string, bool) {
	if s.state == done {
		return "", false
	}
	view := s.view
	start, end, ok := s.matcher.Locate(view)
	if !ok {
		s.state = done
		s.view = ""
		return view, true
	}
	if start < 0 || end <= start || end > len(view) {
		panic(fmt.Sprintf("strsplit: %T.Locate returned invalid span [%d, %d) for text of length %d", s.matcher, start, end, len(view)))
	}
	s.view = view[end:]
	return view[:start], true
}

// Done returns true once Next has returned its final item.
func (s *Splitter) Done() bool {
	return s.state == done
}

// Remaining returns the portion of the text that has yet to be
// inspected, without consuming it. It returns "" and false once
// the Splitter is done; note that the remaining text may legitimately
// be empty while the Splitter is not yet done.
func (s *Splitter) Remaining() (string, bool) {
	if s.state == done {
		return "", false
	}
	return s.view, true
}

// All returns an iterator over the Splitter's items and their 0-based
// index. Iterating consumes the Splitter; breaking out of the loop
// leaves it positioned immediately after the last item yielded, so that a
// subsequent call to All or Next resumes from that point, with the indices
// restarting at 0.
func (s *Splitter) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; ; i++ {
			item, ok := s.Next()
			if !ok || !yield(i, item) {
				return
			}
		}
	}
}

// Split returns an iterator over the items of text as delimited by m
// and their 0-based index. It is shorthand for New(text, m).All().
//
//	for i, item := range strsplit.Split(line, strsplit.Literal(", ")) {
//	  ...
//	}
func Split(text string, m Matcher) iter.Seq2[int, string] {
	return New(text, m).All()
}

// Collect returns all of the items of text as delimited by m. The
// returned strings share storage with text.
func Collect(text string, m Matcher) []string {
	var items []string
	for _, item := range Split(text, m) {
		items = append(items, item)
	}
	return items
}

// UntilMatch returns the text preceding the first delimiter located by m,
// or all of text if there is no such delimiter.
func UntilMatch(text string, m Matcher) string {
	item, ok := New(text, m).Next()
	if !ok {
		panic(fmt.Sprintf("strsplit: a new Splitter for %T returned no items", m))
	}
	return item
}

// FirstSegment returns the text preceding the first occurrence of the
// rune r, or all of text if r does not occur in it.
//
//	strsplit.FirstSegment("hello world", 'o') // "hell"
func FirstSegment(text string, r rune) string {
	return UntilMatch(text, Rune(r))
}
