// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package strsplit provides a lazily evaluated, zero-copy string splitter
// whose delimiter is located by a pluggable Matcher rather than being
// restricted to a fixed literal.
//
// A Splitter yields the substrings of its input that lie between successive
// delimiter matches. The substrings share the input's storage, no text is
// ever copied. The sequence is finite, forward-only and single pass:
//
//	sp := strsplit.New("a,b,,c,", strsplit.Rune(','))
//	for {
//	  item, ok := sp.Next()
//	  if !ok {
//	    break
//	  }
//	  fmt.Printf("%q\n", item) // "a", "b", "", "c", ""
//	}
//
// A delimiter at the start of the text yields a leading empty item, a
// delimiter at the end yields a trailing empty item and adjacent delimiters
// yield an empty item for each gap. Splitting the empty string yields exactly
// one empty item. For the Rune and Literal matchers the items are therefore
// identical to those returned by strings.Split.
//
// The Matchers provided are Literal, Rune, AnyOf and RuneFunc. Any other
// type that implements Matcher may be used, MatcherFunc allows an ordinary
// function to be used as a Matcher.
//
// A Splitter must not be used concurrently, but any number of Splitters may
// share the same input string.
package strsplit
