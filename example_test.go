// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strsplit_test

import (
	"fmt"
	"strings"
	"unicode"

	"cloudeng.io/strsplit"
)

func ExampleSplitter() {
	sp := strsplit.New("a b c d ", strsplit.Rune(' '))
	for {
		item, ok := sp.Next()
		if !ok {
			break
		}
		fmt.Printf("%q\n", item)
	}
	// Output:
	// "a"
	// "b"
	// "c"
	// "d"
	// ""
}

func ExampleSplit() {
	for i, item := range strsplit.Split("key=value; name = x", strsplit.Literal("; ")) {
		fmt.Println(i, item)
	}
	// Output:
	// 0 key=value
	// 1 name = x
}

func ExampleFirstSegment() {
	fmt.Println(strsplit.FirstSegment("hello world", 'o'))
	// Output:
	// hell
}

func ExampleRuneFunc() {
	items := strsplit.Collect("one\ttwo  three", strsplit.RuneFunc(unicode.IsSpace))
	fmt.Printf("%q\n", items)
	// Output:
	// ["one" "two" "" "three"]
}

func ExampleMatcherFunc() {
	// Split on runs of commas rather than on each comma.
	commas := strsplit.MatcherFunc(func(text string) (int, int, bool) {
		start := strings.IndexByte(text, ',')
		if start < 0 {
			return 0, 0, false
		}
		end := start + 1
		for end < len(text) && text[end] == ',' {
			end++
		}
		return start, end, true
	})
	fmt.Printf("%q\n", strsplit.Collect("a,,,b,c", commas))
	// Output:
	// ["a" "b" "c"]
}
