// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package testtext provides support for generating random, delimited
// text for use in tests of splitting and other text processing code.
package testtext

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Random can be used to generate strings containing randomly selected runes.
type Random struct {
	options
	r *rand.Rand
}

type options struct {
	includeControl bool
	exclude        string
	seed           int64
	seeded         bool
}

// Option represents an option to NewRandom.
type Option func(o *options)

// IncludeControlOpt controls whether control characters can be included
// in the generated strings.
func IncludeControlOpt(v bool) Option {
	return func(o *options) {
		o.includeControl = v
	}
}

// ExcludeRunesOpt prevents any of the runes in the supplied string from
// appearing in the generated strings. It is typically used to ensure
// that a delimiter does not occur within generated items.
func ExcludeRunesOpt(runes string) Option {
	return func(o *options) {
		o.exclude = runes
	}
}

// SeedOpt sets the seed for the random number generator, the default is
// the current time.
func SeedOpt(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// NewRandom returns a new instance of Random.
func NewRandom(opts ...Option) *Random {
	r := &Random{}
	for _, fn := range opts {
		fn(&r.options)
	}
	if !r.seeded {
		r.seed = time.Now().UnixNano()
	}
	r.r = rand.New(rand.NewSource(r.seed))
	return r
}

// Seed returns the seed used by this instance, it is useful for
// reproducing test failures.
func (r *Random) Seed() int64 {
	return r.seed
}

// codeRange is a range of code points all of which have the same
// UTF-8 encoded length.
type codeRange struct {
	lo, hi int32
}

var codeRanges = [4]codeRange{
	{0, 127},         // ASCII, 1 byte
	{248, 696},       // Latin, 2 byte
	{7680, 7935},     // Latin, 3 byte
	{118784, 119029}, // Common, 4 byte
}

// WithRuneLen generates a string of nRunes runes each of which is
// nBytes (1-4) long when UTF-8 encoded.
func (r *Random) WithRuneLen(nBytes, nRunes int) string {
	if nBytes < 1 || nBytes > len(codeRanges) {
		panic(fmt.Sprintf("unsupported rune length: %v", nBytes))
	}
	sb := &strings.Builder{}
	for range nRunes {
		sb.WriteRune(r.genInRange(codeRanges[nBytes-1]))
	}
	return sb.String()
}

func (r *Random) genInRange(cr codeRange) rune {
	for {
		c := r.r.Int31n(cr.hi-cr.lo) + cr.lo
		if !r.includeControl && unicode.IsControl(c) {
			continue
		}
		if strings.ContainsRune(r.exclude, c) {
			continue
		}
		return c
	}
}

// AllRuneLens generates a string of nRunes runes of differing lengths.
// The lengths used follow a randomized, but repeating, order of 1..4.
func (r *Random) AllRuneLens(nRunes int) string {
	sb := &strings.Builder{}
	pattern := r.r.Perm(len(codeRanges))
	for i := range nRunes {
		sb.WriteRune(r.genInRange(codeRanges[pattern[i%len(pattern)]]))
	}
	return sb.String()
}

// Delimited generates nItems items, each of between 0 and maxRunes runes
// of mixed lengths, and returns them joined by sep along with the items
// themselves. Empty items are generated with the same probability as any
// other length so that leading, trailing and adjacent delimiters occur
// frequently. Use ExcludeRunesOpt to prevent sep from occurring within an
// item.
func (r *Random) Delimited(sep string, nItems, maxRunes int) (string, []string) {
	items := make([]string, nItems)
	for i := range items {
		items[i] = r.AllRuneLens(r.r.Intn(maxRunes + 1))
	}
	return strings.Join(items, sep), items
}
