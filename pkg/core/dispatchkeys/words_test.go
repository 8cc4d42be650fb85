// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatchkeys

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// wideWords returns 3 words with the given bits set.
func wideWords(indices ...int) []uint64 {
	words := make([]uint64, 3)
	for _, idx := range indices {
		words[idx/bitsPerWord] |= 1 << uint(idx%bitsPerWord)
	}
	return words
}

func TestWords_MultiWord(t *testing.T) {
	assert.Equal(t, -1, highestBit(wideWords()))
	assert.Equal(t, 1, highestBit(wideWords(1)))
	assert.Equal(t, 63, highestBit(wideWords(1, 63)))
	assert.Equal(t, 64, highestBit(wideWords(1, 63, 64)))
	assert.Equal(t, 130, highestBit(wideWords(130, 64, 1)))
	assert.Equal(t, 191, highestBit(wideWords(5, 191)))

	assert.Equal(t, []int{1, 63, 64, 130}, slices.Collect(setBits(wideWords(130, 1, 64, 63))))
	assert.Empty(t, slices.Collect(setBits(wideWords())))
	var first []int
	for bit := range setBits(wideWords(70, 100, 140)) {
		first = append(first, bit)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{70, 100}, first)

	union := wideWords(1, 64)
	orWords(union, wideWords(64, 130))
	assert.Equal(t, wideWords(1, 64, 130), union)
	assert.Equal(t, 3, countBits(union))
	assert.Equal(t, 130, highestBit(union))

	intersection := wideWords(1, 64, 130)
	andWords(intersection, wideWords(64, 130, 150))
	assert.Equal(t, wideWords(64, 130), intersection)

	diff := wideWords(1, 64, 130)
	andNotWords(diff, wideWords(130))
	assert.Equal(t, wideWords(1, 64), diff)
	assert.Equal(t, 64, highestBit(diff))

	// Union stays commutative and associative across word boundaries.
	a, b, c := wideWords(3, 70), wideWords(64), wideWords(129, 3)
	ab := slices.Clone(a)
	orWords(ab, b)
	orWords(ab, c)
	cb := slices.Clone(c)
	orWords(cb, b)
	orWords(cb, a)
	assert.Equal(t, ab, cb)
}
