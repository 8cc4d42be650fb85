// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatchkeys

import (
	"iter"
	"math/bits"
)

// Bit manipulation over a little-endian slice of words: bit i is in words[i/bitsPerWord].
// They work for any number of words, Set uses them over its fixed array.

func orWords(dst, src []uint64) {
	for ii := range dst {
		dst[ii] |= src[ii]
	}
}

func andWords(dst, src []uint64) {
	for ii := range dst {
		dst[ii] &= src[ii]
	}
}

func andNotWords(dst, src []uint64) {
	for ii := range dst {
		dst[ii] &^= src[ii]
	}
}

func countBits(words []uint64) (n int) {
	for _, word := range words {
		n += bits.OnesCount64(word)
	}
	return
}

// highestBit returns the index of the most significant bit set, or -1 if no bit is set.
func highestBit(words []uint64) int {
	for ii := len(words) - 1; ii >= 0; ii-- {
		if word := words[ii]; word != 0 {
			return ii*bitsPerWord + bitsPerWord - 1 - bits.LeadingZeros64(word)
		}
	}
	return -1
}

// setBits iterates over the indices of the bits set, in increasing order.
func setBits(words []uint64) iter.Seq[int] {
	return func(yield func(int) bool) {
		for ii, word := range words {
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				if !yield(ii*bitsPerWord + bit) {
					return
				}
				word &^= 1 << uint(bit)
			}
		}
	}
}
