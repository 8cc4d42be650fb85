// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatchkeys

import (
	"iter"
	"strings"

	"github.com/gomlx/exceptions"
)

const (
	bitsPerWord = 64

	// numWords needed to hold one bit per ordinal in [0, NumDispatchKeys).
	numWords = (int(NumDispatchKeys) + bitsPerWord - 1) / bitsPerWord
)

// Set of dispatch keys, stored as a bitset with one bit per DispatchKey ordinal.
//
// The zero value is the empty set. Sets are values: all methods take a copy and return a new Set,
// so they can be freely shared and used concurrently. Two sets can be compared with == or Set.Equal.
//
// Bit 0 (Undefined) is never set.
type Set struct {
	words [numWords]uint64
}

// fullSet has every valid key set. It is built once, and only returned by value.
var fullSet = func() (s Set) {
	for key := Undefined + 1; key < NumDispatchKeys; key++ {
		s.words[wordOf(key)] |= maskOf(key)
	}
	return
}()

// backendSet has all the backend keys.
var backendSet = func() (s Set) {
	for key := CPU; key <= PrivateUse3; key++ {
		s.words[wordOf(key)] |= maskOf(key)
	}
	return
}()

func wordOf(key DispatchKey) int { return int(key) / bitsPerWord }
func maskOf(key DispatchKey) uint64 { return 1 << (uint(key) % bitsPerWord) }

// checkKey panics if key can't be a member of a Set.
func checkKey(method string, key DispatchKey) {
	if !key.IsValid() {
		exceptions.Panicf("dispatchkeys.Set.%s(%d): invalid dispatch key, valid keys are in the range [1, %d)",
			method, int(key), int(NumDispatchKeys))
	}
}

// EmptySet returns a set with no keys. It is the same as the zero value `Set{}`.
func EmptySet() Set {
	return Set{}
}

// Full returns the set with all valid dispatch keys.
func Full() Set {
	return fullSet
}

// BackendKeys returns the set with all the backend keys, from CPU to PrivateUse3.
func BackendKeys() Set {
	return backendSet
}

// Singleton returns a set with only the given key.
//
// It panics if key is not valid (see DispatchKey.IsValid).
func Singleton(key DispatchKey) (s Set) {
	checkKey("Singleton", key)
	s.words[wordOf(key)] = maskOf(key)
	return
}

// MakeSet returns a set with the given keys. It panics if any of the keys is not valid.
func MakeSet(keys ...DispatchKey) (s Set) {
	for _, key := range keys {
		checkKey("MakeSet", key)
		s.words[wordOf(key)] |= maskOf(key)
	}
	return
}

// Add returns a copy of s with key added. Adding a key already present returns an equal set.
func (s Set) Add(key DispatchKey) Set {
	checkKey("Add", key)
	s.words[wordOf(key)] |= maskOf(key)
	return s
}

// Remove returns a copy of s without key. Removing a key that is not present returns an equal set.
func (s Set) Remove(key DispatchKey) Set {
	checkKey("Remove", key)
	s.words[wordOf(key)] &^= maskOf(key)
	return s
}

// Has returns whether the key is in the set.
func (s Set) Has(key DispatchKey) bool {
	checkKey("Has", key)
	return s.words[wordOf(key)]&maskOf(key) != 0
}

// Union returns a set with the keys of both s and other.
func (s Set) Union(other Set) Set {
	orWords(s.words[:], other.words[:])
	return s
}

// Intersect returns a set with the keys present in both s and other.
func (s Set) Intersect(other Set) Set {
	andWords(s.words[:], other.words[:])
	return s
}

// Sub returns `s - other`, that is, the keys in s that are not in other.
func (s Set) Sub(other Set) Set {
	andNotWords(s.words[:], other.words[:])
	return s
}

// Equal returns whether s and other have exactly the same keys. Same as `s == other`.
func (s Set) Equal(other Set) bool {
	return s == other
}

// IsEmpty returns whether the set has no keys.
func (s Set) IsEmpty() bool {
	return s == Set{}
}

// Len returns the number of keys in the set.
func (s Set) Len() int {
	return countBits(s.words[:])
}

// HighestPriority returns the key with the largest ordinal present in the set,
// or Undefined if the set is empty.
//
// This is the only tie-breaking rule used in dispatching: the larger key always wins.
func (s Set) HighestPriority() DispatchKey {
	if bit := highestBit(s.words[:]); bit >= 0 {
		return DispatchKey(bit)
	}
	return Undefined
}

// Keys iterates over the keys present in the set, in increasing order of priority.
func (s Set) Keys() iter.Seq[DispatchKey] {
	return func(yield func(DispatchKey) bool) {
		for bit := range setBits(s.words[:]) {
			if !yield(DispatchKey(bit)) {
				return
			}
		}
	}
}

// String implements fmt.Stringer. E.g.: "DispatchKeySet(CPU, Autograd)".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteString("DispatchKeySet(")
	first := true
	for key := range s.Keys() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(key.String())
	}
	sb.WriteString(")")
	return sb.String()
}
