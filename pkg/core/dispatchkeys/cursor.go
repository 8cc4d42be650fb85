// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatchkeys

import (
	"iter"

	"github.com/gomlx/exceptions"
)

// Cursor walks over every valid key slot (1 to NumDispatchKeys-1), in increasing order, and reports
// whether each key is present in the set it was created from.
//
// It visits all slots, not only the present ones: a full traversal always takes NumDispatchKeys-1 steps.
//
// A Cursor holds its own copy of the set, so later changes to the original variable don't affect it.
// It is meant to be owned by one goroutine.
//
// Example:
//
//	for c := s.Begin(); !c.Equal(s.End()); c.Next() {
//		fmt.Printf("%s: %v\n", c.Key(), c.Value())
//	}
type Cursor struct {
	set Set
	pos DispatchKey
}

// Begin returns a cursor positioned at the first valid key.
//
// If there were no valid keys, it would be equal to End.
func (s Set) Begin() Cursor {
	return Cursor{set: s, pos: Undefined + 1}
}

// End returns the cursor one past the last valid key.
func (s Set) End() Cursor {
	return Cursor{set: s, pos: NumDispatchKeys}
}

// Key returns the key at the current position.
// At the end position it returns NumDispatchKeys.
func (c Cursor) Key() DispatchKey {
	return c.pos
}

// Done returns whether the cursor reached the end position.
func (c Cursor) Done() bool {
	return c.pos >= NumDispatchKeys
}

// Value returns whether the key at the current position is present in the set.
// It doesn't move the cursor.
//
// It panics if the cursor is at the end position.
func (c Cursor) Value() bool {
	if c.Done() {
		exceptions.Panicf("dispatchkeys.Cursor.Value(): cursor is at the end position")
	}
	return c.set.Has(c.pos)
}

// Next advances the cursor to the next key, and returns the cursor itself.
//
// It panics if the cursor is already at the end position.
func (c *Cursor) Next() *Cursor {
	if c.Done() {
		exceptions.Panicf("dispatchkeys.Cursor.Next(): cannot advance past the end position")
	}
	c.pos++
	return c
}

// PostNext advances the cursor to the next key, and returns a copy of the cursor from before it
// was advanced.
//
// It panics if the cursor is already at the end position.
func (c *Cursor) PostNext() Cursor {
	previous := *c
	c.Next()
	return previous
}

// Equal returns whether both cursors were created from equal sets and are at the same position.
// Cursors hold a copy of the set, so cursors over two separately built but equal sets are equal.
func (c Cursor) Equal(other Cursor) bool {
	return c == other
}

// Presence iterates over every valid key slot, in increasing order, yielding whether the key is present.
//
// It yields exactly NumDispatchKeys-1 values, regardless of the contents of the set.
func (s Set) Presence() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		end := s.End()
		for c := s.Begin(); !c.Equal(end); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}
