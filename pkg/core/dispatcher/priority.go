// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatcher

import "fmt"

// RegisterPriority of a kernel registration: when more than one kernel is registered for the same
// operator and dispatch key, the one with the highest priority is used, regardless of the order of
// registration.
//
// This allows generic implementations to be registered first, and specialized ones (e.g. using
// architecture specific instructions) to override them from packages that may or may not be linked.
type RegisterPriority int

const (
	// PriorityGeneric is used for generic implementations, usually valid for any dtype.
	PriorityGeneric RegisterPriority = iota

	// PriorityTyped is used for implementations specialized for some type.
	PriorityTyped

	// PriorityArch is used for implementations using architecture specific code (SIMD, accelerators, etc.).
	PriorityArch
)

// String implements fmt.Stringer.
func (p RegisterPriority) String() string {
	switch p {
	case PriorityGeneric:
		return "Generic"
	case PriorityTyped:
		return "Typed"
	case PriorityArch:
		return "Arch"
	}
	return fmt.Sprintf("RegisterPriority(%d)", int(p))
}
