// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dispatchkeys defines the DispatchKey enum and Set, a compact bitset of dispatch keys used to
// select which kernel implementation of an operation takes precedence.
//
// Each key identifies a backend (CPU, CUDA, XLA, ...) or a functionality layered on top of backends
// (Autograd, Tracer, ...). The ordinal of a key is also its priority: when several keys are present in
// a Set, the one with the largest ordinal wins (see Set.HighestPriority).
//
// Set is a value type: it holds no pointers, it is comparable with ==, and copies are independent.
// Passing invalid keys (Undefined, NumDispatchKeys or anything out of range) to Set methods is a bug in
// the caller and it panics -- the same way an index out of range does.
package dispatchkeys

import (
	"github.com/pkg/errors"
)

// DispatchKey identifies one backend or functionality a kernel can be registered for.
//
// The order of the values is a contract: keys with larger values have higher priority,
// and new keys can only be appended at the end of their group.
type DispatchKey int

//go:generate go tool enumer -type=DispatchKey -output=gen_dispatchkey_enumer.go dispatchkeys.go

const (
	// Undefined is the zero value, it is never a member of a Set.
	// It is returned by Set.HighestPriority when the set is empty.
	Undefined DispatchKey = iota

	// Backends: they hold the actual implementation of operations.
	CPU
	CUDA
	HIP
	FPGA
	XLA
	Vulkan
	Metal
	MkldnnCPU
	QuantizedCPU
	QuantizedCUDA
	SparseCPU
	SparseCUDA
	PrivateUse1
	PrivateUse2
	PrivateUse3

	// Meta is for kernels that only compute output shapes and dtypes.
	Meta

	// BackendSelect picks a backend for operations that take no tensor inputs (factory functions).
	BackendSelect

	// Named handles named axes, before redispatching to the backend.
	Named

	// Functionalities: they wrap the backends and usually redispatch to them.
	Autograd
	Profiler
	Tracer
	Autocast
	Batched
	VmapMode
	TestingOnlyGenericWrapper
	TestingOnlyGenericMode

	// NumDispatchKeys is the number of dispatch keys, including Undefined. It is not a valid key.
	NumDispatchKeys
)

// IsValid returns whether the key can be a member of a Set: that is 0 < key < NumDispatchKeys.
func (key DispatchKey) IsValid() bool {
	return key > Undefined && key < NumDispatchKeys
}

// IsBackend returns whether the key is one of the backend keys (CPU ... PrivateUse3).
func (key DispatchKey) IsBackend() bool {
	return key >= CPU && key <= PrivateUse3
}

// FromOrdinal converts an ordinal to a DispatchKey, checking the range [0, NumDispatchKeys).
//
// Notice Undefined (0) is a valid ordinal, but not a valid member of a Set: use DispatchKey.IsValid for that.
func FromOrdinal(ordinal int) (DispatchKey, error) {
	if ordinal < 0 || ordinal >= int(NumDispatchKeys) {
		return Undefined, errors.Errorf("dispatch key ordinal %d out of range [0, %d)", ordinal, NumDispatchKeys)
	}
	return DispatchKey(ordinal), nil
}
