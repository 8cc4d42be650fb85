// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dispatcher selects and calls the kernel implementing an operator for a set of dispatch keys.
//
// Kernels are registered per operator name and dispatch key. A call collects the dispatch keys of its
// inputs (see Operand), adds and removes the keys configured for the context (WithIncludedKeys,
// WithExcludedKeys) and for the Dispatcher (config.Config), and calls the kernel registered for the
// key with the highest priority.
//
// Kernels for functionalities (Autograd, Tracer, ...) usually do their work and then call Redispatch
// with their own key removed, so the next key in priority order (eventually a backend) gets executed.
//
// Keys can also be skipped: a "fallthrough" registered for a key makes dispatching move on to the next
// key in priority order, as if the key was not in the set.
package dispatcher

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/gomlx/dispatch/pkg/core/dispatcher/config"
	. "github.com/gomlx/dispatch/pkg/core/dispatchkeys"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// ErrUnknownOperator is returned when calling an operator that has no registered kernels.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrNoKernel is returned when no kernel (or fallback) is registered for the selected dispatch key.
	ErrNoKernel = errors.New("no kernel registered")
)

// Kernel implements an operator for one dispatch key.
//
// keys are the dispatch keys used to select the kernel: the kernel's own key is always
// keys.HighestPriority(). A kernel for a functionality can remove its key and call Dispatcher.Redispatch.
type Kernel func(ctx context.Context, keys Set, inputs []any) (any, error)

// Operand is implemented by call inputs that require dispatch keys -- e.g.: a tensor stored on CUDA that
// requires gradients would return {CUDA, Autograd}.
//
// Inputs that don't implement Operand don't contribute any keys.
type Operand interface {
	DispatchKeys() Set
}

// kernelEntry is one slot of a dispatch table.
type kernelEntry struct {
	kernel        Kernel
	priority      RegisterPriority
	isFallthrough bool
	registered    bool
}

// kernelTable holds one entry per dispatch key.
type kernelTable [NumDispatchKeys]kernelEntry

// Dispatcher holds the kernels registered for each operator, and the fallbacks used by all operators.
//
// It is safe for concurrent use. Registration is usually done during initialization.
type Dispatcher struct {
	config config.Config

	mu        sync.RWMutex
	operators map[string]*kernelTable
	fallbacks kernelTable
}

// New returns a Dispatcher configured with config.FromEnv.
//
// It panics if the configuration is invalid.
func New() *Dispatcher {
	c, err := config.FromEnv()
	if err != nil {
		exceptions.Panicf("dispatcher.New(): %+v", err)
	}
	return NewWithConfig(c)
}

// NewWithConfig returns a Dispatcher with the given configuration.
func NewWithConfig(c config.Config) *Dispatcher {
	return &Dispatcher{
		config:    c,
		operators: make(map[string]*kernelTable),
	}
}

var defaultDispatcher = sync.OnceValue(New)

// Default returns the process-wide Dispatcher, created with New on first use.
func Default() *Dispatcher {
	return defaultDispatcher()
}

// Config returns the configuration of the dispatcher.
func (d *Dispatcher) Config() config.Config {
	return d.config
}

// checkRegistrationKey panics if key can't have kernels registered.
func checkRegistrationKey(method string, key DispatchKey) {
	if !key.IsValid() {
		exceptions.Panicf("Dispatcher.%s(): invalid dispatch key %s, valid keys are in the range [1, %d)",
			method, key, int(NumDispatchKeys))
	}
}

// setEntry stores entry in table for key, respecting the registration priorities:
// a higher priority replaces a lower one, a lower one is ignored, and a repeated one panics.
//
// It must be called with d.mu locked.
func setEntry(table *kernelTable, where string, key DispatchKey, entry kernelEntry) {
	current := &table[key]
	if current.registered {
		switch {
		case entry.priority < current.priority:
			klog.V(2).Infof("dispatcher: %s for %s with priority %s ignored, a kernel with priority %s is already registered",
				where, key, entry.priority, current.priority)
			return
		case entry.priority == current.priority:
			exceptions.Panicf("dispatcher: %s already has a kernel registered for %s with priority %s",
				where, key, entry.priority)
		}
		klog.V(1).Infof("dispatcher: %s for %s with priority %s overrides kernel with priority %s",
			where, key, entry.priority, current.priority)
	}
	entry.registered = true
	*current = entry
}

// Register kernel as the implementation of the operator op for the dispatch key.
//
// If a kernel is already registered for (op, key), the one with the higher priority is kept.
// Registering twice with the same priority is a bug, and it panics.
func (d *Dispatcher) Register(op string, key DispatchKey, priority RegisterPriority, kernel Kernel) {
	checkRegistrationKey("Register", key)
	if kernel == nil {
		exceptions.Panicf("Dispatcher.Register(%q, %s): nil kernel", op, key)
	}
	d.register(op, key, kernelEntry{kernel: kernel, priority: priority})
}

// RegisterFallthrough makes the operator op skip the dispatch key: dispatching moves on to the next
// key in priority order.
//
// It is registered with PriorityGeneric, so any kernel registered with a higher priority overrides it.
func (d *Dispatcher) RegisterFallthrough(op string, key DispatchKey) {
	checkRegistrationKey("RegisterFallthrough", key)
	d.register(op, key, kernelEntry{priority: PriorityGeneric, isFallthrough: true})
}

func (d *Dispatcher) register(op string, key DispatchKey, entry kernelEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	table, found := d.operators[op]
	if !found {
		table = &kernelTable{}
		d.operators[op] = table
	}
	setEntry(table, "operator "+op, key, entry)
}

// RegisterFallback registers kernel for the dispatch key for all operators that don't have their
// own kernel for the key. Priorities work as in Register.
func (d *Dispatcher) RegisterFallback(key DispatchKey, priority RegisterPriority, kernel Kernel) {
	checkRegistrationKey("RegisterFallback", key)
	if kernel == nil {
		exceptions.Panicf("Dispatcher.RegisterFallback(%s): nil kernel", key)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	setEntry(&d.fallbacks, "fallback", key, kernelEntry{kernel: kernel, priority: priority})
}

// RegisterFallbackFallthrough makes all operators that don't have their own kernel for the key skip it.
func (d *Dispatcher) RegisterFallbackFallthrough(key DispatchKey) {
	checkRegistrationKey("RegisterFallbackFallthrough", key)
	d.mu.Lock()
	defer d.mu.Unlock()
	setEntry(&d.fallbacks, "fallback", key, kernelEntry{priority: PriorityGeneric, isFallthrough: true})
}

// KeysFor returns the dispatch keys used to call an operator with the given inputs in ctx:
// the union of the keys of the inputs that implement Operand, plus the included keys (of ctx and
// of the configuration), minus the excluded keys (of ctx and of the configuration).
func (d *Dispatcher) KeysFor(ctx context.Context, inputs ...any) Set {
	var keys Set
	for _, input := range inputs {
		if operand, ok := input.(Operand); ok {
			keys = keys.Union(operand.DispatchKeys())
		}
	}
	included, excluded := LocalKeys(ctx)
	local := config.Config{Include: included, Exclude: excluded}
	return local.Merge(d.config).Apply(keys)
}

// Call the operator op with the given inputs, dispatching on the keys returned by KeysFor.
func (d *Dispatcher) Call(ctx context.Context, op string, inputs ...any) (any, error) {
	return d.Redispatch(ctx, op, d.KeysFor(ctx, inputs...), inputs...)
}

// Redispatch calls the operator op with the given keys, without collecting keys from the inputs or
// the context. It is used by kernels to pass the call on to the next key, after removing their own.
func (d *Dispatcher) Redispatch(ctx context.Context, op string, keys Set, inputs ...any) (any, error) {
	key, entry, selectedKeys, err := d.lookup(op, keys)
	if err != nil {
		return nil, err
	}
	if klog.V(2).Enabled() {
		klog.Infof("dispatcher: operator %q with %s dispatched to %s", op, keys, key)
	}
	return entry.kernel(ctx, selectedKeys, inputs)
}

// Resolve returns the dispatch key whose kernel would be called for operator op with the given keys.
// Fallthrough keys are skipped.
func (d *Dispatcher) Resolve(op string, keys Set) (DispatchKey, error) {
	key, _, _, err := d.lookup(op, keys)
	return key, err
}

// lookup selects the kernel entry for operator op, and returns its key and the keys remaining
// after skipping fallthroughs.
func (d *Dispatcher) lookup(op string, keys Set) (DispatchKey, kernelEntry, Set, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	table, found := d.operators[op]
	if !found {
		return Undefined, kernelEntry{}, keys, errors.Wrapf(ErrUnknownOperator, "operator %q", op)
	}
	remaining := keys
	for {
		key := remaining.HighestPriority()
		if key == Undefined {
			return Undefined, kernelEntry{}, remaining, errors.Wrapf(ErrNoKernel,
				"operator %q has no kernel for any of the dispatch keys %s", op, keys)
		}
		entry := table[key]
		if !entry.registered {
			entry = d.fallbacks[key]
		}
		switch {
		case !entry.registered:
			return key, kernelEntry{}, remaining, errors.Wrapf(ErrNoKernel,
				"operator %q has no kernel or fallback for dispatch key %s (dispatch keys %s)", op, key, keys)
		case entry.isFallthrough:
			remaining = remaining.Remove(key)
			continue
		}
		return key, entry, remaining, nil
	}
}

// OperatorInfo describes the registrations of one operator.
type OperatorInfo struct {
	Name string

	// Kernels has the keys for which the operator has its own kernel.
	Kernels Set

	// Fallthroughs has the keys the operator skips.
	Fallthroughs Set
}

// Operators returns the registrations of all operators, sorted by name.
func (d *Dispatcher) Operators() []OperatorInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := slices.Sorted(maps.Keys(d.operators))
	infos := make([]OperatorInfo, 0, len(names))
	for _, name := range names {
		kernels, fallthroughs := d.operators[name].keys()
		infos = append(infos, OperatorInfo{Name: name, Kernels: kernels, Fallthroughs: fallthroughs})
	}
	return infos
}

// Fallbacks returns the keys that have a fallback kernel, and the keys that fall through by default.
func (d *Dispatcher) Fallbacks() (kernels, fallthroughs Set) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fallbacks.keys()
}

func (table *kernelTable) keys() (kernels, fallthroughs Set) {
	for key := Undefined + 1; key < NumDispatchKeys; key++ {
		entry := table[key]
		switch {
		case !entry.registered:
		case entry.isFallthrough:
			fallthroughs = fallthroughs.Add(key)
		default:
			kernels = kernels.Add(key)
		}
	}
	return
}
