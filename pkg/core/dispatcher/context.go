// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatcher

import (
	"context"

	. "github.com/gomlx/dispatch/pkg/core/dispatchkeys"
)

type localKeysCtxKey struct{}

// localKeys are the keys included and excluded for the calls made with a context.
type localKeys struct {
	included, excluded Set
}

func localKeysFrom(ctx context.Context) localKeys {
	if ctx == nil {
		return localKeys{}
	}
	local, _ := ctx.Value(localKeysCtxKey{}).(localKeys)
	return local
}

// WithIncludedKeys returns a context where keys are added to the dispatch keys of every call.
//
// It accumulates with the keys included by parent contexts. Excluded keys take precedence.
func WithIncludedKeys(ctx context.Context, keys Set) context.Context {
	local := localKeysFrom(ctx)
	local.included = local.included.Union(keys)
	return context.WithValue(ctx, localKeysCtxKey{}, local)
}

// WithExcludedKeys returns a context where keys are removed from the dispatch keys of every call.
// E.g.: excluding Autograd while computing the gradients themselves.
//
// It accumulates with the keys excluded by parent contexts.
func WithExcludedKeys(ctx context.Context, keys Set) context.Context {
	local := localKeysFrom(ctx)
	local.excluded = local.excluded.Union(keys)
	return context.WithValue(ctx, localKeysCtxKey{}, local)
}

// LocalKeys returns the keys included and excluded by ctx.
func LocalKeys(ctx context.Context) (included, excluded Set) {
	local := localKeysFrom(ctx)
	return local.included, local.excluded
}
