// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatcher_test

import (
	"context"
	"fmt"

	"github.com/gomlx/dispatch/pkg/core/dispatcher"
	"github.com/gomlx/dispatch/pkg/core/dispatcher/config"
	"github.com/gomlx/dispatch/pkg/core/dispatchkeys"
)

type tensor struct {
	value float64
	keys  dispatchkeys.Set
}

func (t tensor) DispatchKeys() dispatchkeys.Set { return t.keys }

func Example() {
	d := dispatcher.NewWithConfig(config.Config{})
	d.Register("neg", dispatchkeys.CPU, dispatcher.PriorityGeneric,
		func(_ context.Context, _ dispatchkeys.Set, inputs []any) (any, error) {
			return -inputs[0].(tensor).value, nil
		})
	d.Register("neg", dispatchkeys.Autograd, dispatcher.PriorityGeneric,
		func(ctx context.Context, keys dispatchkeys.Set, inputs []any) (any, error) {
			fmt.Println("recording gradient of neg")
			return d.Redispatch(ctx, "neg", keys.Remove(dispatchkeys.Autograd), inputs...)
		})

	x := tensor{value: 3, keys: dispatchkeys.MakeSet(dispatchkeys.CPU, dispatchkeys.Autograd)}
	y, _ := d.Call(context.Background(), "neg", x)
	fmt.Println(y)

	noGrad := dispatcher.WithExcludedKeys(context.Background(), dispatchkeys.Singleton(dispatchkeys.Autograd))
	y, _ = d.Call(noGrad, "neg", x)
	fmt.Println(y)

	// Output:
	// recording gradient of neg
	// -3
	// -3
}
