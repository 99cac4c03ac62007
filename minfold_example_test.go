// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package minfold_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/z5labs/minfold"
	"github.com/z5labs/minfold/config"
	"github.com/z5labs/minfold/present"
	"github.com/z5labs/minfold/reduce"
	"github.com/z5labs/minfold/source"
)

type Config struct {
	Values []int32 `config:"values"`
}

func Example() {
	builder := minfold.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (minfold.App, error) {
		return minfold.AppFunc(func(ctx context.Context) error {
			xs, err := source.Static(cfg.Values...).Read(ctx)
			if err != nil {
				return err
			}
			return present.Stdout().Min(reduce.MinSlice(xs))
		}), nil
	})

	err := minfold.Run(
		context.Background(),
		builder,
		config.FromYaml(strings.NewReader("values: [4, 8, 9, 3, 2, 4]")),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	// Output: This is the number: 2
}
