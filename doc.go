// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package minfold reduces finite sequences of int32 values to their
// minimum and presents the result as text.
//
// The reduction itself lives in [github.com/z5labs/minfold/reduce] and
// produces an [github.com/z5labs/minfold/optional.Int], which is either
// Absent (the sequence was empty) or Present with the minimum value.
//
// This package provides the small runtime used to drive reductions from
// configuration:
//
//   - App: anything which can be run with a context.Context
//   - AppBuilder[T]: builds an App from a config value of type T
//   - Run: reads config sources, decodes them into T, builds and runs the App
//
// # Basic Usage
//
//	builder := minfold.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (minfold.App, error) {
//	    return minfold.AppFunc(func(ctx context.Context) error {
//	        xs, err := source.Static(cfg.Values...).Read(ctx)
//	        if err != nil {
//	            return err
//	        }
//	        return present.Stdout().Min(reduce.MinSlice(xs))
//	    }), nil
//	})
//
//	err := minfold.Run(ctx, builder, config.FromYaml(f))
package minfold
