// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/z5labs/minfold"
	"github.com/z5labs/minfold/internal/try"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	t.Run("will return a PanicError", func(t *testing.T) {
		t.Run("if the app panics with a non-error value", func(t *testing.T) {
			app := Recover(minfold.AppFunc(func(ctx context.Context) error {
				panic("hello world")
			}))

			err := app.Run(context.Background())

			var perr try.PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "hello world", perr.Value) {
				return
			}
		})

		t.Run("if the app panics with an error value", func(t *testing.T) {
			panicErr := errors.New("hello world")
			app := Recover(minfold.AppFunc(func(ctx context.Context) error {
				panic(panicErr)
			}))

			err := app.Run(context.Background())
			if !assert.ErrorIs(t, err, panicErr) {
				return
			}
		})
	})
}

func TestRecoverBuilder(t *testing.T) {
	t.Run("will return a PanicError", func(t *testing.T) {
		t.Run("if the builder panics", func(t *testing.T) {
			builder := RecoverBuilder[Config](minfold.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (minfold.App, error) {
				panic("hello world")
			}))

			_, err := builder.Build(context.Background(), Config{})

			var perr try.PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
		})
	})
}

func TestWithSignalNotifications(t *testing.T) {
	t.Run("will propogate context cancellation", func(t *testing.T) {
		t.Run("if the parent context is cancelled", func(t *testing.T) {
			app := WithSignalNotifications(minfold.AppFunc(func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			}))

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := app.Run(ctx)
			if !assert.ErrorIs(t, err, context.Canceled) {
				return
			}
		})
	})
}

func TestWithLifecycleHooks(t *testing.T) {
	t.Run("will return error", func(t *testing.T) {
		t.Run("if the underlying app fails", func(t *testing.T) {
			baseErr := errors.New("failed to run app")
			base := minfold.AppFunc(func(ctx context.Context) error {
				return baseErr
			})

			app := WithLifecycleHooks(base, Lifecycle{})

			err := app.Run(context.Background())
			if !assert.ErrorIs(t, err, baseErr) {
				return
			}
		})

		t.Run("if the Lifecycle.PostRun fails", func(t *testing.T) {
			postRunErr := errors.New("failed to post run")
			base := minfold.AppFunc(func(ctx context.Context) error {
				return nil
			})

			app := WithLifecycleHooks(base, Lifecycle{
				PostRun: LifecycleHookFunc(func(ctx context.Context) error {
					return postRunErr
				}),
			})

			err := app.Run(context.Background())
			if !assert.ErrorIs(t, err, postRunErr) {
				return
			}
		})
	})

	t.Run("will run Lifecycle.PostRun", func(t *testing.T) {
		t.Run("if the underlying app panics", func(t *testing.T) {
			var called bool
			base := Recover(minfold.AppFunc(func(ctx context.Context) error {
				panic("hello world")
			}))

			app := WithLifecycleHooks(base, Lifecycle{
				PostRun: LifecycleHookFunc(func(ctx context.Context) error {
					called = true
					return ctx.Err()
				}),
			})

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := app.Run(ctx)

			var perr try.PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.True(t, called) {
				return
			}
		})
	})
}
