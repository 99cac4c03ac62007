// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/z5labs/minfold"
	"github.com/z5labs/minfold/internal/try"
)

// Recover wraps the given [minfold.App] with panic recovery. A recovered
// panic is returned as a [try.PanicError].
func Recover(app minfold.App) minfold.App {
	return minfold.AppFunc(func(ctx context.Context) (err error) {
		defer try.Recover(&err)

		return app.Run(ctx)
	})
}

// RecoverBuilder wraps the given [minfold.AppBuilder] with panic recovery.
func RecoverBuilder[T any](builder minfold.AppBuilder[T]) minfold.AppBuilder[T] {
	return minfold.AppBuilderFunc[T](func(ctx context.Context, cfg T) (_ minfold.App, err error) {
		defer try.Recover(&err)

		return builder.Build(ctx, cfg)
	})
}

// WithSignalNotifications wraps a given [minfold.App] in an implementation
// that cancels the [context.Context] that's passed to app.Run if an [os.Signal]
// is received by the running process.
func WithSignalNotifications(app minfold.App, signals ...os.Signal) minfold.App {
	return minfold.AppFunc(func(ctx context.Context) error {
		sigCtx, cancel := signal.NotifyContext(ctx, signals...)
		defer cancel()

		return app.Run(sigCtx)
	})
}

// LifecycleHook represents functionality that needs to be performed
// at a specific "time" relative to the execution of [minfold.App.Run].
type LifecycleHook interface {
	Run(context.Context) error
}

// LifecycleHookFunc is a convenient helper type for implementing a [LifecycleHook]
// from just a regular func.
type LifecycleHookFunc func(context.Context) error

// Run implements the [LifecycleHook] interface.
func (f LifecycleHookFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Lifecycle
type Lifecycle struct {
	// PostRun is always executed regardless if the underlying [minfold.App]
	// returns an error or panics.
	PostRun LifecycleHook
}

// WithLifecycleHooks wraps a given [minfold.App] in an implementation
// that runs [LifecycleHook]s around the execution of app.Run.
func WithLifecycleHooks(app minfold.App, lifecycle Lifecycle) minfold.App {
	return minfold.AppFunc(func(ctx context.Context) (err error) {
		defer runPostRunHook(ctx, lifecycle.PostRun, &err)

		return app.Run(ctx)
	})
}

func runPostRunHook(ctx context.Context, hook LifecycleHook, err *error) {
	if hook == nil {
		return
	}

	// the run context may already be cancelled by a signal
	hookErr := hook.Run(context.WithoutCancel(ctx))

	// errors.Join will not return an error if both
	// *err and hookErr are nil.
	*err = errors.Join(*err, hookErr)
}
