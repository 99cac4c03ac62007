// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package app builds the minfold application from its [Config].
package app

import (
	"context"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/z5labs/minfold"
	"github.com/z5labs/minfold/internal/otelslog"
	"github.com/z5labs/minfold/internal/slogfield"
	"github.com/z5labs/minfold/internal/telemetry"
)

// Options are the process level dependencies of the application.
type Options struct {
	// Stdout receives the presentation lines. Defaults to [os.Stdout].
	Stdout io.Writer

	// Stderr receives logs and exported spans. Defaults to [os.Stderr].
	Stderr io.Writer

	// FS resolves job files. When nil, job files are read from the OS
	// and can be watched for changes.
	FS fs.FS

	// Files are read as additional jobs after the configured ones.
	Files []string
}

// Builder returns the [minfold.AppBuilder] for the minfold application.
func Builder(opts Options) minfold.AppBuilder[Config] {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return RecoverBuilder[Config](minfold.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (minfold.App, error) {
		log := otelslog.NewJSON(opts.Stderr, cfg.Logging.Level)

		jobs, err := buildJobs(cfg, opts.FS, opts.Files)
		if err != nil {
			log.ErrorContext(ctx, "failed to build jobs", slogfield.Error(err))
			return nil, err
		}

		err = telemetry.Init(ctx, cfg.OTel, opts.Stderr)
		if err != nil {
			log.ErrorContext(ctx, "failed to initialize tracing", slogfield.Error(err))
			return nil, err
		}

		var app minfold.App = newReducer(cfg, log, opts.Stdout, jobs)
		app = Recover(app)
		app = WithSignalNotifications(app, os.Interrupt, syscall.SIGTERM)
		app = WithLifecycleHooks(app, Lifecycle{
			PostRun: LifecycleHookFunc(telemetry.Shutdown),
		})
		return app, nil
	}))
}
