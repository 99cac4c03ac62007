// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/z5labs/minfold/internal/slogfield"
	"github.com/z5labs/minfold/internal/watch"
	"github.com/z5labs/minfold/optional"
	"github.com/z5labs/minfold/present"
	"github.com/z5labs/minfold/reduce"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Reducer runs every configured [Job] in order, writing each job's
// results before starting the next.
type Reducer struct {
	log    *slog.Logger
	tracer trace.Tracer
	out    io.Writer
	jobs   []Job

	watch    bool
	debounce time.Duration
}

// Run implements the [minfold.App] interface.
func (r *Reducer) Run(ctx context.Context) error {
	err := r.runJobs(ctx)
	if err != nil || !r.watch {
		return err
	}

	var paths []string
	for _, job := range r.jobs {
		if job.Path != "" {
			paths = append(paths, job.Path)
		}
	}
	if len(paths) == 0 {
		r.log.WarnContext(ctx, "watch enabled but no job reads from a file")
		return nil
	}

	r.log.InfoContext(
		ctx,
		"watching job inputs",
		slogfield.Strings("paths", paths),
		slogfield.Duration("debounce", r.debounce),
	)
	return watch.Files(ctx, watch.Config{
		Paths:    paths,
		Debounce: r.debounce,
		Log:      r.log,
	}, r.runJobs)
}

func (r *Reducer) runJobs(ctx context.Context) error {
	for _, job := range r.jobs {
		err := r.runJob(ctx, job)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Reducer) runJob(ctx context.Context, job Job) (err error) {
	spanCtx, span := r.tracer.Start(ctx, "Reducer.runJob", trace.WithAttributes(
		attribute.String("minfold.job", job.Name),
	))
	defer span.End()
	defer func() {
		if err == nil {
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.ErrorContext(spanCtx, "job failed", slogfield.String("job", job.Name), slogfield.Error(err))
	}()

	xs, err := job.Source.Read(spanCtx)
	if err != nil {
		return JobError{Name: job.Name, Cause: err}
	}

	minimum := reduce.MinSlice(xs)
	span.SetAttributes(
		attribute.Int("minfold.count", len(xs)),
		attribute.Bool("minfold.present", optional.IsPresent(minimum)),
	)
	if n, ok := optional.Get(minimum); ok {
		span.SetAttributes(attribute.Int64("minfold.min", int64(n)))
	}
	r.log.DebugContext(
		spanCtx,
		"reduced job input",
		slogfield.String("job", job.Name),
		slogfield.Int("count", len(xs)),
		slogfield.Int32s("values", xs),
		slogfield.Optional("min", minimum),
	)

	out := present.NewPrinter(r.out, present.WithStyle(job.Style))
	err = out.Min(minimum)
	if err != nil {
		return JobError{Name: job.Name, Cause: err}
	}

	if job.Sum {
		sum := reduce.SumSlice(xs)
		r.log.DebugContext(spanCtx, "summed job input", slogfield.String("job", job.Name), slogfield.Int64("sum", sum))

		err = out.Sum(sum)
		if err != nil {
			return JobError{Name: job.Name, Cause: err}
		}
	}

	if job.Print {
		err = out.Vector(xs)
		if err != nil {
			return JobError{Name: job.Name, Cause: err}
		}
	}
	return nil
}

func newReducer(cfg Config, log *slog.Logger, out io.Writer, jobs []Job) *Reducer {
	return &Reducer{
		log:      log,
		tracer:   otel.Tracer("github.com/z5labs/minfold/internal/app"),
		out:      out,
		jobs:     jobs,
		watch:    cfg.Watch.Enabled,
		debounce: cfg.Watch.Debounce,
	}
}
