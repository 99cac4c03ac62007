// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package telemetry initializes the OpenTelemetry tracer provider used to
// trace reduction jobs.
package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config
type Config struct {
	ServiceName string `config:"serviceName"`

	Trace struct {
		Enabled bool `config:"enabled"`
	} `config:"trace"`
}

// TracerProvider returns a noop provider unless tracing is enabled, in
// which case spans are exported as JSON to out.
func TracerProvider(ctx context.Context, cfg Config, out io.Writer) (trace.TracerProvider, error) {
	if !cfg.Trace.Enabled {
		return noop.NewTracerProvider(), nil
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(out),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return tp, nil
}

// Init builds the tracer provider described by cfg and registers it globally.
func Init(ctx context.Context, cfg Config, out io.Writer) error {
	tp, err := TracerProvider(ctx, cfg, out)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(tp)
	return nil
}

// Shutdown flushes and stops the global tracer provider, if it supports it.
func Shutdown(ctx context.Context) error {
	tp := otel.GetTracerProvider()
	stp, ok := tp.(interface {
		Shutdown(context.Context) error
	})
	if !ok {
		return nil
	}
	return stp.Shutdown(ctx)
}
