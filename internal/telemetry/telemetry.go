// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package telemetry wires an optional OpenTelemetry trace exporter for a
// single generator run. Most invocations run from a build tree and don't
// want trace JSON interleaved with build output, so the exporter is
// installed only when explicitly requested.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ashgti/diskapigen/internal/version"
)

// Setup installs a tracer provider and returns a shutdown function that
// must be called before the process exits to flush pending spans. When
// enabled is false, Setup installs a no-op provider and returns a no-op
// shutdown.
func Setup(ctx context.Context, enabled bool) (shutdown func(context.Context) error, err error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}

	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("telemetry: create stdout exporter: %w", err)
	}

	res, err := version.GetInfo().Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("telemetry: build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
