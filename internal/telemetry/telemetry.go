// Package telemetry provides structured logging and OpenTelemetry tracing
// for Ardentia.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "ardentia"
	serviceVersion = "0.1.0"
)

// SetupOption configures Setup.
type SetupOption func(*setupOptions)

type setupOptions struct {
	exporter sdktrace.SpanExporter
	sync     bool
}

// WithExporter replaces the OTLP HTTP exporter. Spans are exported
// synchronously so tests observe them without waiting on a batcher.
func WithExporter(exp sdktrace.SpanExporter) SetupOption {
	return func(o *setupOptions) {
		o.exporter = exp
		o.sync = true
	}
}

// Setup installs a global tracer provider. By default spans go to the OTLP
// HTTP exporter, which reads OTEL_EXPORTER_OTLP_ENDPOINT and
// OTEL_EXPORTER_OTLP_HEADERS (see HoneycombConfig.Apply).
//
// sessionID is attached to the resource so every span of one process can be
// found together. The returned shutdown flushes pending spans.
func Setup(ctx context.Context, sessionID string, opts ...SetupOption) (shutdown func(context.Context) error, err error) {
	var o setupOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.exporter == nil {
		o.exporter, err = otlptracehttp.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating OTLP exporter: %w", err)
		}
	}

	// Built without resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx, resource.WithAttributes(resourceAttributes(sessionID)...))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	processor := sdktrace.WithBatcher(o.exporter)
	if o.sync {
		processor = sdktrace.WithSyncer(o.exporter)
	}
	tp := sdktrace.NewTracerProvider(processor, sdktrace.WithResource(res))

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func resourceAttributes(sessionID string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("service.instance.id", sessionID),
		attribute.String("telemetry.sdk.language", "go"),
		attribute.String("telemetry.sdk.name", "opentelemetry"),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	}
}

// Tracer returns a named tracer for one component, e.g. "world".
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
