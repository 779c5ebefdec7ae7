package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	exporterConnectTimeout = 3 * time.Second
	metricExportInterval   = 5 * time.Second
)

// OtlpConnConfig points one signal at a collector. Grpc wins when both
// endpoints are given, leaving both empty disables exporting the signal.
type OtlpConnConfig struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

func (c OtlpConnConfig) empty() bool {
	return c.GrpcEndpoint == "" && c.HttpEndpoint == ""
}

func (c OtlpConnConfig) transport() (string, string) {
	if c.GrpcEndpoint != "" {
		return "grpc", c.GrpcEndpoint
	}
	return "http", c.HttpEndpoint
}

type OtlpConfig struct {
	Traces  OtlpConnConfig `json:"traces"`
	Metrics OtlpConnConfig `json:"metrics"`
}

// Config is read from telemetry.json5 or from the "telemetry" key of a
// binary's own config.
type Config struct {
	Otlp OtlpConfig `json:"otlp"`
}

type exporterFactory[T any] struct {
	grpc func(ctx context.Context, conn OtlpConnConfig) (T, error)
	http func(ctx context.Context, conn OtlpConnConfig) (T, error)
}

func (f exporterFactory[T]) create(ctx context.Context, signal string, conn OtlpConnConfig) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, exporterConnectTimeout)
	defer cancel()

	kind, endpoint := conn.transport()
	slog.Info(
		"otlp exporter initialized",
		"signal", signal,
		"type", kind,
		"endpoint", endpoint,
		"headers", len(conn.Headers) > 0,
	)
	if kind == "grpc" {
		return f.grpc(ctx, conn)
	}
	return f.http(ctx, conn)
}

var spanExporters = exporterFactory[trace.SpanExporter]{
	grpc: func(ctx context.Context, conn OtlpConnConfig) (trace.SpanExporter, error) {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(conn.GrpcEndpoint),
			otlptracegrpc.WithHeaders(conn.Headers),
		)
	},
	http: func(ctx context.Context, conn OtlpConnConfig) (trace.SpanExporter, error) {
		return otlptracehttp.New(
			ctx,
			otlptracehttp.WithEndpointURL(conn.HttpEndpoint),
			otlptracehttp.WithHeaders(conn.Headers),
		)
	},
}

var metricExporters = exporterFactory[metric.Exporter]{
	grpc: func(ctx context.Context, conn OtlpConnConfig) (metric.Exporter, error) {
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(conn.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(conn.Headers),
		)
	},
	http: func(ctx context.Context, conn OtlpConnConfig) (metric.Exporter, error) {
		return otlpmetrichttp.New(
			ctx,
			otlpmetrichttp.WithEndpointURL(conn.HttpEndpoint),
			otlpmetrichttp.WithHeaders(conn.Headers),
		)
	},
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// spans are still recorded without an exporter so that tests can rely on
// a working provider
func newTraceProvider(ctx context.Context, r *resource.Resource, config Config) (*trace.TracerProvider, error) {
	options := []trace.TracerProviderOption{trace.WithResource(r)}
	if !config.Otlp.Traces.empty() {
		exporter, err := spanExporters.create(ctx, "traces", config.Otlp.Traces)
		if err != nil {
			return nil, err
		}
		options = append(options, trace.WithBatcher(exporter))
	}
	return trace.NewTracerProvider(options...), nil
}

func newMetricProvider(ctx context.Context, r *resource.Resource, config Config) (*metric.MeterProvider, error) {
	options := []metric.Option{metric.WithResource(r)}
	if !config.Otlp.Metrics.empty() {
		exporter, err := metricExporters.create(ctx, "metrics", config.Otlp.Metrics)
		if err != nil {
			return nil, err
		}
		reader := metric.NewPeriodicReader(exporter, metric.WithInterval(metricExportInterval))
		options = append(options, metric.WithReader(reader))
	}
	return metric.NewMeterProvider(options...), nil
}
