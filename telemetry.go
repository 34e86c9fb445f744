package vigenere

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/rbaliyan/config-vigenere"

const (
	opEncode = "encode"
	opDecode = "decode"
)

type codecOptions struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

func defaultCodecOptions() codecOptions {
	return codecOptions{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
}

// WithTracerProvider sets the tracer provider used for Encode and Decode spans.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) CodecOption {
	return func(o *codecOptions) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// WithMeterProvider sets the meter provider used for the operation counter.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) CodecOption {
	return func(o *codecOptions) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// telemetry records a span and a counter increment per codec operation.
type telemetry struct {
	tracer trace.Tracer
	ops    metric.Int64Counter
	codec  attribute.KeyValue
}

func newTelemetry(o codecOptions, codecName string) (*telemetry, error) {
	meter := o.meterProvider.Meter(instrumentationName)
	ops, err := meter.Int64Counter("vigenere.codec.operations",
		metric.WithDescription("Number of Vigenère codec encode and decode operations."),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}
	return &telemetry{
		tracer: o.tracerProvider.Tracer(instrumentationName),
		ops:    ops,
		codec:  attribute.String("codec.name", codecName),
	}, nil
}

// start opens the span for op as a child of any span in ctx.
func (t *telemetry) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "vigenere."+op, trace.WithAttributes(t.codec))
}

func (t *telemetry) finish(ctx context.Context, span trace.Span, op string, size int, err error) {
	defer span.End()

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int("payload.size", size))

	t.ops.Add(ctx, 1, metric.WithAttributes(
		t.codec,
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}
