// Package telemetry traces pipeline stages with OpenTelemetry and surfaces
// stage timings through the logger.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"go.webdroid.dev/webdroid/internal/core/ports"
)

const instrumentationName = "go.webdroid.dev/webdroid"

// StageTracer implements ports.Tracer on an in-process OTel trace provider.
// Completed spans are reported to the logger instead of an external
// collector, so stage timings show up in normal build output.
type StageTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewStageTracer creates a tracer whose spans are logged on completion.
func NewStageTracer(logger ports.Logger) *StageTracer {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(&logProcessor{logger: logger}),
	)
	return &StageTracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

var _ ports.Tracer = (*StageTracer)(nil)

// Start begins a span with the given name.
func (t *StageTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, otelSpan := t.tracer.Start(ctx, name)
	return ctx, &span{span: otelSpan}
}

// Shutdown flushes and releases tracer resources.
func (t *StageTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// span adapts an OTel span to ports.Span.
type span struct {
	span trace.Span
}

func (s *span) End() {
	s.span.End()
}

func (s *span) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *span) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// logProcessor forwards finished spans to the logger.
type logProcessor struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*logProcessor)(nil)

func (p *logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	duration := s.EndTime().Sub(s.StartTime()).Round(1e6)
	if s.Status().Code == codes.Error {
		p.logger.Warn(fmt.Sprintf("%s failed after %s", s.Name(), duration))
		return
	}
	p.logger.Info(fmt.Sprintf("%s completed in %s", s.Name(), duration))
}

func (p *logProcessor) Shutdown(context.Context) error   { return nil }
func (p *logProcessor) ForceFlush(context.Context) error { return nil }
