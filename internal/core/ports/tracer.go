package ports

import "context"

// Span is one traced pipeline stage.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Span interface {
	// End completes the span.
	End()

	// RecordError attaches an error to the span.
	RecordError(err error)

	// SetAttribute sets a key/value attribute on the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around pipeline stages.
type Tracer interface {
	// Start begins a span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Shutdown flushes and releases tracer resources.
	Shutdown(ctx context.Context) error
}
