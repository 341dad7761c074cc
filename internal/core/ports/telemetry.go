package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans around unit resolution.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals that a set of units is about to be resolved.
	EmitPlan(ctx context.Context, unitNames []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span. A prior RecordError marks it failed.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
	// Cached marks the span as skipped because the previous tag still holds.
	Cached()
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Internal reports that the span is bookkeeping rather than unit work.
	Internal bool
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithInternal marks a span as internal bookkeeping.
func WithInternal() SpanOption {
	return func(c *SpanConfig) {
		c.Internal = true
	}
}
