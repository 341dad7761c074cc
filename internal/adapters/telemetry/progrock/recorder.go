// Package progrock provides the Progrock implementation of the tracer port.
package progrock

import (
	"context"
	"strings"

	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer on top of a progrock tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a vertex for the named piece of work.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var vertexOpts []progrock.VertexOpt
	if cfg.Internal {
		vertexOpts = append(vertexOpts, progrock.Internal())
	}

	vertex := r.rec.Vertex(digest.FromString(name), name, vertexOpts...)
	return ctx, &Span{vertex: vertex}
}

// EmitPlan records the set of units about to be resolved as an internal vertex.
func (r *Recorder) EmitPlan(_ context.Context, unitNames []string) {
	name := "plan: " + strings.Join(unitNames, ", ")
	vertex := r.rec.Vertex(digest.FromString(name), name, progrock.Internal())
	vertex.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
