package progrock

import (
	"fmt"

	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.Span = (*Span)(nil)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex      *progrock.VertexRecorder
	recordedErr error
}

// Write streams progress output onto the vertex.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError marks the span as failed once End is called.
func (s *Span) RecordError(err error) {
	s.recordedErr = err
}

// SetAttribute records a key-value pair on the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// Cached marks the vertex as a cache hit.
func (s *Span) Cached() {
	s.vertex.Cached()
}

// End completes the vertex, failing it if an error was recorded.
func (s *Span) End() {
	s.vertex.Done(s.recordedErr)
}
