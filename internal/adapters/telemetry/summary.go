package telemetry

import (
	"cmp"
	"context"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var _ sdktrace.SpanProcessor = (*Summary)(nil)

type spanRecord struct {
	id       string
	parentID string
	name     string
	start    time.Time
	end      time.Time
	err      string
}

// Summary implements sdktrace.SpanProcessor and collects ended spans for a
// per-run timing report.
type Summary struct {
	mu    sync.Mutex
	spans []spanRecord
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{}
}

// OnStart does nothing. Spans are recorded once they end.
func (s *Summary) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span.
func (s *Summary) OnEnd(span sdktrace.ReadOnlySpan) {
	sc := span.SpanContext()
	if !sc.IsValid() {
		return
	}

	rec := spanRecord{
		id:    sc.SpanID().String(),
		name:  span.Name(),
		start: span.StartTime(),
		end:   span.EndTime(),
	}
	if parent := span.Parent(); parent.IsValid() {
		rec.parentID = parent.SpanID().String()
	}
	if span.Status().Code == codes.Error {
		rec.err = span.Status().Description
		if rec.err == "" {
			rec.err = "failed"
		}
	}

	s.mu.Lock()
	s.spans = append(s.spans, rec)
	s.mu.Unlock()
}

// ForceFlush does nothing.
func (s *Summary) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (s *Summary) Shutdown(_ context.Context) error {
	return nil
}

// Render writes one line per span, children indented under their parent and
// siblings ordered by start time:
//
//	trace: <name> duration_ms=<n> status=<ok|error> [error="<msg>"]
func (s *Summary) Render(w io.Writer) error {
	s.mu.Lock()
	spans := slices.Clone(s.spans)
	s.mu.Unlock()

	slices.SortStableFunc(spans, func(a, b spanRecord) int {
		return cmp.Or(a.start.Compare(b.start), cmp.Compare(a.name, b.name))
	})

	known := make(map[string]bool, len(spans))
	children := make(map[string][]spanRecord, len(spans))
	for _, rec := range spans {
		known[rec.id] = true
	}
	var roots []spanRecord
	for _, rec := range spans {
		if rec.parentID == "" || !known[rec.parentID] {
			roots = append(roots, rec)
			continue
		}
		children[rec.parentID] = append(children[rec.parentID], rec)
	}

	var b strings.Builder
	var walk func(rec spanRecord, depth int)
	walk = func(rec spanRecord, depth int) {
		b.WriteString("trace: ")
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(rec.name)
		b.WriteString(" duration_ms=")
		b.WriteString(strconv.FormatInt(rec.end.Sub(rec.start).Milliseconds(), 10))
		if rec.err != "" {
			b.WriteString(" status=error error=")
			b.WriteString(strconv.Quote(rec.err))
		} else {
			b.WriteString(" status=ok")
		}
		b.WriteString("\n")
		for _, child := range children[rec.id] {
			walk(child, depth+1)
		}
	}
	for _, rec := range roots {
		walk(rec, 0)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
