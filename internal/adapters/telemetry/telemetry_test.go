package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/wl/internal/adapters/telemetry"
	"go.trai.ch/wl/internal/core/ports"
)

func newProvider(t *testing.T, processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	t.Helper()
	opts := []sdktrace.TracerProviderOption{sdktrace.WithSampler(sdktrace.AlwaysSample())}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracerFrom(newProvider(t, sr), "test")

	_, span := tracer.Start(t.Context(), "step load",
		ports.WithAttribute("step", "load"),
		ports.WithAttribute("processes", 2),
	)
	span.SetAttribute("pids", []int{10, 11})
	span.SetAttribute("exit_codes", []string{"0", "signal"})
	span.SetAttribute("duration", 1500*time.Millisecond)
	n, err := span.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "load", attrs["step"].AsString())
	assert.Equal(t, int64(2), attrs["processes"].AsInt64())
	assert.Equal(t, []int64{10, 11}, attrs["pids"].AsInt64Slice())
	assert.Equal(t, []string{"0", "signal"}, attrs["exit_codes"].AsStringSlice())
	assert.Equal(t, "1.5s", attrs["duration"].AsString())

	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "log", ended[0].Events()[0].Name)
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracerFrom(newProvider(t, sr), "test")

	_, span := tracer.Start(t.Context(), "step broken")
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := newProvider(t, sr)
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	// No active span: nothing to annotate.
	tracer.EmitPlan(t.Context(), []string{"a"})

	ctx, root := tracer.Start(t.Context(), "generate")
	tracer.EmitPlan(ctx, []string{"a", "b"})
	root.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "plan_emitted", ended[0].Events()[0].Name)
}

func TestSummary_Render(t *testing.T) {
	summary := telemetry.NewSummary()
	tr := newProvider(t, summary).Tracer("test")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(ms int) trace.SpanStartEventOption { return trace.WithTimestamp(base.Add(time.Duration(ms) * time.Millisecond)) }
	end := func(ms int) trace.SpanEndOption { return trace.WithTimestamp(base.Add(time.Duration(ms) * time.Millisecond)) }

	ctx, root := tr.Start(context.Background(), "generate", at(0))

	_, second := tr.Start(ctx, "step probe", at(20))
	second.SetStatus(codes.Error, `dependency failed: "load"`)
	second.End(end(25))

	_, first := tr.Start(ctx, "step load", at(5))
	first.End(end(1505))

	root.End(end(1600))

	var buf bytes.Buffer
	require.NoError(t, summary.Render(&buf))

	g := goldie.New(t)
	g.Assert(t, "summary", buf.Bytes())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "noop", ports.WithAttribute("k", "v"))
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("k", 1)
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	span.End()
	tracer.EmitPlan(ctx, nil)
}
