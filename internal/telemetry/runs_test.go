package telemetry

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/rbrander/lawn-mower/internal/core"
	"github.com/rbrander/lawn-mower/internal/lawn"
)

func newRecordedTracer(t *testing.T) (*RunTracer, *tracetest.SpanRecorder) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { tp.Shutdown(context.Background()) })

	return NewRunTracer(context.Background(), tp.Tracer("test"), "tester"), sr
}

func TestRunTracerFollowsRun(t *testing.T) {
	rt, sr := newRecordedTracer(t)

	s := lawn.New(lawn.Settings{Width: 2, Height: 1, PayPerTile: 2, MsPerMove: 100, FadeOut: 500})
	s.Observe(rt)

	s.Press(core.KeyRight)
	s.Frame(0)
	if len(sr.Started()) != 1 {
		t.Fatalf("started spans = %d, expected 1 when the run starts", len(sr.Started()))
	}

	s.Frame(100)
	if s.State().Phase != lawn.PhaseWon {
		t.Fatalf("phase = %s, expected won", s.State().Phase)
	}
	if len(sr.Ended()) != 0 {
		t.Error("span should stay open while the win fades")
	}

	s.Frame(600)
	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, expected 1 once faded out", len(ended))
	}

	span := ended[0]
	if span.Name() != "lawn.run" {
		t.Errorf("span name = %q", span.Name())
	}
	events := span.Events()
	if len(events) != 1 || events[0].Name != "won" {
		t.Errorf("span events = %+v, expected a single won event", events)
	}
}

func TestRunTracerEndClosesAbandonedRun(t *testing.T) {
	rt, sr := newRecordedTracer(t)

	s := lawn.New(lawn.Settings{Width: 5, Height: 5, PayPerTile: 2, MsPerMove: 100, FadeOut: 500})
	s.Observe(rt)
	s.Press("x")
	s.Frame(0)

	rt.End()
	rt.End()

	if len(sr.Ended()) != 1 {
		t.Errorf("ended spans = %d, expected the abandoned run once", len(sr.Ended()))
	}
}

func TestRunTracerNoopTracer(t *testing.T) {
	rt := NewRunTracer(context.Background(), NoopTracer(), "tester")

	s := lawn.New(lawn.Settings{Width: 1, Height: 1, PayPerTile: 2, MsPerMove: 100, FadeOut: 500})
	s.Observe(rt)
	s.Press("x")
	s.Frame(0)
	s.Frame(100)
	rt.End()

	if s.State().Phase != lawn.PhaseWon {
		t.Errorf("phase = %s, a disabled tracer must not change play", s.State().Phase)
	}
}

func TestTracerNotNil(t *testing.T) {
	if Tracer("test") == nil {
		t.Error("Tracer() returned nil")
	}
}
