package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rbrander/lawn-mower/internal/lawn"
)

// RunTracer is a lawn.Observer that records one span per mowing run.
// The span opens when a run starts, gets a "won" event when the last tile
// is mowed and ends when the win has faded out. It is safe to call End
// from another goroutine than the one driving the session.
type RunTracer struct {
	mu     sync.Mutex
	ctx    context.Context
	tracer trace.Tracer
	player string
	span   trace.Span
}

// NewRunTracer creates an observer that starts spans under ctx.
func NewRunTracer(ctx context.Context, tracer trace.Tracer, player string) *RunTracer {
	return &RunTracer{ctx: ctx, tracer: tracer, player: player}
}

// OnTransition implements lawn.Observer.
func (rt *RunTracer) OnTransition(_, to lawn.State, snap lawn.Snapshot) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	switch to.Phase {
	case lawn.PhaseActive:
		rt.end()
		_, rt.span = rt.tracer.Start(rt.ctx, "lawn.run",
			trace.WithAttributes(
				attribute.String("player", rt.player),
				attribute.Int("lawn.width", snap.Width),
				attribute.Int("lawn.height", snap.Height),
				attribute.Int("run.start_tick", int(snap.Tick)),
			),
		)
	case lawn.PhaseWon:
		if rt.span == nil {
			return
		}
		rt.span.AddEvent("won", trace.WithAttributes(
			attribute.Int("run.won_tick", int(snap.WonAt)),
			attribute.Int("mower.money", snap.Money),
			attribute.Int("lawn.mowed", snap.Visited),
		))
	case lawn.PhaseFadedOut:
		rt.end()
	}
}

// End closes the open span, if any. Call it when the session ends so an
// abandoned run is still exported.
func (rt *RunTracer) End() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.end()
}

func (rt *RunTracer) end() {
	if rt.span != nil {
		rt.span.End()
		rt.span = nil
	}
}
