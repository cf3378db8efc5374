package lawn

import (
	"sort"

	"github.com/rbrander/lawn-mower/internal/core"
)

// Event is a deferred state change processed at the start of a frame.
type Event int

const (
	// EventFadeOut ends the win fade and stops the run.
	EventFadeOut Event = iota + 1
)

func (e Event) String() string {
	switch e {
	case EventFadeOut:
		return "fade_out"
	default:
		return "unknown"
	}
}

type scheduled struct {
	at  core.Tick
	seq uint64
	ev  Event
}

// Schedule is a queue of events keyed by the tick they become due.
// Events due at the same tick fire in the order they were armed.
// Armed events cannot be cancelled.
type Schedule struct {
	queue []scheduled
	seq   uint64
}

// Arm queues ev to fire at the first frame whose tick is >= at.
func (s *Schedule) Arm(at core.Tick, ev Event) {
	s.seq++
	s.queue = append(s.queue, scheduled{at: at, seq: s.seq, ev: ev})
	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].at != s.queue[j].at {
			return s.queue[i].at < s.queue[j].at
		}
		return s.queue[i].seq < s.queue[j].seq
	})
}

// Due removes and returns every event due at now, earliest first.
func (s *Schedule) Due(now core.Tick) []Event {
	n := 0
	for n < len(s.queue) && s.queue[n].at <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Event, n)
	for i := range due {
		due[i] = s.queue[i].ev
	}
	s.queue = append(s.queue[:0], s.queue[n:]...)
	return due
}

// Pending returns the number of armed events that have not fired.
func (s *Schedule) Pending() int {
	return len(s.queue)
}

// NextAt returns the tick of the earliest armed event.
func (s *Schedule) NextAt() (core.Tick, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].at, true
}
