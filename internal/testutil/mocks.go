package testutil

import (
	"sync/atomic"

	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

// CountingWaker records how many times it was woken. It is the stand-in
// for a scheduler in combinator tests.
type CountingWaker struct {
	wakes int64
}

// NewCountingWaker creates a CountingWaker with no recorded wakes.
func NewCountingWaker() *CountingWaker {
	return &CountingWaker{}
}

// Wake implements stream.Waker.
func (w *CountingWaker) Wake() {
	atomic.AddInt64(&w.wakes, 1)
}

// Wakes returns the number of Wake calls observed.
func (w *CountingWaker) Wakes() int {
	return int(atomic.LoadInt64(&w.wakes))
}

// ScriptStream replays a fixed sequence of poll outcomes and counts how
// often it was polled. It is the stand-in for an upstream producer:
// scripting Pending steps lets tests exercise suspension paths without
// goroutines or timers.
//
// Polling past the final step reports End. ScriptStream is intentionally
// unsynchronized; like any stream it expects a single consumer.
type ScriptStream[T any] struct {
	steps []stream.Poll[T]
	pos   int
	polls int
}

// NewScriptStream creates a ScriptStream that replays steps in order.
func NewScriptStream[T any](steps ...stream.Poll[T]) *ScriptStream[T] {
	return &ScriptStream[T]{steps: steps}
}

// PollNext implements stream.Stream.
func (s *ScriptStream[T]) PollNext(_ *stream.Context) stream.Poll[T] {
	s.polls++
	if s.pos >= len(s.steps) {
		return stream.End[T]()
	}
	p := s.steps[s.pos]
	s.pos++
	return p
}

// Polls returns how many times PollNext was invoked.
func (s *ScriptStream[T]) Polls() int {
	return s.polls
}
