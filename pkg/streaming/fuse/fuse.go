// Package fuse provides a terminal-state guard for streams: after the
// first End, every later poll reports End without touching the inner
// stream.
package fuse

import "github.com/vnykmshr/pollflow/pkg/streaming/stream"

// Stream wraps an inner stream so that polling after exhaustion is safe.
// A bare stream must not be polled after it reports End; a fused stream
// absorbs the terminal state and keeps reporting End forever.
type Stream[T any] struct {
	inner stream.Stream[T]
	done  bool
}

// New wraps s in a fused stream.
func New[T any](s stream.Stream[T]) *Stream[T] {
	return &Stream[T]{inner: s}
}

// PollNext forwards to the inner stream until it reports End, then reports
// End on every later call. The inner stream is released on first End and
// never re-invoked.
func (f *Stream[T]) PollNext(cx *stream.Context) stream.Poll[T] {
	if f.done {
		return stream.End[T]()
	}
	p := f.inner.PollNext(cx)
	if p.IsEnd() {
		f.done = true
		f.inner = nil
	}
	return p
}

// Done returns true once the inner stream has reported End.
func (f *Stream[T]) Done() bool { return f.done }
