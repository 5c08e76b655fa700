package peek

import (
	"github.com/vnykmshr/pollflow/pkg/streaming/fuse"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

// Peekable is a stream with single-item lookahead. It owns a fused copy of
// the upstream and at most one cached item.
type Peekable[T any] struct {
	stream *fuse.Stream[T]
	peeked *T
	stats  Stats
}

// Stats describes the work a Peekable has performed so far.
type Stats struct {
	// Peeks is the total number of Peek calls.
	Peeks int64

	// PeekHits is the number of Peek calls answered from the cache.
	PeekHits int64

	// Drains is the number of PollNext calls answered from the cache.
	Drains int64

	// UpstreamPolls is the number of polls forwarded to the fused upstream.
	UpstreamPolls int64
}

// New wraps s with single-item lookahead. The upstream is fused, so the
// adapter keeps reporting End once the sequence is exhausted.
func New[T any](s stream.Stream[T]) *Peekable[T] {
	return &Peekable[T]{stream: fuse.New(s)}
}

// Peek retrieves the next item without consuming it.
//
// With a filled cache, Peek returns a pointer to the cached item and does
// not poll the upstream. With an empty cache it polls the upstream once:
// Pending is propagated verbatim (the upstream owns the wake-up
// registration against cx), an item is cached and a pointer to it
// returned, and End stays End. The returned pointer aliases the cache and
// is invalidated by the next Peek or PollNext.
func (p *Peekable[T]) Peek(cx *stream.Context) stream.Poll[*T] {
	p.stats.Peeks++
	if p.peeked != nil {
		p.stats.PeekHits++
		return stream.Item(p.peeked)
	}

	p.stats.UpstreamPolls++
	next := p.stream.PollNext(cx)
	if next.IsPending() {
		return stream.Pending[*T]()
	}
	v, ok := next.Value()
	if !ok {
		return stream.End[*T]()
	}
	p.peeked = &v
	return stream.Item(&v)
}

// PollNext implements stream.Stream. A cached item is drained first,
// without polling the upstream; otherwise the upstream's result is
// forwarded unchanged.
func (p *Peekable[T]) PollNext(cx *stream.Context) stream.Poll[T] {
	if p.peeked != nil {
		item := *p.peeked
		p.peeked = nil
		p.stats.Drains++
		return stream.Item(item)
	}
	p.stats.UpstreamPolls++
	return p.stream.PollNext(cx)
}

// Stats returns counters describing the adapter's activity.
func (p *Peekable[T]) Stats() Stats { return p.stats }
