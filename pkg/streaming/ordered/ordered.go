// Package ordered aggregates several streams and yields their first items
// in argument order, regardless of completion order.
//
// Each source contributes at most one item. A source that completes early
// is buffered until every source before it has yielded; a source that
// ends without producing an item is skipped. Combined with oneshot
// receivers this turns a set of asynchronously resolved values into an
// ordered stream.
package ordered

import "github.com/vnykmshr/pollflow/pkg/streaming/stream"

// entryState tracks one source's progress.
type entryState uint8

const (
	entryPending entryState = iota
	entryDone
	entryConsumed
)

type entry[T any] struct {
	src   stream.Stream[T]
	value T
	state entryState
}

// Ordered merges the first item of each source into a single stream,
// preserving argument order.
type Ordered[T any] struct {
	entries []*entry[T]
	head    int
}

// New creates an Ordered aggregation over sources.
func New[T any](sources ...stream.Stream[T]) *Ordered[T] {
	entries := make([]*entry[T], len(sources))
	for i, s := range sources {
		entries[i] = &entry[T]{src: s}
	}
	return &Ordered[T]{entries: entries}
}

// Len returns the number of sources that have not yet been yielded or
// skipped.
func (o *Ordered[T]) Len() int { return len(o.entries) - o.head }

// PollNext implements stream.Stream. Every unresolved source is polled
// once, so each registers the wake-up with cx; the head entry's result is
// yielded as soon as it is available.
func (o *Ordered[T]) PollNext(cx *stream.Context) stream.Poll[T] {
	for _, e := range o.entries[o.head:] {
		if e.state != entryPending {
			continue
		}
		p := e.src.PollNext(cx)
		if v, ok := p.Value(); ok {
			e.value = v
			e.state = entryDone
			e.src = nil
		} else if p.IsEnd() {
			e.state = entryConsumed
			e.src = nil
		}
	}

	for o.head < len(o.entries) {
		e := o.entries[o.head]
		switch e.state {
		case entryPending:
			return stream.Pending[T]()
		case entryConsumed:
			o.head++
		case entryDone:
			e.state = entryConsumed
			o.head++
			return stream.Item(e.value)
		}
	}
	return stream.End[T]()
}
