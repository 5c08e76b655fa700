/*
Package peek provides a single-item lookahead adapter for poll-based
streams.

Peekable wraps any stream.Stream and adds a Peek operation: inspect the
next item without consuming it. The adapter keeps a one-slot cache; Peek
fills the slot by polling the upstream at most once, and PollNext drains
the slot before ever touching the upstream again. The upstream is fused
on construction, so polling past the end of the sequence is always safe.

	p := peek.New(stream.FromSlice([]int{1, 2}))
	cx := stream.NewContext(stream.NopWaker())

	next, _ := p.Peek(cx).Value()     // *next == 1, nothing consumed
	item, _ := p.PollNext(cx).Value() // item == 1

A Peekable is single-consumer, like every stream in this module. The
pointer returned by Peek aliases the cache slot and is invalidated by the
next Peek or PollNext call; do not retain it across either.
*/
package peek
