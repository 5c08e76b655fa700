/*
Package stream defines the poll-based stream protocol used across pollflow.

A Stream produces a lazy sequence of items. Each call to PollNext makes one
attempt at progress and reports the outcome as a Poll: the next item, the
end of the sequence, or Pending when no item is available yet. A stream
that returns Pending must first arrange, through the Context's Waker, for
the consumer to be woken once another poll may make progress.

Polling is cooperative and single-consumer: exactly one logical consumer
drives a stream instance at a time. Streams never block inside PollNext;
blocking is confined to the drivers (Next, Collect, ForEach), which park
on a waker and honor context cancellation.

Basic usage:

	s := stream.FromSlice([]int{1, 2, 3})
	items, err := stream.Collect(context.Background(), s)
	// items == [1 2 3]

Combinators live in the sibling packages: fuse makes polling past the end
of a sequence safe, peek adds single-item lookahead, ordered merges several
streams in argument order, and oneshot bridges single values from other
goroutines into the poll protocol.
*/
package stream
