/*
Package pollflow provides poll-based asynchronous streams for Go, built
around a small cooperative protocol: each poll yields the next item, the
end of the sequence, or Pending together with a wake-up registration.

Core protocol (pkg/streaming/stream):
  - Poll results, wakers and poll contexts
  - basic sources (slices, channels, generators)
  - blocking drivers bridging to context.Context

Combinators (pkg/streaming):
  - fuse: safe polling after end of stream
  - peek: single-item lookahead without consuming
  - ordered: ordered fan-in over several streams
  - oneshot: single-value channel with a pollable receiver

Sources (pkg/streaming):
  - cronstream: activation times of a cron schedule
  - redisstream: values popped from a Redis list

Observability (pkg/metrics): Prometheus counters for poll outcomes and
peek cache activity.

Example usage:

	import (
		"github.com/vnykmshr/pollflow/pkg/streaming/peek"
		"github.com/vnykmshr/pollflow/pkg/streaming/stream"
	)

	p := peek.New(stream.FromSlice([]int{1, 2, 3}))
	cx := stream.NewContext(stream.NopWaker())

	if next, ok := p.Peek(cx).Value(); ok {
		fmt.Println("next up:", *next) // nothing consumed yet
	}
	items, _ := stream.Collect[int](context.Background(), p)
*/
package pollflow
