package peek_test

import (
	"testing"

	"github.com/vnykmshr/pollflow/pkg/streaming/peek"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

func BenchmarkPeekThenPoll(b *testing.B) {
	p := peek.New(stream.Generate(func() int { return 1 }))
	cx := stream.NewContext(stream.NopWaker())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Peek(cx)
		p.PollNext(cx)
	}
}

func BenchmarkPollPassThrough(b *testing.B) {
	p := peek.New(stream.Generate(func() int { return 1 }))
	cx := stream.NewContext(stream.NopWaker())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.PollNext(cx)
	}
}
