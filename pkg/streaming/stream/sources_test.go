package stream_test

import (
	"context"
	"testing"

	"github.com/vnykmshr/pollflow/internal/testutil"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

func TestFromSlice(t *testing.T) {
	s := stream.FromSlice([]int{1, 2, 3, 4, 5})

	result, err := stream.Collect(context.Background(), s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 5)
	testutil.AssertEqual(t, result[0], 1)
	testutil.AssertEqual(t, result[4], 5)
}

func TestEmpty(t *testing.T) {
	result, err := stream.Collect(context.Background(), stream.Empty[int]())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 0)
}

func TestGenerate(t *testing.T) {
	n := 0
	s := stream.Generate(func() int { n++; return n })
	cx := stream.NewContext(stream.NopWaker())

	for want := 1; want <= 3; want++ {
		v, ok := s.PollNext(cx).Value()
		testutil.AssertEqual(t, ok, true)
		testutil.AssertEqual(t, v, want)
	}
}

func TestFromChannelBuffered(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "hello"
	ch <- "world"
	ch <- "test"
	close(ch)

	s := stream.FromChannel(ch)
	defer s.Close()

	result, err := stream.Collect[string](context.Background(), s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 3)
	testutil.AssertEqual(t, result[0], "hello")
	testutil.AssertEqual(t, result[1], "world")
	testutil.AssertEqual(t, result[2], "test")
}

func TestFromChannelPending(t *testing.T) {
	ch := make(chan int)
	s := stream.FromChannel(ch)
	defer s.Close()

	cx := stream.NewContext(stream.NopWaker())
	testutil.AssertEqual(t, s.PollNext(cx).IsPending(), true)

	go func() {
		ch <- 7
		close(ch)
	}()

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	v, ok, err := stream.Next[int](ctx, s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 7)

	_, ok, err = stream.Next[int](ctx, s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ok, false)
}

func TestFromChannelWakesConsumer(t *testing.T) {
	ch := make(chan int, 1)
	s := stream.FromChannel(ch)
	defer s.Close()

	w := testutil.NewCountingWaker()
	cx := stream.NewContext(w)

	testutil.AssertEqual(t, s.PollNext(cx).IsPending(), true)

	ch <- 42
	testutil.WaitFor(t, testutil.TestTimeout, func() bool { return w.Wakes() >= 1 })

	v, ok := s.PollNext(cx).Value()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 42)
}

func TestFromChannelClose(t *testing.T) {
	ch := make(chan int)
	s := stream.FromChannel(ch)

	cx := stream.NewContext(stream.NopWaker())
	testutil.AssertEqual(t, s.PollNext(cx).IsPending(), true)

	testutil.AssertNoError(t, s.Close())
	testutil.AssertEqual(t, s.PollNext(cx).IsEnd(), true)
	testutil.AssertNoError(t, s.Close()) // idempotent
}
