package ordered_test

import (
	"testing"

	"github.com/vnykmshr/pollflow/internal/testutil"
	"github.com/vnykmshr/pollflow/pkg/streaming/oneshot"
	"github.com/vnykmshr/pollflow/pkg/streaming/ordered"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

var _ stream.Stream[int] = (*ordered.Ordered[int])(nil)

func TestOutOfOrderCompletion(t *testing.T) {
	aTx, aRx := oneshot.Channel[int]()
	bTx, bRx := oneshot.Channel[int]()
	cTx, cRx := oneshot.Channel[int]()

	o := ordered.New[int](aRx, bRx, cRx)
	cx := stream.NewContext(stream.NopWaker())

	// the middle source resolves first; nothing may surface yet
	testutil.AssertNoError(t, bTx.Send(99))
	testutil.AssertEqual(t, o.PollNext(cx).IsPending(), true)
	testutil.AssertEqual(t, o.Len(), 3)

	testutil.AssertNoError(t, aTx.Send(33))
	testutil.AssertNoError(t, cTx.Send(33))

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	items, err := stream.Collect[int](ctx, o)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(items), 3)
	testutil.AssertEqual(t, items[0], 33)
	testutil.AssertEqual(t, items[1], 99)
	testutil.AssertEqual(t, items[2], 33)
	testutil.AssertEqual(t, o.Len(), 0)
}

func TestHeadReadyTailPending(t *testing.T) {
	aTx, aRx := oneshot.Channel[int]()
	bTx, bRx := oneshot.Channel[int]()

	o := ordered.New[int](aRx, bRx)
	cx := stream.NewContext(stream.NopWaker())

	testutil.AssertNoError(t, aTx.Send(33))

	v, ok := o.PollNext(cx).Value()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 33)

	testutil.AssertEqual(t, o.PollNext(cx).IsPending(), true)

	testutil.AssertNoError(t, bTx.Send(34))

	v, ok = o.PollNext(cx).Value()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 34)

	testutil.AssertEqual(t, o.PollNext(cx).IsEnd(), true)
}

func TestSkipsSourcesWithoutItems(t *testing.T) {
	aTx, aRx := oneshot.Channel[int]()
	bTx, bRx := oneshot.Channel[int]()

	o := ordered.New[int](aRx, bRx)

	aTx.Close() // resolves without a value
	testutil.AssertNoError(t, bTx.Send(7))

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	items, err := stream.Collect[int](ctx, o)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(items), 1)
	testutil.AssertEqual(t, items[0], 7)
}

func TestEmptyEndsImmediately(t *testing.T) {
	o := ordered.New[int]()
	cx := stream.NewContext(stream.NopWaker())

	testutil.AssertEqual(t, o.Len(), 0)
	testutil.AssertEqual(t, o.PollNext(cx).IsEnd(), true)
}

func TestWakeOnLaterCompletion(t *testing.T) {
	aTx, aRx := oneshot.Channel[int]()

	o := ordered.New[int](aRx)
	w := testutil.NewCountingWaker()
	cx := stream.NewContext(w)

	testutil.AssertEqual(t, o.PollNext(cx).IsPending(), true)

	testutil.AssertNoError(t, aTx.Send(1))
	testutil.AssertEqual(t, w.Wakes(), 1)

	v, ok := o.PollNext(cx).Value()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 1)
}
