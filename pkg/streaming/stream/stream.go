package stream

// Stream is a pull-based, possibly-suspending sequence of items.
//
// PollNext makes one attempt at progress. It never blocks: when no item is
// available the stream captures cx's Waker, arranges a wake-up, and returns
// Pending. Once End is returned a bare stream is exhausted and must not be
// polled again; wrap it with fuse.New when callers may keep polling past
// the end.
//
// Streams are single-consumer: at most one goroutine may poll a given
// instance at a time. Sharing an instance across goroutines requires
// external synchronization.
type Stream[T any] interface {
	PollNext(cx *Context) Poll[T]
}
