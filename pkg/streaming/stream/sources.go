package stream

import "sync"

// sliceStream yields the elements of a slice in order.
type sliceStream[T any] struct {
	items []T
	index int
}

// FromSlice creates a Stream that yields the elements of slice in order.
func FromSlice[T any](slice []T) Stream[T] {
	return &sliceStream[T]{items: slice}
}

func (s *sliceStream[T]) PollNext(_ *Context) Poll[T] {
	if s.index >= len(s.items) {
		return End[T]()
	}
	v := s.items[s.index]
	s.index++
	return Item(v)
}

// generatorStream yields values from a generator function, forever.
type generatorStream[T any] struct {
	generator func() T
}

// Generate creates an infinite Stream from a generator function.
func Generate[T any](generator func() T) Stream[T] {
	return &generatorStream[T]{generator: generator}
}

func (s *generatorStream[T]) PollNext(_ *Context) Poll[T] {
	return Item(s.generator())
}

// emptyStream ends immediately.
type emptyStream[T any] struct{}

// Empty creates a Stream with no items.
func Empty[T any]() Stream[T] {
	return emptyStream[T]{}
}

func (emptyStream[T]) PollNext(_ *Context) Poll[T] {
	return End[T]()
}

// ChannelStream adapts a Go channel to the poll protocol. A background
// receive is started on demand and the received value lands in a one-slot
// relay; PollNext itself never blocks on the channel.
type ChannelStream[T any] struct {
	ch   <-chan T
	stop chan struct{}

	mu        sync.Mutex
	slot      T
	filled    bool
	finished  bool // channel close observed
	receiving bool
	closed    bool
	waker     Waker
}

// FromChannel creates a Stream that yields values received from ch until
// ch is closed. Close releases the background receive; a value already
// relayed is still delivered.
func FromChannel[T any](ch <-chan T) *ChannelStream[T] {
	return &ChannelStream[T]{ch: ch, stop: make(chan struct{})}
}

// PollNext implements Stream.
func (s *ChannelStream[T]) PollNext(cx *Context) Poll[T] {
	s.mu.Lock()
	if s.filled {
		v := s.slot
		var zero T
		s.slot = zero
		s.filled = false
		s.mu.Unlock()
		return Item(v)
	}
	if s.finished || s.closed {
		s.mu.Unlock()
		return End[T]()
	}
	s.waker = cx.Waker()
	if !s.receiving {
		s.receiving = true
		go s.receive()
	}
	s.mu.Unlock()
	return Pending[T]()
}

// receive parks on the channel and relays one value, or the close, back to
// the poll side. The waker is read at delivery time so re-registration by
// a later poll is honored.
func (s *ChannelStream[T]) receive() {
	select {
	case v, ok := <-s.ch:
		s.mu.Lock()
		s.receiving = false
		if ok {
			s.slot = v
			s.filled = true
		} else {
			s.finished = true
		}
		w := s.waker
		s.mu.Unlock()
		if w != nil {
			w.Wake()
		}
	case <-s.stop:
		s.mu.Lock()
		s.receiving = false
		s.mu.Unlock()
	}
}

// Close releases the background receive. Subsequent polls report End once
// any already-relayed value has been delivered. Close is safe to call more
// than once.
func (s *ChannelStream[T]) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.stop)
	}
	w := s.waker
	s.mu.Unlock()
	if w != nil {
		w.Wake()
	}
	return nil
}
