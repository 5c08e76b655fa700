// Package oneshot provides a single-value channel between one producer
// and one poll-based consumer.
//
// Channel returns a connected Sender and Receiver. The Receiver is a
// stream.Stream that stays Pending until the Sender delivers a value or
// closes, then yields the value (if any) exactly once, then reports End.
// Send and Close may be called from any goroutine; they wake a parked
// consumer.
package oneshot

import (
	"sync"

	"github.com/vnykmshr/pollflow/pkg/common/errors"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

// cellState tracks the lifecycle of the shared slot.
type cellState uint8

const (
	stateEmpty cellState = iota
	stateSent
	stateClosed
)

// cell is the slot shared by a Sender/Receiver pair.
type cell[T any] struct {
	mu    sync.Mutex
	value T
	state cellState
	taken bool
	waker stream.Waker
}

// Sender delivers at most one value to the paired Receiver.
type Sender[T any] struct {
	cell *cell[T]
}

// Receiver yields the delivered value as a one-item stream.
type Receiver[T any] struct {
	cell *cell[T]
}

// Channel creates a connected Sender/Receiver pair.
func Channel[T any]() (*Sender[T], *Receiver[T]) {
	c := &cell[T]{}
	return &Sender[T]{cell: c}, &Receiver[T]{cell: c}
}

// Send delivers v to the receiver and wakes it if it is parked. It
// returns errors.ErrSent if a value was already delivered and
// errors.ErrClosed if the sender was closed first.
func (s *Sender[T]) Send(v T) error {
	c := s.cell
	c.mu.Lock()
	switch c.state {
	case stateSent:
		c.mu.Unlock()
		return errors.ErrSent
	case stateClosed:
		c.mu.Unlock()
		return errors.ErrClosed
	}
	c.value = v
	c.state = stateSent
	w := c.waker
	c.mu.Unlock()

	if w != nil {
		w.Wake()
	}
	return nil
}

// Close marks the channel closed without delivering a value; the receiver
// observes End. Closing after a successful Send is a no-op, so the value
// is still delivered.
func (s *Sender[T]) Close() {
	c := s.cell
	c.mu.Lock()
	if c.state != stateEmpty {
		c.mu.Unlock()
		return
	}
	c.state = stateClosed
	w := c.waker
	c.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// PollNext implements stream.Stream: Pending until the sender acts, then
// the value exactly once (if one was sent), then End.
func (r *Receiver[T]) PollNext(cx *stream.Context) stream.Poll[T] {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.taken {
		return stream.End[T]()
	}
	switch c.state {
	case stateEmpty:
		c.waker = cx.Waker()
		return stream.Pending[T]()
	case stateSent:
		c.taken = true
		return stream.Item(c.value)
	default:
		c.taken = true
		return stream.End[T]()
	}
}
