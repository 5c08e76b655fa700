package stream

// Waker is the scheduling handle a stream uses to request that a suspended
// consumer be polled again once progress becomes possible. Wake must be
// safe for concurrent use and may be called more than once; spurious wakes
// are allowed.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

// Wake implements Waker.
func (f WakerFunc) Wake() { f() }

// nopWaker discards wake-ups.
type nopWaker struct{}

func (nopWaker) Wake() {}

// NopWaker returns a Waker that does nothing. Useful for one-off polls
// where the caller retries on its own schedule.
func NopWaker() Waker { return nopWaker{} }

// Context carries the Waker for one poll attempt. A stream that returns
// Pending must capture the context's waker before returning so the
// consumer can be woken later.
type Context struct {
	waker Waker
}

// NewContext returns a Context carrying the given waker.
func NewContext(w Waker) *Context {
	return &Context{waker: w}
}

// Waker returns the context's waker, or a no-op waker if none was set.
func (c *Context) Waker() Waker {
	if c == nil || c.waker == nil {
		return nopWaker{}
	}
	return c.waker
}
