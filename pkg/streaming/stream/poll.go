package stream

// pollState tracks which variant a Poll holds.
type pollState uint8

const (
	statePending pollState = iota
	stateItem
	stateEnd
)

// Poll is the outcome of a single poll attempt: Pending when no item is
// available yet, an item, or End once the sequence is exhausted.
// The zero value is Pending.
type Poll[T any] struct {
	value T
	state pollState
}

// Pending reports that no item is available yet. The polled stream has
// arranged a wake-up through the poll context before returning this.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// Item wraps the next item of the sequence.
func Item[T any](v T) Poll[T] {
	return Poll[T]{value: v, state: stateItem}
}

// End reports that the sequence is exhausted.
func End[T any]() Poll[T] {
	return Poll[T]{state: stateEnd}
}

// IsPending returns true if no item was available yet.
func (p Poll[T]) IsPending() bool { return p.state == statePending }

// IsEnd returns true if the sequence is exhausted.
func (p Poll[T]) IsEnd() bool { return p.state == stateEnd }

// Value returns the item and true if this poll produced one.
func (p Poll[T]) Value() (T, bool) {
	if p.state != stateItem {
		var zero T
		return zero, false
	}
	return p.value, true
}
