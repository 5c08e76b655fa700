package stream

import "context"

// parkWaker unparks a driver goroutine blocked in Next.
type parkWaker struct {
	ch chan struct{}
}

func newParkWaker() *parkWaker {
	return &parkWaker{ch: make(chan struct{}, 1)}
}

func (w *parkWaker) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// Next drives s until it yields, blocking between polls. It returns the
// next item and true, or false once the stream ends. The error is non-nil
// only when ctx is canceled while the stream is pending.
func Next[T any](ctx context.Context, s Stream[T]) (T, bool, error) {
	var zero T

	w := newParkWaker()
	cx := NewContext(w)

	for {
		p := s.PollNext(cx)
		if v, ok := p.Value(); ok {
			return v, true, nil
		}
		if p.IsEnd() {
			return zero, false, nil
		}

		select {
		case <-w.ch:
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	}
}

// Collect drives s to completion and returns all items in order.
func Collect[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	var result []T
	for {
		v, ok, err := Next(ctx, s)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, v)
	}
}

// ForEach drives s to completion, applying action to each item in order.
func ForEach[T any](ctx context.Context, s Stream[T], action func(T)) error {
	for {
		v, ok, err := Next(ctx, s)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		action(v)
	}
}
