// Package redisstream provides a poll-based stream fed from a Redis list.
//
// A single background fetcher pops values with BLPOP into a bounded
// in-memory buffer; PollNext serves from that buffer and never performs
// I/O itself. Any process can feed the list with LPUSH or RPUSH.
package redisstream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/pollflow/pkg/common/errors"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

// RedisError wraps a failed Redis operation reported through OnError.
type RedisError struct {
	Op  string
	Err error
}

func (e *RedisError) Error() string {
	return fmt.Sprintf("redisstream: %s failed: %v", e.Op, e.Err)
}

func (e *RedisError) Unwrap() error { return e.Err }

// Config holds configuration for a Redis-fed stream.
type Config struct {
	// Client is the Redis client to use. Required.
	Client redis.UniversalClient

	// Key is the Redis list to consume. Required.
	Key string

	// BufferSize bounds the in-memory buffer between the fetcher and the
	// consumer. Defaults to 16.
	BufferSize int

	// BlockTimeout is the BLPOP timeout per round trip. Shorter values
	// make Close more responsive. Defaults to 1s.
	BlockTimeout time.Duration

	// OnError is called with a *RedisError when a fetch fails. The
	// fetcher backs off for one BlockTimeout and retries.
	OnError func(error)
}

// Stream consumes a Redis list as a poll-based stream of string values.
type Stream struct {
	config Config
	items  chan string

	mu    sync.Mutex
	waker stream.Waker

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// New validates config and starts the background fetcher.
func New(config Config) (*Stream, error) {
	if config.Client == nil {
		return nil, fmt.Errorf("%w: redis client is required", errors.ErrInvalidConfiguration)
	}
	if config.Key == "" {
		return nil, fmt.Errorf("%w: key is required", errors.ErrInvalidConfiguration)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 16
	}
	if config.BlockTimeout <= 0 {
		config.BlockTimeout = time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Stream{
		config: config,
		items:  make(chan string, config.BufferSize),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.fetch(ctx)
	return s, nil
}

// PollNext implements stream.Stream. Buffered values are served without
// I/O; with an empty buffer the consumer's waker is parked for the
// fetcher and Pending is returned. After Close the stream reports End
// once the buffer drains.
func (s *Stream) PollNext(cx *stream.Context) stream.Poll[string] {
	select {
	case v := <-s.items:
		return stream.Item(v)
	default:
	}

	s.mu.Lock()
	s.waker = cx.Waker()
	s.mu.Unlock()

	// Re-check: the fetcher may have delivered between the first check
	// and the waker hand-off.
	select {
	case v := <-s.items:
		return stream.Item(v)
	default:
	}

	select {
	case <-s.done:
		return stream.End[string]()
	default:
	}
	return stream.Pending[string]()
}

// fetch pops values into the buffer until the stream is closed.
func (s *Stream) fetch(ctx context.Context) {
	// LIFO: done must be closed before the final wake, or a consumer could
	// re-park after observing a still-open done channel.
	defer s.wake()
	defer close(s.done)

	for {
		res, err := s.config.Client.BLPop(ctx, s.config.BlockTimeout, s.config.Key).Result()
		if ctx.Err() != nil {
			return
		}
		if err == redis.Nil {
			continue
		}
		if err != nil {
			s.reportError(&RedisError{Op: "blpop", Err: err})
			select {
			case <-time.After(s.config.BlockTimeout):
			case <-ctx.Done():
				return
			}
			continue
		}

		// BLPOP replies [key, value].
		select {
		case s.items <- res[1]:
			s.wake()
		case <-ctx.Done():
			return
		}
	}
}

func (s *Stream) wake() {
	s.mu.Lock()
	w := s.waker
	s.mu.Unlock()
	if w != nil {
		w.Wake()
	}
}

func (s *Stream) reportError(err error) {
	if s.config.OnError != nil {
		s.config.OnError(err)
	}
}

// Close stops the fetcher. Values already buffered are still delivered;
// afterwards the stream reports End. Close is safe to call more than
// once.
func (s *Stream) Close() error {
	s.once.Do(s.cancel)
	return nil
}
