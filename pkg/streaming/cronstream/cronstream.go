// Package cronstream provides a schedule-driven time stream: it yields
// each activation time of a cron schedule as the wall clock reaches it.
//
// Between activations the stream arms a timer to wake the consumer and
// reports Pending, so a driver such as stream.Next sleeps exactly until
// the next activation.
package cronstream

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/pollflow/pkg/common/errors"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

// parser accepts the standard five-field format plus descriptors such as
// @hourly and @every 5m.
var parser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Config holds configuration for a cron stream.
type Config struct {
	// Expression is the cron expression driving the stream.
	Expression string

	// Schedule overrides Expression with a pre-built schedule. Useful for
	// fixed intervals below cron's one-second resolution.
	Schedule cron.Schedule

	// TimeZone is the location for schedule evaluation. Defaults to
	// time.Local.
	TimeZone *time.Location

	// MaxTicks limits the number of activations (0 = unlimited). The
	// stream reports End once the limit is reached.
	MaxTicks int
}

// Stream yields the activation times of a cron schedule. It implements
// stream.Stream[time.Time].
type Stream struct {
	mu       sync.Mutex
	schedule cron.Schedule
	loc      *time.Location
	next     time.Time
	ticks    int
	maxTicks int
	timer    *time.Timer
	closed   bool
}

// New creates a cron stream from a cron expression.
func New(expression string) (*Stream, error) {
	return NewWithConfig(Config{Expression: expression})
}

// NewWithConfig creates a cron stream from a full configuration.
func NewWithConfig(config Config) (*Stream, error) {
	schedule := config.Schedule
	if schedule == nil {
		if config.Expression == "" {
			return nil, fmt.Errorf("%w: expression or schedule is required", errors.ErrInvalidConfiguration)
		}
		parsed, err := parser.Parse(config.Expression)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfiguration, err)
		}
		schedule = parsed
	}

	loc := config.TimeZone
	if loc == nil {
		loc = time.Local
	}

	s := &Stream{
		schedule: schedule,
		loc:      loc,
		maxTicks: config.MaxTicks,
	}
	s.next = schedule.Next(time.Now().In(loc)).In(loc)
	return s, nil
}

// PollNext implements stream.Stream. When the next activation is due it is
// yielded and the schedule advances; otherwise a timer is armed to wake
// the consumer at the activation and Pending is returned.
func (s *Stream) PollNext(cx *stream.Context) stream.Poll[time.Time] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return stream.End[time.Time]()
	}
	if s.maxTicks > 0 && s.ticks >= s.maxTicks {
		return stream.End[time.Time]()
	}

	now := time.Now().In(s.loc)
	if !now.Before(s.next) {
		fired := s.next
		s.next = s.schedule.Next(now).In(s.loc)
		s.ticks++
		return stream.Item(fired)
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.next.Sub(now), cx.Waker().Wake)
	return stream.Pending[time.Time]()
}

// NextActivation returns the next scheduled activation time.
func (s *Stream) NextActivation() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Close stops any armed timer and puts the stream in its terminal state.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.closed = true
	return nil
}
