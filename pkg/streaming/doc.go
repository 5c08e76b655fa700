/*
Package streaming groups the poll-based stream protocol and its
combinators and sources.

  - stream: the protocol (Poll, Waker, Context), basic sources, and
    blocking drivers
  - fuse: safe polling after end of stream
  - peek: single-item lookahead without consuming
  - oneshot: single-value channel with a pollable receiver
  - ordered: ordered fan-in over several streams
  - cronstream: activation times of a cron schedule as a stream
  - redisstream: values popped from a Redis list as a stream

All components share the single-consumer contract documented in the
stream package.
*/
package streaming
