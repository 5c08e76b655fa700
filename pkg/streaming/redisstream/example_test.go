package redisstream_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/pollflow/pkg/streaming/redisstream"
	"github.com/vnykmshr/pollflow/pkg/streaming/stream"
)

// Example consumes a Redis list as a stream. Feed it from anywhere with
// LPUSH jobs <value>.
func Example() {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	s, err := redisstream.New(redisstream.Config{
		Client:  client,
		Key:     "jobs",
		OnError: func(err error) { log.Println(err) },
	})
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		job, ok, err := stream.Next[string](ctx, s)
		if err != nil || !ok {
			return
		}
		fmt.Println("job:", job)
	}
}
