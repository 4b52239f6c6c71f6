package connection

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// ConnectRedisWithRetry pings redis up to maxRetries times before giving up.
// Redis holds console sessions, idempotency locks and the dashboard cache.
func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			log.Println("connected to redis")
			return rdb, nil
		}

		log.Printf("redis retry %d/%d failed", i, maxRetries)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis")
}

// NewKafkaWriter builds a shared writer for the admin-activity topic.
// brokers is a comma-separated list; the topic is set per message.
func NewKafkaWriter(brokers string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(strings.Split(brokers, ",")...),
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
		Async:        true,
	}
}

// NewUpstreamClient builds the http.Client used for every call to the
// employee API. One timeout for the whole exchange; per-request contexts
// still cancel earlier when the browser disconnects.
func NewUpstreamClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
	}
}
