package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// PubSubClient wraps redis Pub/Sub for toast fan-out across instances.
type PubSubClient struct {
	rdb *redis.Client
}

// NewPubSubClient shares rdb with the other redis components.
func NewPubSubClient(rdb *redis.Client) *PubSubClient {
	return &PubSubClient{rdb: rdb}
}

// Subscribe waits for the next message on channel, giving up after timeout.
// Used by the toast long poll.
func (c *PubSubClient) Subscribe(ctx context.Context, channel string, timeout time.Duration) (string, error) {
	sub := c.rdb.Subscribe(ctx, channel)
	defer sub.Close()

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// wait for the subscription to be confirmed so a publish right after
	// Subscribe returns is not lost
	if _, err := sub.Receive(timeoutCtx); err != nil {
		if ctxErr := timeoutCtx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}

	select {
	case msg, ok := <-sub.Channel():
		if !ok {
			return "", context.Canceled
		}
		return msg.Payload, nil
	case <-timeoutCtx.Done():
		return "", timeoutCtx.Err()
	}
}

// Publish sends message to channel.
func (c *PubSubClient) Publish(ctx context.Context, channel string, message string) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}
