// Package hub implements the Redis-backed staging buffer and gRPC
// dispatcher that batches classified records before they reach the store.
package hub

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// redisKey is the list the hub stages undispatched payloads under.
const redisKey = "processed_agent_data"

// buffer wraps the Redis list operations the batching algorithm needs.
type buffer struct {
	client *redis.Client
}

func newBuffer(client *redis.Client) *buffer {
	return &buffer{client: client}
}

// len returns the number of payloads currently staged.
func (b *buffer) len(ctx context.Context) (int64, error) {
	return b.client.LLen(ctx, redisKey).Result()
}

// push stages a single raw JSON payload at the tail, so drain's
// head-popping returns payloads in arrival order.
func (b *buffer) push(ctx context.Context, payload []byte) error {
	return b.client.RPush(ctx, redisKey, payload).Err()
}

// drain pops up to count staged payloads, oldest first.
func (b *buffer) drain(ctx context.Context, count int64) ([][]byte, error) {
	values, err := b.client.LPopCount(ctx, redisKey, int(count)).Result()
	if errors.Is(err, redis.Nil) {
		// the list does not exist: nothing is staged
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out, nil
}
