package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadTTL = 24 * time.Hour

// UnreadCounter caches per-user unread-message counts in Redis.
// Key format: unread:<user_id>
//
// The counter is a cache, not the source of truth: entries expire after
// unreadTTL and are rebuilt from the message store on the next read.
type UnreadCounter struct {
	client *redis.Client
}

// NewUnreadCounter creates an UnreadCounter wrapping the given Redis client.
func NewUnreadCounter(client *redis.Client) *UnreadCounter {
	return &UnreadCounter{client: client}
}

// Incr bumps the user's unread count and refreshes the key's TTL.
func (c *UnreadCounter) Incr(ctx context.Context, userID string) error {
	key := c.key(userID)
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("unread incr: %w", err)
	}
	return c.client.Expire(ctx, key, unreadTTL).Err()
}

// Reset drops the cached count so the next read recomputes it from the
// store. Used after mark-as-read rather than decrementing, which would
// drift under concurrent reads.
func (c *UnreadCounter) Reset(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

// Get returns the cached count. ok is false on a cache miss.
func (c *UnreadCounter) Get(ctx context.Context, userID string) (int64, bool, error) {
	n, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("unread get: %w", err)
	}
	return n, true, nil
}

// Set warms the cache with a count computed from the store.
func (c *UnreadCounter) Set(ctx context.Context, userID string, count int64) error {
	return c.client.Set(ctx, c.key(userID), count, unreadTTL).Err()
}

func (c *UnreadCounter) key(userID string) string {
	return "unread:" + userID
}
