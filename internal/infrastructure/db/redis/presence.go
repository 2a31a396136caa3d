package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const presenceTTL = 5 * time.Minute

// PresenceTracker records recently seen users in Redis.
// Key format: presence:<user_id>
type PresenceTracker struct {
	client *redis.Client
}

// NewPresenceTracker creates a PresenceTracker wrapping the given Redis client.
func NewPresenceTracker(client *redis.Client) *PresenceTracker {
	return &PresenceTracker{client: client}
}

// Mark records that the user was seen just now (expires after presenceTTL).
func (p *PresenceTracker) Mark(ctx context.Context, userID int64) error {
	return p.client.Set(ctx, p.key(userID), time.Now().UTC().Unix(), presenceTTL).Err()
}

func (p *PresenceTracker) key(userID int64) string {
	return fmt.Sprintf("presence:%d", userID)
}
