package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	FeedKeyPrefix = "feed:%d"
)

const (
	UserTTL = 5 * time.Minute
	// FeedTTL is short on purpose: when a followed author publishes there
	// is no cheap way to find every follower's feed key, so that staleness
	// is bounded by the TTL. Follow graph changes do invalidate the
	// follower's own key directly.
	FeedTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func FeedKey(userID uint) string {
	return fmt.Sprintf(FeedKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateFeed(ctx context.Context, userID uint) {
	Invalidate(ctx, FeedKey(userID))
}
