package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Listing keys, one per public result set.
const (
	KeyPublicAnimals   = "listing:animals:public"
	KeyPublicMenuItems = "listing:menu:public"
	KeyPublicEvents    = "listing:events:public"
)

// ListingCache stores the public (restricted-read) listings in Redis.
// It is best-effort: any Redis failure falls through to the database.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache builds a cache with the given TTL.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

// Get unmarshals the cached listing for key into dest, reporting
// whether a usable entry was found.
func (c *ListingCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a listing under key.
func (c *ListingCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Invalidate drops the cached listing for key.
func (c *ListingCache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, key)
}
