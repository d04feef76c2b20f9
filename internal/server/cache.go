// Result cache over Redis
// Keyed by circuit content hash plus execution options, so identical runs
// on the same backend are served without touching the engine

package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/perclft/QubitScope/circuit"
	"github.com/perclft/QubitScope/runtime"
)

type CachedResult struct {
	Counts   map[string]int `json:"counts"`
	Shots    int            `json:"shots"`
	Backend  string         `json:"backend"`
	CachedAt int64          `json:"cached_at"`
	HitCount int32          `json:"hit_count"`
}

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// RunKey derives the cache key for a circuit executed on a backend with
// specific options. The noise block matters: an ideal and a noisy run of
// the same circuit must not share a key.
func RunKey(backendName string, c *circuit.Circuit, opts *runtime.Options) (string, error) {
	optBytes, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("encode options: %w", err)
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s;%s;", backendName, c.Hash())
	h.Write(optBytes)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (c *Cache) Get(ctx context.Context, key string) (*CachedResult, error) {
	data, err := c.rdb.Get(ctx, "qs:cache:"+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry CachedResult
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parse cache entry: %w", err)
	}

	entry.HitCount++
	if updated, err := json.Marshal(entry); err == nil {
		c.rdb.Set(ctx, "qs:cache:"+key, updated, redis.KeepTTL)
	}
	return &entry, nil
}

func (c *Cache) Put(ctx context.Context, key string, entry *CachedResult) error {
	entry.CachedAt = time.Now().Unix()
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	return c.rdb.Set(ctx, "qs:cache:"+key, data, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context, key string) (bool, error) {
	deleted, err := c.rdb.Del(ctx, "qs:cache:"+key).Result()
	return deleted > 0, err
}
