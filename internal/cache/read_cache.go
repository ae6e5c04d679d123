package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Cache keys for ledger rows. Rollups are never cached.
const (
	KeyFunds     = "funds"
	KeyInvestors = "investors"
	KeySnapshot  = "lp:snapshot"
)

// FundCallsKey caches a fund's capital calls.
func FundCallsKey(fundID string) string { return "fund:" + fundID + ":calls" }

// FundDistributionsKey caches a fund's distributions.
func FundDistributionsKey(fundID string) string { return "fund:" + fundID + ":distributions" }

// FundReportsKey caches a fund's quarterly reports.
func FundReportsKey(fundID string) string { return "fund:" + fundID + ":reports" }

// FundKeys returns every key that holds rows owned by a fund.
func FundKeys(fundID string) []string {
	return []string{FundCallsKey(fundID), FundDistributionsKey(fundID), FundReportsKey(fundID)}
}

// ReadCache is a short-TTL read-through cache of JSON-encoded ledger rows.
// A nil *ReadCache or a zero TTL disables caching.
//
// Every key carries a generation that Invalidate advances. A load that
// started before an invalidation never stores its result.
type ReadCache struct {
	store Store
	ttl   time.Duration

	mu   sync.Mutex
	gens map[string]uint64
}

func NewReadCache(store Store, ttl time.Duration) *ReadCache {
	return &ReadCache{store: store, ttl: ttl, gens: map[string]uint64{}}
}

func (c *ReadCache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[key]
}

func (c *ReadCache) advance(keys []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens == nil {
		c.gens = map[string]uint64{}
	}
	for _, k := range keys {
		c.gens[k]++
	}
}

func (c *ReadCache) enabled() bool {
	return c != nil && c.store != nil && c.ttl > 0
}

// Invalidate drops the given keys. Failures are logged; the entries still
// expire after the TTL.
func (c *ReadCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.enabled() {
		return
	}
	c.advance(keys)
	if err := c.store.Delete(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}

// Load returns the cached value for key, or calls load and caches its result.
// Cache errors never fail the read.
func Load[T any](ctx context.Context, c *ReadCache, key string, load func(context.Context) (T, error)) (T, error) {
	if !c.enabled() {
		return load(ctx)
	}

	if raw, found, err := c.store.Get(ctx, key); err != nil {
		slog.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		slog.WarnContext(ctx, "cache entry undecodable, reloading", slog.String("key", key))
	}

	gen := c.generation(key)
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}
	if c.generation(key) != gen {
		return v, nil
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		slog.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		return v, nil
	}
	// An invalidation that landed between the check and the write.
	if c.generation(key) != gen {
		if err := c.store.Delete(ctx, key); err != nil {
			slog.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", []string{key}), slog.String("error", err.Error()))
		}
	}
	return v, nil
}
