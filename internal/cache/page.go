// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache. Rendered public
// pages are stored so subsequent requests skip the DB queries and
// template execution. Keys carry the visitor's consent state: the blurred
// and unblurred renders of the same path are different documents.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"afterglow/internal/consent"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// PageKey builds the cache key for one path as seen by one consent state.
// Unknown is never cached (it only exists before cookie resolution).
func PageKey(path string, state consent.State) string {
	return path + "|" + state.String()
}

// Get retrieves cached HTML for a page key. Returns false on miss or error.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores rendered HTML under a page key. Errors are logged, not returned —
// a failed cache write must never fail the request.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// Purge removes every cached page. Called after any admin write so the
// public site reflects the change on the next request.
func (pc *PageCache) Purge(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache purge scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache purge del error", "error", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
