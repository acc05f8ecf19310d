// Package cache stores finished review reports in valkey for a short TTL so
// repeated lookups of the same product page skip the whole fetch/analyze
// pipeline. The cache is optional: a nil ReportCache disables it, and every
// cache error is absorbed — a miss is never worse than no cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
)

type ReportCache struct {
	valkey *clients.ValkeyClient
	ttl    time.Duration
}

func NewReportCache(valkey *clients.ValkeyClient, ttl time.Duration) *ReportCache {
	return &ReportCache{valkey: valkey, ttl: ttl}
}

// Key derives the cache key for a source + product URL pair.
func Key(source, productURL string) string {
	hash := sha256.Sum256([]byte(source + ":" + productURL))
	return "reviews:" + source + ":" + hex.EncodeToString(hash[:16])
}

// Get returns the cached response for the key, or (nil, false) on any miss
// or error.
func (c *ReportCache) Get(ctx context.Context, key string) (*models.FormattedResponse, bool) {
	if c == nil || c.valkey == nil {
		return nil, false
	}

	resp := c.valkey.Client.Do(ctx, c.valkey.Client.B().Get().Key(key).Build())
	raw, err := resp.AsBytes()
	if err != nil {
		return nil, false
	}

	var cached models.FormattedResponse
	if err := json.Unmarshal(raw, &cached); err != nil {
		slog.Warn("[ReportCache] Failed to decode cached report, ignoring",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	slog.Info("[ReportCache] Cache hit", slog.String("key", key))
	return &cached, true
}

// Set stores the response under key for the cache TTL. Failures are logged
// and swallowed.
func (c *ReportCache) Set(ctx context.Context, key string, response *models.FormattedResponse) {
	if c == nil || c.valkey == nil || response == nil {
		return
	}

	raw, err := json.Marshal(response)
	if err != nil {
		slog.Warn("[ReportCache] Failed to encode report",
			slog.String("error", err.Error()))
		return
	}

	cmd := c.valkey.Client.B().Set().Key(key).Value(string(raw)).
		Ex(c.ttl).Build()
	if err := c.valkey.Client.Do(ctx, cmd).Error(); err != nil {
		slog.Warn("[ReportCache] Failed to store report",
			slog.String("key", key),
			slog.String("error", fmt.Sprintf("%v", err)))
	}
}
