// Package cache provides a Redis-backed cache for rendered pagination markup
// with ETag support for conditional responses.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// CacheEntry represents cached pagination markup.
type CacheEntry struct {
	// Markup is the rendered pagination control
	Markup string `json:"markup"`

	// ETag identifies the markup for If-None-Match
	ETag string `json:"etag"`

	// Expires is when the cache entry becomes stale
	Expires time.Time `json:"expires"`

	// CachedAt is when the markup was rendered
	CachedAt time.Time `json:"cached_at"`
}

// NewEntry creates an entry for markup that expires after ttl.
func NewEntry(markup string, ttl time.Duration) *CacheEntry {
	now := time.Now()
	return &CacheEntry{
		Markup:   markup,
		ETag:     ComputeETag(markup),
		Expires:  now.Add(ttl),
		CachedAt: now,
	}
}

// ComputeETag returns a strong ETag for markup.
func ComputeETag(markup string) string {
	sum := sha256.Sum256([]byte(markup))
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}

// IsExpired returns true if the cache entry has expired.
func (e *CacheEntry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *CacheEntry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}
