package cache

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// MatchesETag reports whether the If-None-Match header of r matches etag.
// "*" matches any entry; weak validators compare by their opaque tag.
func MatchesETag(r *http.Request, etag string) bool {
	if r == nil || etag == "" {
		return false
	}

	header := r.Header.Get("If-None-Match")
	if header == "" {
		return false
	}

	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

// SetCacheHeaders sets ETag, Expires and Cache-Control for entry.
func SetCacheHeaders(w http.ResponseWriter, entry *CacheEntry) {
	if entry == nil {
		return
	}

	h := w.Header()
	if entry.ETag != "" {
		h.Set("ETag", entry.ETag)
	}
	if !entry.Expires.IsZero() {
		h.Set("Expires", entry.Expires.UTC().Format(http.TimeFormat))
		h.Set("Cache-Control", fmt.Sprintf("max-age=%d", int(entry.TTL()/time.Second)))
	}
}

// WriteMarkup writes entry as an HTML fragment. When r carries a matching
// If-None-Match the body is omitted and 304 Not Modified is sent instead.
func WriteMarkup(w http.ResponseWriter, r *http.Request, entry *CacheEntry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}

	SetCacheHeaders(w, entry)

	if MatchesETag(r, entry.ETag) {
		NotModified.Inc()
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(entry.Markup)); err != nil {
		return fmt.Errorf("write markup: %w", err)
	}
	return nil
}
