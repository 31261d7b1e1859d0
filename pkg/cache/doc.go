// Package cache provides caching of rendered pagination markup with a Redis backend.
//
// Rendering a control is cheap but not free: every link runs through URL
// building and the template. List pages are requested far more often than
// their parameters change, so the markup for a given base URL, parameter set,
// page and page count is cached and served with an ETag.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	manager := cache.NewManager(redisClient, cache.DefaultTTL, logging.NewLogger("cache"))
//
//	key := cache.CacheKey{
//		BaseURL:       "https://example.com/orders",
//		QueryParams:   url.Values{"filter": []string{"open"}},
//		Page:          5,
//		PageCount:     20,
//		NumberOfLinks: 5,
//	}
//
//	entry, hit, err := manager.GetOrRender(ctx, key, p.ParsePaginationTemplate)
//
// # Conditional Responses
//
//	// Sends 304 when the client already holds this markup
//	if err := cache.WriteMarkup(w, r, entry); err != nil {
//		return err
//	}
//
// # Metrics
//
//   - pagination_cache_hits_total - Cache hits
//   - pagination_cache_misses_total - Cache misses
//   - pagination_cache_stores_total - Entries written
//   - pagination_304_responses_total - Conditional request successes
//   - pagination_cache_errors_total{operation} - Cache operation errors
//
// Redis errors never fail a render: GetOrRender logs them and falls back to
// rendering directly.
package cache
