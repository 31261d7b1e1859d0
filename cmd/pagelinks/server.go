package main

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Sternrassler/pagelinks/pkg/cache"
	"github.com/Sternrassler/pagelinks/pkg/config"
	"github.com/Sternrassler/pagelinks/pkg/location"
	"github.com/Sternrassler/pagelinks/pkg/metrics"
	"github.com/Sternrassler/pagelinks/pkg/pagination"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// pageCountParam carries the page count for the /pagination fragment.
const pageCountParam = "pages"

var itemsPage = template.Must(template.New("items").Parse(`<!DOCTYPE html>
<html>
<head><title>Items, page {{.Page}} of {{.PageCount}}</title></head>
<body>
<ol start="{{.Start}}">
{{- range .Items}}
<li>{{.}}</li>
{{- end}}
</ol>
{{.Pagination}}
</body>
</html>
`))

type itemsPageData struct {
	Page       int
	PageCount  int
	Start      int
	Items      []string
	Pagination template.HTML
}

type server struct {
	cfg    config.ServerConfig
	redis  *redis.Client
	cache  *cache.Manager
	logger zerolog.Logger
}

// newServer creates the demo server. redisClient may be nil to disable the
// markup cache.
func newServer(cfg config.ServerConfig, redisClient *redis.Client, logger zerolog.Logger) *server {
	return &server{
		cfg:    cfg,
		redis:  redisClient,
		cache:  newCacheManager(redisClient, cfg),
		logger: logger.With().Str("component", "server").Logger(),
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", readyHandler(s.redis))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/items", s.itemsHandler)
	mux.HandleFunc("/pagination", s.paginationHandler)
	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// readyHandler reports 503 while Redis is unreachable. Without Redis the
// server is always ready.
func readyHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := redisClient.Ping(ctx).Err(); err != nil {
				http.Error(w, "Redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	}
}

// itemsHandler serves one page of the synthetic item list followed by its
// pagination control.
func (s *server) itemsHandler(w http.ResponseWriter, r *http.Request) {
	pageCount := pagination.TotalPages(s.cfg.ItemCount, s.cfg.PageSize)
	page := s.requestedPage(r)
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}

	control, hit, err := s.renderControl(r, page, pageCount)
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Msg("Failed to render pagination")
		http.Error(w, "failed to render pagination", http.StatusInternalServerError)
		return
	}

	start := (page-1)*s.cfg.PageSize + 1
	end := min(start+s.cfg.PageSize-1, s.cfg.ItemCount)
	items := make([]string, 0, s.cfg.PageSize)
	for i := start; i <= end; i++ {
		items = append(items, fmt.Sprintf("Item %d", i))
	}

	var buf bytes.Buffer
	err = itemsPage.Execute(&buf, itemsPageData{
		Page:       page,
		PageCount:  pageCount,
		Start:      start,
		Items:      items,
		Pagination: template.HTML(control.Markup),
	})
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Msg("Failed to render items page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	body := buf.String()
	entry := &cache.CacheEntry{
		Markup:   body,
		ETag:     cache.ComputeETag(body),
		Expires:  control.Expires,
		CachedAt: control.CachedAt,
	}

	s.logger.Info().
		Int("page", page).
		Int("page_count", pageCount).
		Bool("cache_hit", hit).
		Msg("Served items page")

	if err := cache.WriteMarkup(w, r, entry); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to write response")
	}
}

// paginationHandler serves the control alone. The page count is taken from
// the "pages" parameter and defaults to the configured item list.
func (s *server) paginationHandler(w http.ResponseWriter, r *http.Request) {
	pageCount := pagination.TotalPages(s.cfg.ItemCount, s.cfg.PageSize)
	if raw := r.URL.Query().Get(pageCountParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid pages parameter", http.StatusBadRequest)
			return
		}
		pageCount = n
	}

	control, _, err := s.renderControl(r, s.requestedPage(r), pageCount)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to render pagination")
		http.Error(w, "failed to render pagination", http.StatusInternalServerError)
		return
	}

	if err := cache.WriteMarkup(w, r, control); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to write response")
	}
}

// requestedPage reads the page parameter, falling back to 1 on missing or
// invalid input.
func (s *server) requestedPage(r *http.Request) int {
	raw := r.URL.Query().Get(pagination.PageParam)
	if raw == "" {
		return 1
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		s.logger.Warn().Str("page", raw).Msg("Invalid page parameter, using page 1")
		return 1
	}
	return page
}

// renderControl renders the pagination control for r, going through the
// markup cache when one is configured. The boolean reports a cache hit.
func (s *server) renderControl(r *http.Request, page, pageCount int) (*cache.CacheEntry, bool, error) {
	locator := location.FromRequest(r)

	params := location.QueryParams(r)
	params.Del(pagination.PageParam)

	cfg := pagination.DefaultConfig(locator)
	cfg.NumberOfLinks = s.cfg.NumberOfLinks
	cfg.Logger = &s.logger

	p, err := pagination.New(cfg)
	if err != nil {
		return nil, false, err
	}
	p.SetRequestParams(params).SetPage(page).SetPageCount(pageCount)

	if s.cache == nil {
		markup, err := p.ParsePaginationTemplate()
		if err != nil {
			return nil, false, err
		}
		return cache.NewEntry(markup, s.cfg.CacheTTL), false, nil
	}

	key := cacheKey(locator.Current(), params, page, pageCount, s.cfg.NumberOfLinks)
	return s.cache.GetOrRender(r.Context(), key, p.ParsePaginationTemplate)
}

func cacheKey(base string, params url.Values, page, pageCount, links int) cache.CacheKey {
	return cache.CacheKey{
		BaseURL:       base,
		QueryParams:   params,
		Page:          page,
		PageCount:     pageCount,
		NumberOfLinks: links,
	}
}
